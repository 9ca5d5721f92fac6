package main

import (
	"errors"
	"fmt"
	"log"
	"mini"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Config   string   `short:"c" long:"config" description:"load settings from a .properties or .yaml file"`
	Trace    bool     `short:"t" long:"trace" description:"print the environment after every statement"`
	Color    string   `long:"color" choice:"auto" choice:"always" choice:"never" description:"color the trace output"`
	Continue bool     `long:"continue" description:"keep executing lines after the first output statement"`
	Eval     []string `short:"e" long:"eval" value-name:"PROGRAM" description:"run an inline program, lines separated by \\n"`
	Demo     bool     `long:"demo" description:"run the built-in sample programs"`
	Quiet    bool     `short:"q" long:"quiet" description:"print only the returned values"`
}

type program struct {
	name   string
	source []byte
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("minirun: ")

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [FILE...]"
	files, err := parser.Parse()
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal(err)
	}

	programs, err := collect(opts, files)
	if err != nil {
		log.Fatal(err)
	}
	if len(programs) == 0 {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	eval := mini.NewEvaluator(cfg, os.Stderr)
	failed := false
	for _, prog := range programs {
		// every program gets its own environment
		res, err := eval.Run(prog.name, prog.source)
		if err != nil {
			log.Print(err)
			failed = true
			continue
		}
		report(opts.Quiet, prog, res)
	}
	if failed {
		os.Exit(1)
	}
}

func loadConfig(opts options) (mini.Config, error) {
	cfg := mini.DefaultConfig()
	if opts.Config != "" {
		var err error
		cfg, err = mini.LoadConfig(opts.Config)
		if err != nil {
			return cfg, err
		}
	}
	if opts.Trace {
		cfg.Trace = true
	}
	if opts.Continue {
		cfg.ContinueAfterOutput = true
	}
	if opts.Color != "" {
		cfg.Color = mini.ColorMode(opts.Color)
	}
	return cfg, cfg.Validate()
}

func collect(opts options, files []string) ([]program, error) {
	var programs []program
	if opts.Demo {
		for _, s := range mini.SamplePrograms {
			programs = append(programs, program{name: "<" + s.Name + ">", source: []byte(s.Source)})
		}
	}
	for i, src := range opts.Eval {
		programs = append(programs, program{
			name:   fmt.Sprintf("<eval %d>", i+1),
			source: []byte(strings.ReplaceAll(src, `\n`, "\n")),
		})
	}
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		programs = append(programs, program{name: file, source: source})
	}
	return programs, nil
}

func report(quiet bool, prog program, res mini.Result) {
	if quiet {
		if res.Returned {
			fmt.Println(res.Value)
		}
		return
	}
	fmt.Printf("%s:\n%s\n", prog.name, strings.TrimRight(string(prog.source), "\n"))
	if res.Returned {
		fmt.Printf("returned: %d\n", res.Value)
	} else {
		fmt.Println("returned nothing")
	}
	fmt.Println("-------------------------")
}
