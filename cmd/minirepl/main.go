package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"mini"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Config string `short:"c" long:"config" description:"load settings from a .properties or .yaml file"`
	Trace  bool   `short:"t" long:"trace" description:"print the environment after every statement"`
	Color  string `long:"color" choice:"auto" choice:"always" choice:"never" description:"color the trace output"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("minirepl: ")

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}
	cfg := mini.DefaultConfig()
	if opts.Config != "" {
		var err error
		if cfg, err = mini.LoadConfig(opts.Config); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Trace = cfg.Trace || opts.Trace
	if opts.Color != "" {
		cfg.Color = mini.ColorMode(opts.Color)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	session := mini.NewSession("<repl>", mini.NewEvaluator(cfg, os.Stdout))
	repl(session, bufio.NewScanner(os.Stdin))
}

func repl(session *mini.Session, in *bufio.Scanner) {
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		text := strings.TrimSpace(in.Text())
		switch text {
		case "":
			continue
		case ":quit", ":q":
			return
		case ":env":
			fmt.Println(session.Env())
			continue
		case ":reset":
			session.Reset()
			continue
		}
		out, err := session.Feed(text)
		if err != nil {
			// the program is aborted, start over
			fmt.Println(err)
			session.Reset()
			continue
		}
		if out.Returned {
			fmt.Println(out.Value)
			session.Reset()
		}
	}
}
