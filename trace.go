package mini

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Observer is called after each statement that executed successfully.
type Observer interface {
	Observe(stmt Stmt, env *Environment)
}

type ObserverFunc func(stmt Stmt, env *Environment)

func (f ObserverFunc) Observe(stmt Stmt, env *Environment) {
	f(stmt, env)
}

const traceSeparator = "-------------------------"

// Tracer dumps the statement, the variable names and their values.
type Tracer struct {
	out    io.Writer
	stmt   *color.Color
	names  *color.Color
	values *color.Color
}

func NewTracer(out io.Writer, useColor bool) *Tracer {
	t := &Tracer{
		out:    out,
		stmt:   color.New(color.FgCyan, color.Bold),
		names:  color.New(color.FgYellow),
		values: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{t.stmt, t.names, t.values} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *Tracer) Observe(stmt Stmt, env *Environment) {
	bindings := env.Bindings()
	names := make([]string, len(bindings))
	values := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name
		values[i] = strconv.FormatInt(int64(b.Value), 10)
	}
	t.stmt.Fprintf(t.out, "%s: %s [%s]\n", stmt.pos(), stmt, stmt.Kind())
	t.names.Fprintln(t.out, "["+strings.Join(names, ", ")+"]")
	t.values.Fprintln(t.out, "["+strings.Join(values, ", ")+"]")
	fmt.Fprintln(t.out, traceSeparator)
}
