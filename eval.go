package mini

import (
	"errors"
	"io"
	"os"
)

// Outcome is what executing one statement produced. Only output statements
// set Returned.
type Outcome struct {
	Value    int32
	Returned bool
}

type Evaluator struct {
	Observer            Observer
	ContinueAfterOutput bool
}

// NewEvaluator builds an evaluator from cfg. Trace output, when enabled, goes
// to trace.
func NewEvaluator(cfg Config, trace io.Writer) Evaluator {
	e := Evaluator{ContinueAfterOutput: cfg.ContinueAfterOutput}
	if cfg.Trace {
		useColor := cfg.Color == ColorAlways
		if f, ok := trace.(*os.File); ok {
			useColor = cfg.UseColor(f)
		}
		e.Observer = NewTracer(trace, useColor)
	}
	return e
}

// Exec runs one statement against env.
func (e Evaluator) Exec(env *Environment, stmt Stmt) (Outcome, error) {
	var out Outcome
	switch s := stmt.(type) {
	case *AdditionStmt:
		left, err := resolve(env, s.Left)
		if err != nil {
			return Outcome{}, err
		}
		right, err := resolve(env, s.Right)
		if err != nil {
			return Outcome{}, err
		}
		// int32 addition wraps on overflow
		env.Set(s.Target, left+right)
	case *AssignmentStmt:
		val, err := resolve(env, s.Source)
		if err != nil {
			return Outcome{}, err
		}
		env.Set(s.Target, val)
	case *OutputStmt:
		val, err := resolve(env, s.Source)
		if err != nil {
			return Outcome{}, err
		}
		out = Outcome{Value: val, Returned: true}
	default:
		panic("unreachable")
	}
	if e.Observer != nil {
		e.Observer.Observe(stmt, env)
	}
	return out, nil
}

func resolve(env *Environment, op Operand) (int32, error) {
	switch o := op.(type) {
	case LiteralOperand:
		return o.Value, nil
	case VariableOperand:
		val, ok := env.Get(o.Name)
		if !ok {
			return 0, NewError(o.Pos, UndefinedVariable, "%s is not defined", o.Name)
		}
		return val, nil
	}
	panic("unreachable")
}

// Session feeds lines one at a time to an evaluator and owns the environment
// they share.
type Session struct {
	Evaluator Evaluator
	filename  string
	line      uint
	env       *Environment
}

func NewSession(filename string, eval Evaluator) *Session {
	return &Session{
		Evaluator: eval,
		filename:  filename,
		env:       NewEnvironment(),
	}
}

func (s *Session) Feed(line string) (Outcome, error) {
	s.line++
	stmt, err := ParseLine(At(s.filename, s.line), line)
	if err != nil {
		return Outcome{}, err
	}
	out, err := s.Evaluator.Exec(s.env, stmt)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.withLine(line)
		}
		return Outcome{}, err
	}
	return out, nil
}

func (s *Session) Env() *Environment {
	return s.env
}

// Reset starts a new program: bindings are dropped and line numbering
// restarts.
func (s *Session) Reset() {
	s.env = NewEnvironment()
	s.line = 0
}

type Result struct {
	Value    int32
	Returned bool
	Bindings []Binding
}

// Run executes a whole program in a fresh environment. Execution stops at
// the first output statement unless ContinueAfterOutput is set. A program
// without an output statement yields a Result with Returned unset.
func (e Evaluator) Run(filename string, source []byte) (Result, error) {
	s := NewSession(filename, e)
	var res Result
	for _, line := range SplitProgram(string(source)) {
		out, err := s.Feed(line)
		if err != nil {
			return Result{}, err
		}
		if out.Returned && !res.Returned {
			res.Value, res.Returned = out.Value, true
			if !e.ContinueAfterOutput {
				break
			}
		}
	}
	res.Bindings = s.Env().Bindings()
	return res, nil
}

var ErrNoOutput = errors.New("program has no output statement")

// Execute runs source with the default configuration and returns its value.
func Execute(source string) (int32, error) {
	res, err := Evaluator{}.Run("<input>", []byte(source))
	if err != nil {
		return 0, err
	}
	if !res.Returned {
		return 0, ErrNoOutput
	}
	return res.Value, nil
}
