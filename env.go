package mini

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type Binding struct {
	Name  string
	Value int32
}

func (b Binding) String() string {
	return fmt.Sprintf("%s=%d", b.Name, b.Value)
}

// Environment holds the variables of one program run, in the order they were
// first assigned. Reassignment keeps a variable in place.
type Environment struct {
	vars *linkedhashmap.Map
}

func NewEnvironment() *Environment {
	return &Environment{vars: linkedhashmap.New()}
}

func (e *Environment) Get(name string) (int32, bool) {
	v, ok := e.vars.Get(name)
	if !ok {
		return 0, false
	}
	return v.(int32), true
}

func (e *Environment) Set(name string, val int32) {
	e.vars.Put(name, val)
}

func (e *Environment) Len() int {
	return e.vars.Size()
}

func (e *Environment) Names() []string {
	names := make([]string, 0, e.vars.Size())
	for _, k := range e.vars.Keys() {
		names = append(names, k.(string))
	}
	return names
}

func (e *Environment) Bindings() []Binding {
	bindings := make([]Binding, 0, e.vars.Size())
	e.vars.Each(func(key, value interface{}) {
		bindings = append(bindings, Binding{Name: key.(string), Value: value.(int32)})
	})
	return bindings
}

func (e *Environment) Clear() {
	e.vars.Clear()
}

func (e *Environment) String() string {
	parts := make([]string, 0, e.vars.Size())
	for _, b := range e.Bindings() {
		parts = append(parts, b.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
