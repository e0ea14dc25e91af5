package cl

import (
	"encoding/json"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// NamedArg pairs an argument name with its typed value.
type NamedArg struct {
	Name  string
	Value Value
}

// Args is an ordered list of named runtime arguments. Order is preserved
// because it is part of the deploy's binary form and therefore of its hash.
type Args struct {
	args []NamedArg
}

// NewArgs builds an argument list, rejecting duplicate names.
func NewArgs(args ...NamedArg) (*Args, error) {
	a := &Args{}
	for _, arg := range args {
		if err := a.Insert(arg.Name, arg.Value); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Insert appends a named value. Duplicate names are rejected so that a
// later argument can never silently shadow an earlier one.
func (a *Args) Insert(name string, value Value) error {
	if name == "" {
		return fmt.Errorf("argument name must not be empty")
	}
	for _, existing := range a.args {
		if existing.Name == name {
			return fmt.Errorf("duplicate argument %q", name)
		}
	}
	a.args = append(a.args, NamedArg{Name: name, Value: value})
	return nil
}

// Get returns the value for name, if present.
func (a *Args) Get(name string) (Value, bool) {
	for _, arg := range a.args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of arguments.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.args)
}

// Names returns the argument names in insertion order.
func (a *Args) Names() []string {
	names := make([]string, 0, len(a.args))
	for _, arg := range a.args {
		names = append(names, arg.Name)
	}
	return names
}

// WriteTo appends the bytesrepr form: u32 count, then for each argument
// its name string, length-prefixed value bytes and CLType.
func (a *Args) WriteTo(e *casper.Encoder) {
	if a == nil {
		e.U32(0)
		return
	}
	e.U32(uint32(len(a.args)))
	for _, arg := range a.args {
		e.String(arg.Name)
		arg.Value.WriteTo(e)
	}
}

// MarshalJSON renders the node's pair-array form:
// [["amount", {"cl_type": ...}], ...].
func (a *Args) MarshalJSON() ([]byte, error) {
	pairs := make([][2]json.RawMessage, 0, len(a.args))
	for _, arg := range a.args {
		name, err := json.Marshal(arg.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal argument %q: %w", arg.Name, err)
		}
		pairs = append(pairs, [2]json.RawMessage{name, value})
	}
	return json.Marshal(pairs)
}

func (a *Args) UnmarshalJSON(data []byte) error {
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}

	a.args = nil
	for _, pair := range pairs {
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return fmt.Errorf("decode arg name: %w", err)
		}
		var value Value
		if err := json.Unmarshal(pair[1], &value); err != nil {
			return fmt.Errorf("decode arg %q: %w", name, err)
		}
		if err := a.Insert(name, value); err != nil {
			return err
		}
	}
	return nil
}
