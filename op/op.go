// Package op holds the process-wide operator registry.
//
// Operator descriptors are registered by name during package initialization
// (typically from init functions of the packages defining the operators, like
// nn) and are read-only afterwards. Construction functions resolve them with
// Get; an unregistered name is a programming/configuration error and is
// reported as such, never retried.
package op

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Op is the registered, named definition of an operator. It is immutable
// after registration; call nodes reference it, they never own it.
type Op struct {
	// Name of the operator, e.g. "nn.conv2d". Unique in the registry.
	Name string

	// Description is a one-line human-readable summary.
	Description string

	// NumInputs is the number of positional inputs the operator expects.
	NumInputs int

	// AttrsName is the registered type name of the attribute record the
	// operator carries, e.g. "relay.attrs.Conv2DAttrs". Empty for
	// operators without attributes.
	AttrsName string

	// SupportLevel orders operators from basic (1) to rarely used or
	// backend-specific (10+).
	SupportLevel int
}

// String implements fmt.Stringer.
func (op *Op) String() string {
	return fmt.Sprintf("Op(%s)", op.Name)
}

var registry = make(map[string]*Op)

// Register adds the operator descriptor to the registry and returns it.
//
// It must only be called during package initialization: registering twice
// under the same name, or with an empty name, panics.
func Register(op *Op) *Op {
	if op.Name == "" {
		panic(errors.New("op.Register called with an empty operator name"))
	}
	if _, found := registry[op.Name]; found {
		panic(errors.Errorf("operator %q registered twice", op.Name))
	}
	registry[op.Name] = op
	return op
}

// Get resolves an operator descriptor by name.
//
// It fails if the name was never registered. The registry is read-only after
// initialization, so a failed lookup cannot self-heal and callers should
// propagate the error.
func Get(name string) (*Op, error) {
	op, found := registry[name]
	if !found {
		return nil, errors.Errorf("unknown operator %q", name)
	}
	return op, nil
}

// Registered returns the sorted names of all registered operators.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
