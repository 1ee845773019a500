package relay

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomlx/relay/internal/utils"
	"github.com/gomlx/relay/op"
)

// Expr is a node of a Relay-style expression tree.
//
// Expressions are value objects: once constructed they are never mutated by
// this package, and they are safe to share across goroutines.
type Expr interface {
	// Write the expression in text format to the given writer.
	Write(w io.Writer) error

	// String implements fmt.Stringer with the same text format.
	String() string
}

// IndexExpr is a symbolic dimension expression: either a concrete IntImm or
// a named SizeVar whose value is only known at a later compilation stage.
type IndexExpr interface {
	fmt.Stringer
	isIndexExpr()
}

// IntImm is an integer immediate, the concrete form of an IndexExpr.
type IntImm int64

func (IntImm) isIndexExpr() {}

// String implements fmt.Stringer.
func (i IntImm) String() string { return strconv.FormatInt(int64(i), 10) }

// SizeVar is a named symbolic dimension, e.g. a batch size left free until
// shape inference.
type SizeVar string

func (SizeVar) isIndexExpr() {}

// String implements fmt.Stringer.
func (v SizeVar) String() string { return string(v) }

// Dims converts concrete dimension values to a slice of IndexExpr.
// It is a convenience for the common case where all dimensions are known.
func Dims(dims ...int64) []IndexExpr {
	indices := make([]IndexExpr, len(dims))
	for i, dim := range dims {
		indices[i] = IntImm(dim)
	}
	return indices
}

// Var represents a named free variable in an expression, like `%data`.
type Var struct {
	name string
}

// NewVar creates a new free variable with the given name.
//
// The name is passed through NormalizeIdentifier, which converts any
// non-digit or ASCII letter to an underscore.
func NewVar(name string) *Var {
	return &Var{name: utils.NormalizeIdentifier(name)}
}

// Name returns the (normalized) name of the variable.
func (v *Var) Name() string { return v.name }

// Write writes the variable in text format to the given writer.
func (v *Var) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%%%s", v.name)
	return err
}

// String implements fmt.Stringer.
func (v *Var) String() string { return "%" + v.name }

// Call is an IR node representing an invocation of a named operator with
// positional inputs and a structured attribute payload.
//
// The node references the operator descriptor resolved from the registry; it
// does not own it. The attribute record, on the other hand, is exclusively
// owned by the node after construction and must not be mutated afterwards.
type Call struct {
	// Op is the resolved operator descriptor. Never nil.
	Op *op.Op

	// Args are the positional inputs, in the order the operator expects.
	Args []Expr

	// Attrs is the attribute payload. It may be nil for operators that
	// take no attributes.
	Attrs Attrs
}

// NewCall binds an operator descriptor, its positional inputs and an
// attribute record into a call node.
//
// It performs no validation: the inputs are taken in the order given, and
// the attribute record is stored as is. The caller owns the returned node.
func NewCall(o *op.Op, args []Expr, attrs Attrs) *Call {
	return &Call{Op: o, Args: args, Attrs: attrs}
}

// Write writes the call in text format to the given writer, e.g.
//
//	nn.conv2d(%data, %weight, strides=[1, 1], channels=64, out_dtype="float32")
func (c *Call) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e Expr) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		err = e.Write(writer)
	}

	w("%s(", c.Op.Name)
	for i, arg := range c.Args {
		if i > 0 {
			w(", ")
		}
		we(arg)
	}
	if c.Attrs != nil {
		for _, pair := range c.Attrs.AttrPairs() {
			w(", %s=%s", pair.Key, literalToScript(pair.Value))
		}
	}
	w(")")
	return err
}

// String implements fmt.Stringer.
func (c *Call) String() string {
	var b strings.Builder
	_ = c.Write(&b)
	return b.String()
}

// FreeVars returns the free variables of the expression, de-duplicated, in
// the order they are first reached in a depth-first walk of the arguments.
func FreeVars(expr Expr) []*Var {
	var vars []*Var
	seen := utils.MakeSet[*Var](4)
	var walk func(e Expr)
	walk = func(e Expr) {
		switch node := e.(type) {
		case *Var:
			if seen.Has(node) {
				return
			}
			seen.Insert(node)
			vars = append(vars, node)
		case *Call:
			for _, arg := range node.Args {
				walk(arg)
			}
		}
	}
	walk(expr)
	return vars
}
