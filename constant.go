package relay

import (
	"fmt"
	"io"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Constant represents a scalar literal in an expression, e.g. `3.5`.
//
// Tensor-valued constants are out of scope: weights and other tensor data
// enter a program as free variables bound at a later stage.
type Constant struct {
	value any
	dtype dtypes.DType
}

// ConstantFromScalar creates a constant from a Go scalar value.
//
// The dtype of the constant is inferred from the value. Half-precision
// constants can be given as float16.Float16.
func ConstantFromScalar(value any) (*Constant, error) {
	dtype := dtypes.FromAny(value)
	if dtype == dtypes.INVALID {
		return nil, errors.Errorf("unsupported constant value type %T", value)
	}
	return &Constant{value: value, dtype: dtype}, nil
}

// Value returns the Go value of the constant.
func (c *Constant) Value() any { return c.value }

// DType returns the dtype of the constant.
func (c *Constant) DType() dtypes.DType { return c.dtype }

// Write writes the constant in text format to the given writer.
func (c *Constant) Write(w io.Writer) error {
	value := c.value
	if f16, ok := value.(float16.Float16); ok {
		value = f16.Float32()
	}
	_, err := fmt.Fprintf(w, "%v", value)
	return err
}

// String implements fmt.Stringer.
func (c *Constant) String() string {
	return fmt.Sprintf("%v", c.value)
}
