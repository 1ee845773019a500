package relay

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/relay/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestVar(t *testing.T) {
	v := NewVar("data")
	assert.Equal(t, "data", v.Name())
	assert.Equal(t, "%data", v.String())

	// Names are normalized: invalid characters become underscores, and a
	// leading digit gets an underscore prefix.
	assert.Equal(t, "%fc1_weight", NewVar("fc1.weight").String())
	assert.Equal(t, "%_0_input", NewVar("0 input").String())
}

func TestDims(t *testing.T) {
	assert.Equal(t, []IndexExpr{IntImm(1), IntImm(1)}, Dims(1, 1))
	assert.Equal(t, "64", IntImm(64).String())
	assert.Equal(t, "n", SizeVar("n").String())
}

func TestConstantFromScalar(t *testing.T) {
	c, err := ConstantFromScalar(3.5)
	require.NoError(t, err)
	assert.Equal(t, dtypes.Float64, c.DType())
	assert.Equal(t, 3.5, c.Value())
	assert.Equal(t, "3.5", c.String())

	half, err := ConstantFromScalar(float16.Fromfloat32(1.5))
	require.NoError(t, err)
	assert.Equal(t, dtypes.Float16, half.DType())

	_, err = ConstantFromScalar(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported constant value type")
}

var testReluOp = op.Register(&op.Op{
	Name:        "test.relu",
	Description: "Rectified linear unit, for expression tests.",
	NumInputs:   1,
})

func TestCallWrite(t *testing.T) {
	x := NewVar("x")
	call := NewCall(testReluOp, []Expr{x}, nil)
	assert.Equal(t, "test.relu(%x)", call.String())

	// Nested calls render depth-first.
	outer := NewCall(testReluOp, []Expr{call}, nil)
	assert.Equal(t, "test.relu(test.relu(%x))", outer.String())
}

func TestFreeVars(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	inner := NewCall(testReluOp, []Expr{y}, nil)
	outer := NewCall(testReluOp, []Expr{NewCall(testReluOp, []Expr{x}, nil), inner, x}, nil)

	// De-duplicated, in first-reached order.
	assert.Equal(t, []*Var{x, y}, FreeVars(outer))
	assert.Empty(t, FreeVars(must1(ConstantFromScalar(1.0))))
}

func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
