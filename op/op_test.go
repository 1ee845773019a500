package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registered := Register(&Op{
		Name:        "test.identity",
		Description: "Returns its single input unchanged.",
		NumInputs:   1,
	})

	got, err := Get("test.identity")
	require.NoError(t, err)
	assert.Same(t, registered, got)
	assert.Contains(t, Registered(), "test.identity")
	assert.Equal(t, "Op(test.identity)", got.String())
}

func TestRegistry_Errors(t *testing.T) {
	t.Run("unknown operator", func(t *testing.T) {
		got, err := Get("test.never_registered")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), `unknown operator "test.never_registered"`)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		Register(&Op{Name: "test.dup", NumInputs: 1})
		assert.Panics(t, func() {
			Register(&Op{Name: "test.dup", NumInputs: 1})
		})
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Panics(t, func() {
			Register(&Op{NumInputs: 1})
		})
	})
}
