package nn

import (
	"testing"

	"github.com/gomlx/relay"
	"github.com/stretchr/testify/assert"
)

// Downstream passes and the text format rely on the field order of the
// records: extras go exactly where declared (tile size first, output padding
// just before the output dtype).
func TestAttrPairsOrder(t *testing.T) {
	keys := func(a relay.Attrs) []string {
		pairs := a.AttrPairs()
		names := make([]string, len(pairs))
		for i, pair := range pairs {
			names[i] = pair.Key
		}
		return names
	}

	assert.Equal(t, "tile_size", keys(&Conv2DWinogradAttrs{})[0])

	transposeKeys := keys(&Conv2DTransposeAttrs{})
	assert.Equal(t, "output_padding", transposeKeys[len(transposeKeys)-2])
	assert.Equal(t, "out_dtype", transposeKeys[len(transposeKeys)-1])

	assert.Equal(t, keys(&Conv2DAttrs{}), keys(&Conv2DGemmAttrs{}))

	fusedKeys := keys(&FusedConv2DAttrs{})
	assert.Equal(t, "num_layers", fusedKeys[0])
	assert.Len(t, fusedKeys, 12)
}
