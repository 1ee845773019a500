package relay

import (
	"fmt"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/relay/internal/utils"
	"github.com/x448/float16"
)

// Attrs is the protocol implemented by every attribute record attached to a
// call node.
//
// A record is a flat, variant-specific value object: the construction
// functions in the nn subpackage populate every declared field exactly once
// and the record is immutable from then on. Downstream passes read the
// concrete type back with a type assertion; AttrPairs only exists for the
// text rendering and for generic inspection.
type Attrs interface {
	// AttrsName is the registered type name of the record, e.g.
	// "relay.attrs.Conv2DAttrs".
	AttrsName() string

	// AttrPairs lists the record's fields in declaration order, with the
	// keys used by the text format.
	AttrPairs() []AttrPair
}

// AttrPair is one field of an attribute record, keyed by its text-format
// name.
type AttrPair struct {
	Key   string
	Value any
}

// literalToScript converts an attribute value to its text-format representation.
func literalToScript(attr any) string {
	switch v := attr.(type) {
	case nil:
		return "None"
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%g", v)
	case float16.Float16:
		return fmt.Sprintf("%g", v.Float32())
	case dtypes.DType:
		return fmt.Sprintf("%q", utils.DTypeToScript(v))
	case IndexExpr:
		return v.String()
	case []IndexExpr:
		return indexExprsToScript(v)
	case [][]IndexExpr:
		parts := make([]string, len(v))
		for i, inner := range v {
			parts[i] = indexExprsToScript(inner)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []int64:
		parts := make([]string, len(v))
		for i, value := range v {
			parts[i] = fmt.Sprintf("%d", value)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		parts := make([]string, len(v))
		for i, value := range v {
			parts[i] = fmt.Sprintf("%q", value)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("<unknown literal type %T: %v>", v, v)
	}
}

func indexExprsToScript(indices []IndexExpr) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = index.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
