package utils

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// DTypeToScript returns the text-format (script) name of a dtype, e.g.
// "float32" for dtypes.F32.
func DTypeToScript(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.F64:
		return "float64"
	case dtypes.F32:
		return "float32"
	case dtypes.F16:
		return "float16"
	case dtypes.BFloat16:
		return "bfloat16"
	case dtypes.S64:
		return "int64"
	case dtypes.S32:
		return "int32"
	case dtypes.S16:
		return "int16"
	case dtypes.S8:
		return "int8"
	case dtypes.U64:
		return "uint64"
	case dtypes.U32:
		return "uint32"
	case dtypes.U16:
		return "uint16"
	case dtypes.U8:
		return "uint8"
	case dtypes.Bool:
		return "bool"
	default:
		return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
	}
}
