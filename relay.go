// Package relay builds call nodes for a Relay-style tensor-program IR
// (text format), to then be consumed by shape-inference, layout-planning
// and lowering passes.
//
// Among its features:
//
// - Translates an operator API (see the nn subpackage) into generic
//   Call(op, args, attrs) nodes with strongly-typed attribute payloads.
// - Renders expressions to the human-readable Relay text form.
// - Written purely in Go, no C/C++ external dependencies.
//
// The package itself holds the expression types (Var, Constant, Call) and
// the Attrs protocol that attribute records implement. Operator descriptors
// live in the op subpackage, the attribute records in types/nn, and the
// construction functions in nn.
package relay

import "github.com/gomlx/relay/internal/utils"

// NormalizeIdentifier converts the name of an identifier (a variable name)
// to a valid one: only letters, digits, and underscores are allowed.
//
// Invalid characters are replaced with underscores.
// If the name starts with a digit, it is prefixed with an underscore.
func NormalizeIdentifier(name string) string {
	return utils.NormalizeIdentifier(name)
}
