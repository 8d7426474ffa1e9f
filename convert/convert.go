// Package convert provides the conversion dialects of the supported target
// languages. A dialect only formats expressions; the oobind types decide
// which conversion applies and whether the value is moved.
package convert

import (
	"sort"

	"github.com/reoring/oobind"
)

// passthrough renders every conversion as the expression itself. Dialects
// embed it and override what their target needs.
type passthrough struct{}

func (passthrough) Move(expr string) string { return expr }

func (passthrough) Primitive(_ oobind.Direction, _ oobind.Primitive, expr string) string {
	return expr
}

func (passthrough) PrimitiveRef(_ oobind.Direction, _ oobind.Primitive, expr string) string {
	return expr
}

func (passthrough) Duration(_ oobind.Direction, _ oobind.DurationType, expr string) string {
	return expr
}

func (passthrough) Enum(_ oobind.Direction, _ *oobind.Enum, expr string) string { return expr }

func (passthrough) String(_ oobind.Direction, expr string) string { return expr }

func (passthrough) Struct(_ oobind.Direction, _ oobind.StructType, expr string) string {
	return expr
}

func (passthrough) StructRef(_ oobind.Direction, _ *oobind.StructDeclaration, expr string) string {
	return expr
}

func (passthrough) Class(_ oobind.Direction, _ *oobind.ClassDeclaration, expr string) string {
	return expr
}

func (passthrough) Interface(_ oobind.Direction, _ *oobind.Interface, expr string) string {
	return expr
}

func (passthrough) Iterator(_ oobind.Direction, _ *oobind.Iterator, expr string) string {
	return expr
}

func (passthrough) Collection(_ oobind.Direction, _ *oobind.Collection, expr string) string {
	return expr
}

type cDialect struct{ passthrough }

func (cDialect) Name() string { return "c" }

// C returns the dialect of the C ABI. Native and target representations are
// identical, so every conversion is the identity.
func C() oobind.Dialect { return cDialect{} }

var registry = map[string]func() oobind.Dialect{
	"c":      C,
	"cpp":    Cpp,
	"dotnet": Dotnet,
}

// Lookup returns the dialect registered under name.
func Lookup(name string) (oobind.Dialect, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names lists the registered dialects in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
