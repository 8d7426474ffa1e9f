package convert

import "github.com/reoring/oobind"

type cppDialect struct{ passthrough }

// Cpp returns the dialect of the C++ wrapper. Conversions go through the
// helpers of the generated ::convert namespace.
func Cpp() oobind.Dialect { return cppDialect{} }

func (cppDialect) Name() string { return "cpp" }

func (cppDialect) Move(expr string) string { return "std::move(" + expr + ")" }

func (cppDialect) Duration(dir oobind.Direction, unit oobind.DurationType, expr string) string {
	suffix := "milli_sec_u64"
	if unit == oobind.Seconds {
		suffix = "sec_u64"
	}
	if dir == oobind.TowardNative {
		return "::convert::to_" + suffix + "(" + expr + ")"
	}
	return "::convert::from_" + suffix + "(" + expr + ")"
}

func (cppDialect) Enum(dir oobind.Direction, _ *oobind.Enum, expr string) string {
	return namespaced(dir, expr)
}

func (cppDialect) String(dir oobind.Direction, expr string) string {
	if dir == oobind.TowardNative {
		return expr + ".c_str()"
	}
	return "std::string(" + expr + ")"
}

func (cppDialect) Struct(dir oobind.Direction, _ oobind.StructType, expr string) string {
	if dir == oobind.TowardNative {
		return "to_native(" + expr + ")"
	}
	return "to_cpp(" + expr + ")"
}

func (cppDialect) StructRef(dir oobind.Direction, _ *oobind.StructDeclaration, expr string) string {
	return namespaced(dir, expr)
}

func (cppDialect) Class(dir oobind.Direction, _ *oobind.ClassDeclaration, expr string) string {
	if dir == oobind.TowardNative {
		return "::convert::get(" + expr + ")"
	}
	return "::convert::to_cpp(" + expr + ")"
}

func (cppDialect) Interface(dir oobind.Direction, _ *oobind.Interface, expr string) string {
	if dir == oobind.TowardNative {
		return "to_native(" + expr + ")"
	}
	return expr
}

func (cppDialect) Iterator(dir oobind.Direction, _ *oobind.Iterator, expr string) string {
	if dir == oobind.TowardNative {
		return "::convert::to_native(" + expr + ")"
	}
	return "::convert::construct(" + expr + ")"
}

func (cppDialect) Collection(dir oobind.Direction, _ *oobind.Collection, expr string) string {
	return namespaced(dir, expr)
}

func namespaced(dir oobind.Direction, expr string) string {
	if dir == oobind.TowardNative {
		return "::convert::to_native(" + expr + ")"
	}
	return "::convert::to_cpp(" + expr + ")"
}
