package convert

import "github.com/reoring/oobind"

type dotnetDialect struct{ passthrough }

// Dotnet returns the dialect of the .NET P/Invoke layer. Ownership transfer
// is handled by the generated adapters, so Move is the identity.
func Dotnet() oobind.Dialect { return dotnetDialect{} }

func (dotnetDialect) Name() string { return "dotnet" }

func (dotnetDialect) Primitive(dir oobind.Direction, p oobind.Primitive, expr string) string {
	if p != oobind.Bool {
		return expr
	}
	if dir == oobind.TowardNative {
		return "Convert.ToByte(" + expr + ")"
	}
	return "Convert.ToBoolean(" + expr + ")"
}

var primitivePointerReaders = map[oobind.Primitive]string{
	oobind.Bool:   "ReadBool",
	oobind.U8:     "Unsigned.ReadByte",
	oobind.S8:     "Signed.ReadByte",
	oobind.U16:    "Unsigned.ReadShort",
	oobind.S16:    "Signed.ReadShort",
	oobind.U32:    "Unsigned.ReadInt",
	oobind.S32:    "Signed.ReadInt",
	oobind.U64:    "Unsigned.ReadLong",
	oobind.S64:    "Signed.ReadLong",
	oobind.Float:  "ReadFloat",
	oobind.Double: "ReadDouble",
}

func (dotnetDialect) PrimitiveRef(dir oobind.Direction, p oobind.Primitive, expr string) string {
	if dir == oobind.TowardNative {
		return expr
	}
	return "Helpers.PrimitivePointer." + primitivePointerReaders[p] + "(" + expr + ")"
}

func (dotnetDialect) Duration(dir oobind.Direction, unit oobind.DurationType, expr string) string {
	switch {
	case dir == oobind.TowardNative && unit == oobind.Seconds:
		return "(ulong)" + expr + ".TotalSeconds"
	case dir == oobind.TowardNative:
		return "(ulong)" + expr + ".TotalMilliseconds"
	case unit == oobind.Seconds:
		return "TimeSpan.FromSeconds(" + expr + ")"
	}
	return "TimeSpan.FromMilliseconds(" + expr + ")"
}

func (dotnetDialect) String(dir oobind.Direction, expr string) string {
	if dir == oobind.TowardNative {
		return "Helpers.RustString.ToNative(" + expr + ")"
	}
	return "Helpers.RustString.FromNative(" + expr + ")"
}

func (dotnetDialect) Struct(dir oobind.Direction, s oobind.StructType, expr string) string {
	if dir == oobind.TowardNative {
		return s.Name().PascalCase() + "Native.ToNative(" + expr + ")"
	}
	return s.Name().PascalCase() + "Native.FromNative(" + expr + ")"
}

func (dotnetDialect) StructRef(dir oobind.Direction, decl *oobind.StructDeclaration, expr string) string {
	if dir == oobind.TowardNative {
		return decl.Name().PascalCase() + "Native.ToNativeRef(" + expr + ")"
	}
	return decl.Name().PascalCase() + "Native.FromNativeRef(" + expr + ")"
}

func (dotnetDialect) Class(dir oobind.Direction, c *oobind.ClassDeclaration, expr string) string {
	if dir == oobind.TowardNative {
		return expr + ".self"
	}
	return c.Name().PascalCase() + ".FromNative(" + expr + ")"
}

// Interface wraps user implementations in a native adapter. Functional
// interfaces other than futures also accept a lambda, wrapped first.
func (dotnetDialect) Interface(dir oobind.Direction, i *oobind.Interface, expr string) string {
	name := i.Name().PascalCase()
	if dir == oobind.TowardTarget {
		return "I" + name + "NativeAdapter.FromNative(" + expr + "." + i.Settings().Interface.ContextArgName.CamelCase() + ")"
	}
	inner := expr
	if i.IsFunctional() && i.Mode() != oobind.Future && i.Callbacks()[0].FunctionalTransform() {
		inner = "functional." + name + ".create(" + expr + ")"
	}
	return "new I" + name + "NativeAdapter(" + inner + ")"
}

func (dotnetDialect) Iterator(dir oobind.Direction, it *oobind.Iterator, expr string) string {
	if dir == oobind.TowardNative {
		return expr
	}
	return it.IteratorClass().Name().PascalCase() + "Helpers.FromNative(" + expr + ")"
}

func (dotnetDialect) Collection(dir oobind.Direction, c *oobind.Collection, expr string) string {
	if dir == oobind.TowardTarget {
		return expr
	}
	return c.CollectionClass().Name().PascalCase() + "Helpers.ToNative(" + expr + ")"
}
