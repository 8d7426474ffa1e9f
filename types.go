package oobind

import "fmt"

// Primitive is a fixed-width scalar crossing the boundary unchanged.
type Primitive int

const (
	Bool Primitive = iota
	U8
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	Float
	Double
)

func (p Primitive) String() string {
	switch p {
	case Bool:
		return "bool"
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case U32:
		return "u32"
	case S32:
		return "s32"
	case U64:
		return "u64"
	case S64:
		return "s64"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return fmt.Sprintf("primitive(%d)", int(p))
}

// IsInteger reports whether p is one of the fixed-width integer types.
func (p Primitive) IsInteger() bool { return p >= U8 && p <= S64 }

// IsFloat reports whether p is Float or Double.
func (p Primitive) IsFloat() bool { return p == Float || p == Double }

// IsSigned reports whether p is a signed integer type.
func (p Primitive) IsSigned() bool { return p == S8 || p == S16 || p == S32 || p == S64 }

// Bits returns the width of an integer primitive, 0 otherwise.
func (p Primitive) Bits() int {
	switch p {
	case U8, S8:
		return 8
	case U16, S16:
		return 16
	case U32, S32:
		return 32
	case U64, S64:
		return 64
	}
	return 0
}

// DurationType is the unit a duration is carried in across the boundary.
type DurationType int

const (
	Milliseconds DurationType = iota
	Seconds
)

func (d DurationType) String() string {
	if d == Seconds {
		return "seconds"
	}
	return "milliseconds"
}

// StringType is a borrowed, NUL-terminated UTF-8 string.
type StringType struct{}

// PrimitiveRef is a pointer to a primitive owned by the native side. It only
// appears as a function return value.
type PrimitiveRef struct{ Inner Primitive }

// PassBy is the passing convention of a value crossing the boundary.
type PassBy int

const (
	Copy PassBy = iota
	ConstRef
	MutRef
	Move
)

func (p PassBy) String() string {
	switch p {
	case Copy:
		return "copy"
	case ConstRef:
		return "const_ref"
	case MutRef:
		return "mut_ref"
	case Move:
		return "move"
	}
	return fmt.Sprintf("pass_by(%d)", int(p))
}

// Type is implemented by every IR type. PassBy decides the convention;
// ToNative and ToTarget build conversion expressions with d doing only the
// rendering.
type Type interface {
	PassBy() PassBy
	ToNative(d Dialect, expr string) string
	ToTarget(d Dialect, expr string) string
	TypeName() string
}

// IsMoveType reports whether values of t transfer ownership to the receiver.
func IsMoveType(t Type) bool { return t.PassBy() == Move }

// BasicType is a Primitive, a DurationType or an *Enum.
type BasicType interface {
	UniversalStructField
	FunctionArgument
	FunctionReturnValue
	CallbackArgument
	CallbackReturnValue
	isBasicType()
}

// Primitive

func (p Primitive) PassBy() PassBy   { return Copy }
func (p Primitive) TypeName() string { return p.String() }
func (p Primitive) ToNative(d Dialect, expr string) string {
	return d.Primitive(TowardNative, p, expr)
}
func (p Primitive) ToTarget(d Dialect, expr string) string {
	return d.Primitive(TowardTarget, p, expr)
}

// DurationType

func (t DurationType) PassBy() PassBy   { return Copy }
func (t DurationType) TypeName() string { return "duration_" + t.String() }
func (t DurationType) ToNative(d Dialect, expr string) string {
	return d.Duration(TowardNative, t, expr)
}
func (t DurationType) ToTarget(d Dialect, expr string) string {
	return d.Duration(TowardTarget, t, expr)
}

// StringType

func (StringType) PassBy() PassBy   { return ConstRef }
func (StringType) TypeName() string { return "string" }
func (StringType) ToNative(d Dialect, expr string) string {
	return d.String(TowardNative, expr)
}
func (StringType) ToTarget(d Dialect, expr string) string {
	return d.String(TowardTarget, expr)
}

// PrimitiveRef

func (r PrimitiveRef) PassBy() PassBy   { return ConstRef }
func (r PrimitiveRef) TypeName() string { return "ref " + r.Inner.String() }

func (r PrimitiveRef) ToNative(d Dialect, expr string) string {
	return d.PrimitiveRef(TowardNative, r.Inner, expr)
}
func (r PrimitiveRef) ToTarget(d Dialect, expr string) string {
	return d.PrimitiveRef(TowardTarget, r.Inner, expr)
}
