package oobind

import (
	"math"
	"strconv"
	"time"
)

// DefaultKind classifies initializer default values.
type DefaultKind int

const (
	DefaultBoolKind DefaultKind = iota
	DefaultNumberKind
	DefaultDurationKind
	DefaultVariantKind
	DefaultStringKind
	DefaultStructKind
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultBoolKind:
		return "bool"
	case DefaultNumberKind:
		return "number"
	case DefaultDurationKind:
		return "duration"
	case DefaultVariantKind:
		return "enum variant"
	case DefaultStringKind:
		return "string"
	case DefaultStructKind:
		return "default struct"
	}
	return "unknown"
}

type numberRepr int

const (
	reprInt numberRepr = iota
	reprUint
	reprFloat
)

// NumberValue is a numeric default. Typed values name their primitive and
// must match the field exactly; untyped values only need to fit.
type NumberValue struct {
	Type  Primitive
	Typed bool

	repr numberRepr
	i    int64
	u    uint64
	f    float64
}

func (n NumberValue) String() string {
	switch n.repr {
	case reprUint:
		return strconv.FormatUint(n.u, 10)
	case reprFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// Int64 returns the value of a signed integer.
func (n NumberValue) Int64() int64 { return n.i }

// Uint64 returns the value of an unsigned integer.
func (n NumberValue) Uint64() uint64 { return n.u }

// Float64 returns the value of a float.
func (n NumberValue) Float64() float64 { return n.f }

// InitializerDefault is the default value of one field in a struct initializer.
type InitializerDefault struct {
	kind DefaultKind
	b    bool
	num  NumberValue
	d    time.Duration
	s    string
}

func (v InitializerDefault) Kind() DefaultKind { return v.kind }

func (v InitializerDefault) String() string {
	switch v.kind {
	case DefaultBoolKind:
		return strconv.FormatBool(v.b)
	case DefaultNumberKind:
		return v.num.String()
	case DefaultDurationKind:
		return v.d.String()
	case DefaultVariantKind:
		return v.s
	case DefaultStringKind:
		return strconv.Quote(v.s)
	}
	return "default"
}

func DefaultBool(v bool) InitializerDefault { return InitializerDefault{kind: DefaultBoolKind, b: v} }

func DefaultU8(v uint8) InitializerDefault   { return typedUint(U8, uint64(v)) }
func DefaultU16(v uint16) InitializerDefault { return typedUint(U16, uint64(v)) }
func DefaultU32(v uint32) InitializerDefault { return typedUint(U32, uint64(v)) }
func DefaultU64(v uint64) InitializerDefault { return typedUint(U64, v) }
func DefaultS8(v int8) InitializerDefault    { return typedInt(S8, int64(v)) }
func DefaultS16(v int16) InitializerDefault  { return typedInt(S16, int64(v)) }
func DefaultS32(v int32) InitializerDefault  { return typedInt(S32, int64(v)) }
func DefaultS64(v int64) InitializerDefault  { return typedInt(S64, v) }

func DefaultFloat32(v float32) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{Type: Float, Typed: true, repr: reprFloat, f: float64(v)}}
}

func DefaultDouble(v float64) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{Type: Double, Typed: true, repr: reprFloat, f: v}}
}

// DefaultInteger is an untyped integer, checked against the width of the field.
func DefaultInteger(v int64) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{repr: reprInt, i: v}}
}

// DefaultReal is an untyped real, valid for float and double fields.
func DefaultReal(v float64) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{repr: reprFloat, f: v}}
}

func DefaultDuration(d time.Duration) InitializerDefault {
	return InitializerDefault{kind: DefaultDurationKind, d: d}
}

// DefaultVariant names the enum variant used as default.
func DefaultVariant(name string) InitializerDefault {
	return InitializerDefault{kind: DefaultVariantKind, s: name}
}

func DefaultString(s string) InitializerDefault {
	return InitializerDefault{kind: DefaultStringKind, s: s}
}

// DefaultStruct uses the default initializer of the field's struct type.
func DefaultStruct() InitializerDefault { return InitializerDefault{kind: DefaultStructKind} }

func typedUint(p Primitive, v uint64) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{Type: p, Typed: true, repr: reprUint, u: v}}
}

func typedInt(p Primitive, v int64) InitializerDefault {
	return InitializerDefault{kind: DefaultNumberKind, num: NumberValue{Type: p, Typed: true, repr: reprInt, i: v}}
}

// ValidatedDefault is an initializer default checked against its field type.
type ValidatedDefault struct {
	Kind         DefaultKind
	Bool         bool
	Number       NumberValue
	Duration     time.Duration
	DurationType DurationType
	Enum         *Enum
	Variant      Name
	String       string
	Struct       StructType
	Initializer  *Initializer
}

// Describe renders the value for documentation, e.g. "5 seconds" or "level::low".
func (v ValidatedDefault) Describe() string {
	switch v.Kind {
	case DefaultBoolKind:
		return strconv.FormatBool(v.Bool)
	case DefaultNumberKind:
		return v.Number.String()
	case DefaultDurationKind:
		if v.DurationType == Seconds {
			return strconv.FormatInt(int64(v.Duration/time.Second), 10) + " seconds"
		}
		return strconv.FormatInt(int64(v.Duration/time.Millisecond), 10) + " milliseconds"
	case DefaultVariantKind:
		return v.Enum.Name().String() + "::" + v.Variant.String()
	case DefaultStringKind:
		return "'" + v.String + "'"
	case DefaultStructKind:
		return "default constructed value for " + v.Struct.Name().String()
	}
	return ""
}

// InitializedValue is one defaulted field of a validated initializer.
type InitializedValue struct {
	Field Name
	Value ValidatedDefault
}

func badValue(typeName string, v InitializerDefault) *BindingError {
	return newError(CodeStructInitializerBadValueForType, "", "type", typeName, "value", v.String())
}

// Primitive

func (p Primitive) acceptsDefault(v InitializerDefault) bool {
	if p == Bool {
		return v.kind == DefaultBoolKind
	}
	return v.kind == DefaultNumberKind
}

func (p Primitive) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	if !p.acceptsDefault(v) {
		return ValidatedDefault{}, badValue(p.String(), v)
	}
	if p == Bool {
		return ValidatedDefault{Kind: DefaultBoolKind, Bool: v.b}, nil
	}
	n, ok := p.fit(v.num)
	if !ok {
		return ValidatedDefault{}, badValue(p.String(), v)
	}
	return ValidatedDefault{Kind: DefaultNumberKind, Number: n}, nil
}

// fit converts n to a typed value of p, failing when the type differs or the
// value does not fit the width of p.
func (p Primitive) fit(n NumberValue) (NumberValue, bool) {
	if n.Typed {
		return n, n.Type == p
	}
	out := NumberValue{Type: p, Typed: true}
	switch {
	case p.IsFloat():
		out.repr = reprFloat
		switch n.repr {
		case reprFloat:
			out.f = n.f
		case reprUint:
			out.f = float64(n.u)
		default:
			out.f = float64(n.i)
		}
		if p == Float && math.Abs(out.f) > math.MaxFloat32 && !math.IsInf(out.f, 0) {
			return NumberValue{}, false
		}
		return out, true
	case p.IsInteger():
		if n.repr == reprFloat {
			return NumberValue{}, false
		}
		bits := p.Bits()
		if p.IsSigned() {
			if n.repr == reprUint {
				if n.u > math.MaxInt64 {
					return NumberValue{}, false
				}
				n.i = int64(n.u)
			}
			lo := int64(-1) << (bits - 1)
			hi := int64(1)<<(bits-1) - 1
			if n.i < lo || n.i > hi {
				return NumberValue{}, false
			}
			out.repr, out.i = reprInt, n.i
			return out, true
		}
		u := n.u
		if n.repr == reprInt {
			if n.i < 0 {
				return NumberValue{}, false
			}
			u = uint64(n.i)
		}
		if bits < 64 && u > uint64(1)<<bits-1 {
			return NumberValue{}, false
		}
		out.repr, out.u = reprUint, u
		return out, true
	}
	return NumberValue{}, false
}

// DurationType

func (t DurationType) acceptsDefault(v InitializerDefault) bool {
	return v.kind == DefaultDurationKind
}

func (t DurationType) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	if !t.acceptsDefault(v) || v.d < 0 {
		return ValidatedDefault{}, badValue(t.TypeName(), v)
	}
	unit := time.Millisecond
	if t == Seconds {
		unit = time.Second
	}
	if v.d%unit != 0 {
		return ValidatedDefault{}, badValue(t.TypeName(), v)
	}
	return ValidatedDefault{Kind: DefaultDurationKind, Duration: v.d, DurationType: t}, nil
}

// *Enum

func (e *Enum) acceptsDefault(v InitializerDefault) bool {
	return v.kind == DefaultVariantKind
}

func (e *Enum) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	if !e.acceptsDefault(v) {
		return ValidatedDefault{}, badValue(e.TypeName(), v)
	}
	variant, ok := e.FindVariantByName(v.s)
	if !ok {
		return ValidatedDefault{}, newError(CodeUnknownEnumVariant, e.name.String(), "variant", v.s)
	}
	return ValidatedDefault{Kind: DefaultVariantKind, Enum: e, Variant: variant.Name}, nil
}

// StringType

func (StringType) acceptsDefault(v InitializerDefault) bool {
	return v.kind == DefaultStringKind
}

func (t StringType) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	if !t.acceptsDefault(v) {
		return ValidatedDefault{}, badValue(t.TypeName(), v)
	}
	return ValidatedDefault{Kind: DefaultStringKind, String: v.s}, nil
}

// Types that can never be defaulted.

func (c *ClassDeclaration) acceptsDefault(InitializerDefault) bool { return false }
func (c *ClassDeclaration) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	return ValidatedDefault{}, badValue(c.TypeName(), v)
}

func (it *Iterator) acceptsDefault(InitializerDefault) bool { return false }
func (it *Iterator) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	return ValidatedDefault{}, badValue(it.TypeName(), v)
}

func (a AsynchronousInterface) acceptsDefault(InitializerDefault) bool { return false }
func (a AsynchronousInterface) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	return ValidatedDefault{}, badValue(a.TypeName(), v)
}
