package oobind

// Direction of a conversion across the boundary.
type Direction int

const (
	// TowardNative converts a target-language value into its native form.
	TowardNative Direction = iota
	// TowardTarget converts a native value into its target-language form.
	TowardTarget
)

func (d Direction) String() string {
	if d == TowardTarget {
		return "to_target"
	}
	return "to_native"
}

// Dialect renders conversion expressions for one target language. It only
// formats text: whether a value is copied, borrowed or moved has already
// been decided by the Type the expression belongs to, and a moved value
// reaches the Dialect already wrapped by Move.
//
// Implementations live in package convert.
type Dialect interface {
	Name() string
	Move(expr string) string

	Primitive(dir Direction, p Primitive, expr string) string
	PrimitiveRef(dir Direction, p Primitive, expr string) string
	Duration(dir Direction, unit DurationType, expr string) string
	Enum(dir Direction, e *Enum, expr string) string
	String(dir Direction, expr string) string
	Struct(dir Direction, s StructType, expr string) string
	StructRef(dir Direction, decl *StructDeclaration, expr string) string
	Class(dir Direction, c *ClassDeclaration, expr string) string
	Interface(dir Direction, i *Interface, expr string) string
	Iterator(dir Direction, it *Iterator, expr string) string
	Collection(dir Direction, c *Collection, expr string) string
}

// moveIfNeeded wraps expr with the dialect's move operation when t transfers
// ownership toward native code.
func moveIfNeeded(t Type, d Dialect, expr string) string {
	if IsMoveType(t) {
		return d.Move(expr)
	}
	return expr
}

// Convert is a convenience over t.ToNative/t.ToTarget selected by dir.
func Convert(t Type, d Dialect, dir Direction, expr string) string {
	if dir == TowardTarget {
		return t.ToTarget(d, expr)
	}
	return t.ToNative(d, expr)
}
