package oobind

// StructKind is the context a struct is allowed in. It fixes the set of field
// types the struct may contain.
type StructKind int

const (
	FunctionArgStructKind StructKind = iota
	FunctionReturnStructKind
	CallbackArgStructKind
	UniversalStructKind
)

func (k StructKind) String() string {
	switch k {
	case FunctionArgStructKind:
		return "function argument struct"
	case FunctionReturnStructKind:
		return "function return struct"
	case CallbackArgStructKind:
		return "callback argument struct"
	case UniversalStructKind:
		return "universal struct"
	}
	return "struct"
}

// Visibility of struct fields in the generated bindings. Private structs are
// opaque to users.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// StructDeclaration is a forward declaration. It may be referenced (by
// StructRef) before the struct is defined.
type StructDeclaration struct {
	node
	name     Name
	kind     StructKind
	settings *LibrarySettings
}

func (d *StructDeclaration) Name() Name                   { return d.name }
func (d *StructDeclaration) Kind() StructKind             { return d.kind }
func (d *StructDeclaration) Settings() *LibrarySettings   { return d.settings }
func (d *StructDeclaration) StatementKind() StatementKind { return StmtStructDeclaration }
func (d *StructDeclaration) uniqueName() (Name, bool)     { return d.name, true }

// Ref returns a by-reference use of the declared struct.
func (d *StructDeclaration) Ref() StructRef { return StructRef{decl: d} }

// StructRef is a pointer to a declared struct.
type StructRef struct{ decl *StructDeclaration }

func (r StructRef) Declaration() *StructDeclaration { return r.decl }
func (r StructRef) PassBy() PassBy                  { return ConstRef }
func (r StructRef) TypeName() string                { return "ref struct " + r.decl.name.String() }
func (r StructRef) ToNative(d Dialect, expr string) string {
	return d.StructRef(TowardNative, r.decl, expr)
}
func (r StructRef) ToTarget(d Dialect, expr string) string {
	return d.StructRef(TowardTarget, r.decl, expr)
}

// StructField is one field of a struct whose field types are limited to F.
type StructField[F StructFieldType] struct {
	Name Name
	Type F
	doc  Doc
}

func (f *StructField[F]) RawDoc() Doc { return f.doc }

// AnyStructField is a kind-independent view of a field.
type AnyStructField struct {
	Name  Name
	Type  StructFieldType
	Field Documented
}

// InitializerType tells whether an initializer is a constructor or a static
// factory method in the target language.
type InitializerType int

const (
	NormalInitializer InitializerType = iota
	StaticInitializer
)

func (t InitializerType) String() string {
	if t == StaticInitializer {
		return "static"
	}
	return "normal"
}

// FieldDefault assigns a default value to a field in an initializer.
type FieldDefault struct {
	Field string
	Value InitializerDefault
}

// Set is shorthand for FieldDefault{Field: field, Value: v}.
func Set(field string, v InitializerDefault) FieldDefault {
	return FieldDefault{Field: field, Value: v}
}

type initValue struct {
	field Name
	value InitializerDefault
}

// Initializer is a named alternate constructor. Fields it defaults are not
// arguments of the generated constructor.
type Initializer struct {
	Name   Name
	Type   InitializerType
	values []initValue
	doc    Doc
}

func (i *Initializer) RawDoc() Doc { return i.doc }

// Defaults returns the defaults as written, in declaration order.
func (i *Initializer) Defaults() []FieldDefault {
	out := make([]FieldDefault, len(i.values))
	for k, v := range i.values {
		out[k] = FieldDefault{Field: v.field.String(), Value: v.value}
	}
	return out
}

// Defaulted reports whether the initializer supplies field.
func (i *Initializer) Defaulted(field Name) bool {
	for _, v := range i.values {
		if v.field == field {
			return true
		}
	}
	return false
}

// IsFull reports whether every field is an argument.
func (i *Initializer) IsFull() bool { return len(i.values) == 0 }

func (i *Initializer) argSet() map[Name]struct{} {
	m := make(map[Name]struct{}, len(i.values))
	for _, v := range i.values {
		m[v.field] = struct{}{}
	}
	return m
}

// collidesWith reports two normal initializers defaulting the same fields:
// they would produce constructors with identical signatures.
func (i *Initializer) collidesWith(o *Initializer) bool {
	if i.Type != NormalInitializer || o.Type != NormalInitializer {
		return false
	}
	a, b := i.argSet(), o.argSet()
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// StructType is a defined struct of any kind.
type StructType interface {
	Statement
	Type
	Documented
	Name() Name
	Declaration() *StructDeclaration
	Kind() StructKind
	Visibility() Visibility
	AnyFields() []AnyStructField
	FieldTypes() []StructFieldType
	Initializers() []*Initializer
	DefaultInitializer() (*Initializer, bool)
	FullInitializer() (*Initializer, bool)
	isStructType()
}

// Struct is a record whose field types are limited to the closed set F.
type Struct[F StructFieldType] struct {
	node
	self         StructType
	decl         *StructDeclaration
	visibility   Visibility
	fields       []*StructField[F]
	initializers []*Initializer
	doc          Doc
}

func (s *Struct[F]) Name() Name                      { return s.decl.name }
func (s *Struct[F]) Declaration() *StructDeclaration { return s.decl }
func (s *Struct[F]) Kind() StructKind                { return s.decl.kind }
func (s *Struct[F]) Visibility() Visibility          { return s.visibility }
func (s *Struct[F]) Settings() *LibrarySettings      { return s.decl.settings }
func (s *Struct[F]) Fields() []*StructField[F]       { return s.fields }
func (s *Struct[F]) Initializers() []*Initializer    { return s.initializers }
func (s *Struct[F]) RawDoc() Doc                     { return s.doc }
func (s *Struct[F]) StatementKind() StatementKind    { return StmtStructDefinition }
func (s *Struct[F]) uniqueName() (Name, bool)        { return Name{}, false }
func (s *Struct[F]) isStructType()                   {}

func (s *Struct[F]) AnyFields() []AnyStructField {
	out := make([]AnyStructField, len(s.fields))
	for i, f := range s.fields {
		out[i] = AnyStructField{Name: f.Name, Type: f.Type, Field: f}
	}
	return out
}

func (s *Struct[F]) FieldTypes() []StructFieldType {
	out := make([]StructFieldType, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Type
	}
	return out
}

// FindField returns the field called name.
func (s *Struct[F]) FindField(name string) (*StructField[F], bool) {
	for _, f := range s.fields {
		if f.Name.String() == name {
			return f, true
		}
	}
	return nil, false
}

// DefaultInitializer is the normal initializer defaulting every field.
func (s *Struct[F]) DefaultInitializer() (*Initializer, bool) {
	for _, i := range s.initializers {
		if i.Type == NormalInitializer && len(i.values) == len(s.fields) {
			return i, true
		}
	}
	return nil, false
}

// FullInitializer is the initializer taking every field as an argument.
func (s *Struct[F]) FullInitializer() (*Initializer, bool) {
	for _, i := range s.initializers {
		if i.IsFull() {
			return i, true
		}
	}
	return nil, false
}

// InitializerArgs returns the fields init takes as arguments, in field order.
func (s *Struct[F]) InitializerArgs(init *Initializer) []*StructField[F] {
	var out []*StructField[F]
	for _, f := range s.fields {
		if !init.Defaulted(f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// PassBy is Move when any field is a move type, else ConstRef. Nested
// structs answer the same question for their own fields, so ownership
// transfer propagates through every level of nesting.
func (s *Struct[F]) PassBy() PassBy {
	for _, f := range s.fields {
		if IsMoveType(f.Type) {
			return Move
		}
	}
	return ConstRef
}

func (s *Struct[F]) TypeName() string { return "struct " + s.decl.name.String() }

func (s *Struct[F]) ToNative(d Dialect, expr string) string {
	return d.Struct(TowardNative, s.self, moveIfNeeded(s, d, expr))
}

func (s *Struct[F]) ToTarget(d Dialect, expr string) string {
	return d.Struct(TowardTarget, s.self, expr)
}

func (s *Struct[F]) acceptsDefault(v InitializerDefault) bool {
	return v.kind == DefaultStructKind
}

func (s *Struct[F]) resolveDefault(v InitializerDefault) (ValidatedDefault, error) {
	if !s.acceptsDefault(v) {
		return ValidatedDefault{}, badValue(s.TypeName(), v)
	}
	init, ok := s.DefaultInitializer()
	if !ok {
		return ValidatedDefault{}, newError(CodeStructInitializerStructFieldWithoutDefaultInitializer, s.decl.name.String())
	}
	return ValidatedDefault{Kind: DefaultStructKind, Struct: s.self, Initializer: init}, nil
}

// FunctionArgStruct is passed to native functions, borrowed for the call.
type FunctionArgStruct struct {
	Struct[FunctionArgStructField]
}

// FunctionReturnStruct is returned by native functions and owned by the caller.
type FunctionReturnStruct struct {
	Struct[FunctionReturnStructField]
}

// CallbackArgStruct is handed to callbacks, borrowed for the callback only.
type CallbackArgStruct struct {
	Struct[CallbackArgStructField]
}

// UniversalStruct is usable in every context.
type UniversalStruct struct {
	Struct[UniversalStructField]
}

// IteratorItem is a struct an iterator can yield.
type IteratorItem interface {
	StructType
	isIteratorItem()
}

func (*FunctionReturnStruct) isIteratorItem() {}
func (*UniversalStruct) isIteratorItem()      {}

// IsUniversal reports whether t is a universal struct.
func IsUniversal(t Type) bool {
	_, ok := t.(*UniversalStruct)
	return ok
}
