package oobind

import (
	"math"
	"strconv"
)

// EnumVariant is one named value of an Enum.
type EnumVariant struct {
	Name  Name
	Value int32
	doc   Doc
}

func (v *EnumVariant) RawDoc() Doc { return v.doc }

// Enum is a named set of unique i32 values with unique names.
type Enum struct {
	node
	name     Name
	variants []*EnumVariant
	settings *LibrarySettings
	doc      Doc
}

func (e *Enum) Name() Name                   { return e.name }
func (e *Enum) Variants() []*EnumVariant     { return e.variants }
func (e *Enum) Settings() *LibrarySettings   { return e.settings }
func (e *Enum) RawDoc() Doc                  { return e.doc }
func (e *Enum) StatementKind() StatementKind { return StmtEnum }
func (e *Enum) uniqueName() (Name, bool)     { return e.name, true }

// FindVariantByName returns the variant called name.
func (e *Enum) FindVariantByName(name string) (*EnumVariant, bool) {
	for _, v := range e.variants {
		if v.Name.String() == name {
			return v, true
		}
	}
	return nil, false
}

// FindVariantByValue returns the variant carrying value.
func (e *Enum) FindVariantByValue(value int32) (*EnumVariant, bool) {
	for _, v := range e.variants {
		if v.Value == value {
			return v, true
		}
	}
	return nil, false
}

func (e *Enum) PassBy() PassBy   { return Copy }
func (e *Enum) TypeName() string { return "enum " + e.name.String() }
func (e *Enum) ToNative(d Dialect, expr string) string {
	return d.Enum(TowardNative, e, expr)
}
func (e *Enum) ToTarget(d Dialect, expr string) string {
	return d.Enum(TowardTarget, e, expr)
}

// EnumBuilder assigns values explicitly or by auto-increment from the last
// assigned value, starting at 0.
type EnumBuilder struct {
	sticky
	lib      *LibraryBuilder
	name     Name
	variants []*EnumVariant
	names    map[string]struct{}
	values   map[int32]struct{}
	next     int32
	maxed    bool // last value was MaxInt32, so there is no next one
	doc      optionalDoc
}

// DefineEnum starts an enum definition.
func (b *LibraryBuilder) DefineEnum(name string) *EnumBuilder {
	eb := newEnumBuilder(b, name)
	return eb
}

func newEnumBuilder(lib *LibraryBuilder, name string) *EnumBuilder {
	eb := &EnumBuilder{
		lib:    lib,
		names:  map[string]struct{}{},
		values: map[int32]struct{}{},
		doc:    optionalDoc{symbol: name},
	}
	n, err := parseName(name)
	eb.fail(err)
	eb.name = n
	return eb
}

// Variant adds a variant with an explicit value.
func (eb *EnumBuilder) Variant(name string, value int32, doc Doc) *EnumBuilder {
	if eb.failed() {
		return eb
	}
	n, err := parseName(name)
	if eb.fail(err) {
		return eb
	}
	if _, dup := eb.names[name]; dup {
		eb.fail(newError(CodeDuplicateEnumVariantName, eb.name.String(), "variant", name))
		return eb
	}
	if _, dup := eb.values[value]; dup {
		eb.fail(newError(CodeDuplicateEnumVariantValue, eb.name.String(), "value", strconv.FormatInt(int64(value), 10)))
		return eb
	}
	if eb.fail(doc.attach(eb.name.String())) {
		return eb
	}
	eb.names[name] = struct{}{}
	eb.values[value] = struct{}{}
	eb.variants = append(eb.variants, &EnumVariant{Name: n, Value: value, doc: doc})
	eb.maxed = value == math.MaxInt32
	eb.next = value + 1
	return eb
}

// Push adds a variant with the next auto-incremented value. It fails when
// the previous value was MaxInt32.
func (eb *EnumBuilder) Push(name string, doc Doc) *EnumBuilder {
	if !eb.failed() && eb.maxed {
		eb.fail(newError(CodeEnumVariantValueOverflow, eb.name.String(), "variant", name))
		return eb
	}
	return eb.Variant(name, eb.next, doc)
}

// Doc sets the enum documentation. It can only be set once.
func (eb *EnumBuilder) Doc(doc Doc) *EnumBuilder {
	if eb.failed() {
		return eb
	}
	eb.fail(eb.doc.set(doc))
	return eb
}

// Err returns the first error recorded by the chain.
func (eb *EnumBuilder) Err() error { return eb.err }

func (eb *EnumBuilder) build() (*Enum, error) {
	if eb.err != nil {
		return nil, eb.err
	}
	doc, err := eb.doc.extract()
	if err != nil {
		return nil, err
	}
	e := &Enum{
		name:     eb.name,
		variants: eb.variants,
		settings: eb.lib.settings,
		doc:      doc,
	}
	return e, nil
}

// Build registers the enum as a statement.
func (eb *EnumBuilder) Build() (*Enum, error) {
	e, err := eb.build()
	if err != nil {
		return nil, err
	}
	if err := eb.lib.addStatement(e, &e.node); err != nil {
		return nil, err
	}
	return e, nil
}

// MustBuild is like Build but panics on error.
func (eb *EnumBuilder) MustBuild() *Enum {
	e, err := eb.Build()
	if err != nil {
		panic(err)
	}
	return e
}
