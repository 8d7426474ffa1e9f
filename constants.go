package oobind

import (
	"fmt"
	"strconv"
)

// Representation is how a constant value is spelled in generated code.
type Representation int

const (
	Hex Representation = iota
	Decimal
)

// ConstantValue is the value of a named constant. Only u8 is supported.
type ConstantValue struct {
	U8   uint8
	Repr Representation
}

// ConstantU8 returns a u8 constant value.
func ConstantU8(v uint8, repr Representation) ConstantValue {
	return ConstantValue{U8: v, Repr: repr}
}

func (v ConstantValue) Type() Primitive { return U8 }

func (v ConstantValue) String() string {
	if v.Repr == Hex {
		return fmt.Sprintf("0x%02X", v.U8)
	}
	return strconv.FormatUint(uint64(v.U8), 10)
}

// Constant is one named value of a ConstantSet.
type Constant struct {
	Name  Name
	Value ConstantValue
	doc   Doc
}

func (c *Constant) RawDoc() Doc { return c.doc }

// ConstantSet groups named constants under one symbol.
type ConstantSet struct {
	node
	name      Name
	constants []*Constant
	settings  *LibrarySettings
	doc       Doc
}

func (s *ConstantSet) Name() Name                   { return s.name }
func (s *ConstantSet) Values() []*Constant          { return s.constants }
func (s *ConstantSet) Settings() *LibrarySettings   { return s.settings }
func (s *ConstantSet) RawDoc() Doc                  { return s.doc }
func (s *ConstantSet) StatementKind() StatementKind { return StmtConstants }
func (s *ConstantSet) uniqueName() (Name, bool)     { return s.name, true }

// ConstantSetBuilder defines a ConstantSet.
type ConstantSetBuilder struct {
	sticky
	lib       *LibraryBuilder
	name      Name
	names     map[string]struct{}
	constants []*Constant
	doc       optionalDoc
}

// DefineConstants starts a constant set.
func (b *LibraryBuilder) DefineConstants(name string) *ConstantSetBuilder {
	cb := &ConstantSetBuilder{lib: b, names: map[string]struct{}{}, doc: optionalDoc{symbol: name}}
	n, err := parseName(name)
	cb.fail(err)
	cb.name = n
	return cb
}

// Add appends a constant. Names are unique within the set.
func (cb *ConstantSetBuilder) Add(name string, value ConstantValue, doc Doc) *ConstantSetBuilder {
	if cb.failed() {
		return cb
	}
	n, err := parseName(name)
	if cb.fail(err) {
		return cb
	}
	if _, dup := cb.names[name]; dup {
		cb.fail(newError(CodeConstantNameAlreadyUsed, cb.name.String(), "constant", name))
		return cb
	}
	if cb.fail(doc.attach(cb.name.String())) {
		return cb
	}
	cb.names[name] = struct{}{}
	cb.constants = append(cb.constants, &Constant{Name: n, Value: value, doc: doc})
	return cb
}

func (cb *ConstantSetBuilder) Doc(doc Doc) *ConstantSetBuilder {
	if !cb.failed() {
		cb.fail(cb.doc.set(doc))
	}
	return cb
}

// Err returns the first error recorded by the chain.
func (cb *ConstantSetBuilder) Err() error { return cb.err }

func (cb *ConstantSetBuilder) Build() (*ConstantSet, error) {
	if cb.err != nil {
		return nil, cb.err
	}
	doc, err := cb.doc.extract()
	if err != nil {
		return nil, err
	}
	s := &ConstantSet{name: cb.name, constants: cb.constants, settings: cb.lib.settings, doc: doc}
	if err := cb.lib.addStatement(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}

func (cb *ConstantSetBuilder) MustBuild() *ConstantSet {
	s, err := cb.Build()
	if err != nil {
		panic(err)
	}
	return s
}
