package oobind

import (
	"fmt"
	"reflect"
)

// StatementKind classifies top-level statements.
type StatementKind int

const (
	StmtConstants StatementKind = iota
	StmtStructDeclaration
	StmtStructDefinition
	StmtEnum
	StmtErrorType
	StmtClassDeclaration
	StmtClassDefinition
	StmtStaticClass
	StmtInterface
	StmtIterator
	StmtCollection
	StmtFunction
)

func (k StatementKind) String() string {
	switch k {
	case StmtConstants:
		return "constants"
	case StmtStructDeclaration:
		return "struct_declaration"
	case StmtStructDefinition:
		return "struct_definition"
	case StmtEnum:
		return "enum"
	case StmtErrorType:
		return "error_type"
	case StmtClassDeclaration:
		return "class_declaration"
	case StmtClassDefinition:
		return "class_definition"
	case StmtStaticClass:
		return "static_class"
	case StmtInterface:
		return "interface"
	case StmtIterator:
		return "iterator"
	case StmtCollection:
		return "collection"
	case StmtFunction:
		return "function"
	}
	return "unknown"
}

// Statement is one top-level entry of a library, in emission order.
// Declarations always precede the statements that use them.
type Statement interface {
	Node
	StatementKind() StatementKind
	// uniqueName is the symbol the statement claims, if any.
	uniqueName() (Name, bool)
}

// LibraryBuilder assembles the statements of one library. Every Define/Declare
// call checks its local invariants immediately; Build then produces an
// unvalidated Library.
type LibraryBuilder struct {
	version  Version
	info     LibraryInfo
	settings *LibrarySettings

	arena      *arena
	statements []Statement
	symbols    map[string]struct{}

	structDefs map[*StructDeclaration]StructType
	classDefs  map[*ClassDeclaration]*Class
}

// NewLibraryBuilder starts a library.
func NewLibraryBuilder(version Version, info LibraryInfo, settings *LibrarySettings) *LibraryBuilder {
	return &LibraryBuilder{
		version:    version,
		info:       info,
		settings:   settings,
		arena:      &arena{},
		symbols:    map[string]struct{}{},
		structDefs: map[*StructDeclaration]StructType{},
		classDefs:  map[*ClassDeclaration]*Class{},
	}
}

func (b *LibraryBuilder) Settings() *LibrarySettings { return b.settings }

// addStatement checks that everything s references was created by this
// builder and that its name is still free. Only then does s receive its
// node ID through slot and join the statement list.
func (b *LibraryBuilder) addStatement(s Statement, slot *node) error {
	if err := b.checkReferences(s); err != nil {
		return err
	}
	name, unique := s.uniqueName()
	if unique {
		if _, dup := b.symbols[name.String()]; dup {
			return newError(CodeSymbolAlreadyUsed, name.String())
		}
	}
	b.arena.register(s, slot)
	if unique {
		b.symbols[name.String()] = struct{}{}
	}
	b.statements = append(b.statements, s)
	return nil
}

func (b *LibraryBuilder) checkOwned(n Node) error {
	if isNilNode(n) {
		return newError(CodeUndefinedReference, "", "type", fmt.Sprintf("%T", n))
	}
	if n.owner() != b.arena {
		return newError(CodeNotPartOfThisLibrary, nodeLabel(n))
	}
	return nil
}

// isNilNode reports whether n is nil or a nil pointer behind the interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (b *LibraryBuilder) checkType(t any) error {
	if a, ok := t.(AsynchronousInterface); ok && a.iface != nil && a.iface.mode != Asynchronous {
		return newError(CodeInterfaceNotAsynchronous, a.iface.name.String())
	}
	if n := typeNode(t); n != nil {
		return b.checkOwned(n)
	}
	return nil
}

// typeNode returns the entity a type refers to, nil for scalars. References
// and wrappers return their target even when it is a nil pointer, so that
// checkOwned reports it.
func typeNode(t any) Node {
	switch v := t.(type) {
	case nil:
		return nil
	case StructRef:
		return v.decl
	case ClassMutRef:
		return v.decl
	case AsynchronousInterface:
		return v.iface
	case Node:
		return v
	}
	return nil
}

func (b *LibraryBuilder) checkReferences(s Statement) error {
	switch v := s.(type) {
	case *Function:
		for _, a := range v.args {
			if err := b.checkType(a.Type); err != nil {
				return err
			}
		}
		if v.ret != nil {
			if err := b.checkType(v.ret.Type); err != nil {
				return err
			}
		}
		if v.errorType != nil {
			return b.checkOwned(v.errorType)
		}
	case StructType:
		if err := b.checkOwned(v.Declaration()); err != nil {
			return err
		}
		for _, t := range v.FieldTypes() {
			if err := b.checkType(t); err != nil {
				return err
			}
		}
	case *Class:
		if err := b.checkOwned(v.decl); err != nil {
			return err
		}
		for _, f := range v.Functions() {
			if err := b.checkOwned(f); err != nil {
				return err
			}
		}
	case *StaticClass:
		for _, m := range v.methods {
			if err := b.checkOwned(m.Function); err != nil {
				return err
			}
		}
	case *Interface:
		for _, cb := range v.callbacks {
			for _, a := range cb.args {
				if err := b.checkType(a.Type); err != nil {
					return err
				}
			}
			if cb.ret != nil {
				if err := b.checkType(cb.ret.Type); err != nil {
					return err
				}
			}
		}
	case *Iterator:
		if err := b.checkOwned(v.next); err != nil {
			return err
		}
		return b.checkType(v.item)
	case *Collection:
		for _, f := range []*Function{v.create, v.delete, v.add} {
			if err := b.checkOwned(f); err != nil {
				return err
			}
		}
		return b.checkType(v.itemType)
	}
	return nil
}

func nodeLabel(n Node) string {
	if named, ok := n.(interface{ Name() Name }); ok {
		return named.Name().String()
	}
	return "node"
}

// Build adds the "version" function and seals the statement list into an
// unvalidated Library.
func (b *LibraryBuilder) Build() (*Library, error) {
	_, err := b.DefineFunction("version").
		Returns(StringType{}, NewDoc("Version number")).
		Doc(NewDoc("Get the version of the library as a string")).
		Build()
	if err != nil {
		return nil, err
	}
	return &Library{
		version:    b.version,
		info:       b.info,
		settings:   b.settings,
		arena:      b.arena,
		statements: append([]Statement(nil), b.statements...),
	}, nil
}

// Library is the unvalidated output of LibraryBuilder.Build. It exposes no
// statements: the only way to walk the graph is through Validate.
type Library struct {
	version    Version
	info       LibraryInfo
	settings   *LibrarySettings
	arena      *arena
	statements []Statement
}

func (l *Library) Version() Version           { return l.version }
func (l *Library) Info() LibraryInfo          { return l.info }
func (l *Library) Settings() *LibrarySettings { return l.settings }
