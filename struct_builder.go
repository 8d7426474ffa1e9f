package oobind

func (b *LibraryBuilder) declareStruct(name string, kind StructKind) (*StructDeclaration, error) {
	n, err := parseName(name)
	if err != nil {
		return nil, err
	}
	d := &StructDeclaration{name: n, kind: kind, settings: b.settings}
	if err := b.addStatement(d, &d.node); err != nil {
		return nil, err
	}
	return d, nil
}

// DeclareFunctionArgStruct forward-declares a function argument struct.
func (b *LibraryBuilder) DeclareFunctionArgStruct(name string) (*StructDeclaration, error) {
	return b.declareStruct(name, FunctionArgStructKind)
}

// DeclareFunctionReturnStruct forward-declares a function return struct.
func (b *LibraryBuilder) DeclareFunctionReturnStruct(name string) (*StructDeclaration, error) {
	return b.declareStruct(name, FunctionReturnStructKind)
}

// DeclareCallbackArgStruct forward-declares a callback argument struct.
func (b *LibraryBuilder) DeclareCallbackArgStruct(name string) (*StructDeclaration, error) {
	return b.declareStruct(name, CallbackArgStructKind)
}

// DeclareUniversalStruct forward-declares a universal struct.
func (b *LibraryBuilder) DeclareUniversalStruct(name string) (*StructDeclaration, error) {
	return b.declareStruct(name, UniversalStructKind)
}

// structBuilder holds what all four struct builders share. B is the concrete
// builder so chained calls keep their type.
type structBuilder[F StructFieldType, B any] struct {
	sticky
	lib          *LibraryBuilder
	self         B
	decl         *StructDeclaration
	visibility   Visibility
	fields       []*StructField[F]
	fieldNames   map[string]struct{}
	initializers []*Initializer
	doc          optionalDoc
}

func (sb *structBuilder[F, B]) init(lib *LibraryBuilder, self B, kind StructKind, decl *StructDeclaration, declErr error) {
	sb.lib = lib
	sb.self = self
	sb.fieldNames = map[string]struct{}{}
	if sb.fail(declErr) {
		return
	}
	if err := lib.checkOwned(decl); sb.fail(err) {
		return
	}
	sb.decl = decl
	sb.doc.symbol = decl.name.String()
	if decl.kind != kind {
		sb.fail(newError(CodeStructKindMismatch, decl.name.String(), "declared", decl.kind.String(), "defined", kind.String()))
		return
	}
	if _, defined := lib.structDefs[decl]; defined {
		sb.fail(newError(CodeStructAlreadyDefined, decl.name.String()))
	}
}

func (sb *structBuilder[F, B]) symbol() string {
	if sb.decl == nil {
		return ""
	}
	return sb.decl.name.String()
}

// Field appends a field. Field order is preserved.
func (sb *structBuilder[F, B]) Field(name string, t F, doc Doc) B {
	if sb.failed() {
		return sb.self
	}
	n, err := parseName(name)
	if sb.fail(err) {
		return sb.self
	}
	if _, dup := sb.fieldNames[name]; dup || sb.hasInitializer(name) {
		sb.fail(newError(CodeStructFieldDuplicateName, sb.symbol(), "field", name))
		return sb.self
	}
	if sb.fail(sb.lib.checkType(t)) {
		return sb.self
	}
	if sb.fail(doc.attach(sb.symbol())) {
		return sb.self
	}
	sb.fieldNames[name] = struct{}{}
	sb.fields = append(sb.fields, &StructField[F]{Name: n, Type: t, doc: doc})
	return sb.self
}

// Doc sets the struct documentation.
func (sb *structBuilder[F, B]) Doc(doc Doc) B {
	if !sb.failed() {
		sb.fail(sb.doc.set(doc))
	}
	return sb.self
}

// Initializer adds a named initializer. Fields listed in defaults are filled
// in by the initializer; the rest become its arguments.
func (sb *structBuilder[F, B]) Initializer(name string, typ InitializerType, doc Doc, defaults ...FieldDefault) B {
	if sb.failed() {
		return sb.self
	}
	init, err := sb.newInitializer(name, typ, doc, defaults)
	if sb.fail(err) {
		return sb.self
	}
	sb.initializers = append(sb.initializers, init)
	return sb.self
}

// FullInitializer adds a normal initializer taking every field as argument.
func (sb *structBuilder[F, B]) FullInitializer(name string) B {
	if sb.failed() {
		return sb.self
	}
	doc := NewDoc("Fully construct {struct:" + sb.symbol() + "} specifying the value of each field")
	return sb.Initializer(name, NormalInitializer, doc)
}

// Err returns the first error recorded by the chain.
func (sb *structBuilder[F, B]) Err() error { return sb.err }

func (sb *structBuilder[F, B]) hasInitializer(name string) bool {
	for _, i := range sb.initializers {
		if i.Name.String() == name {
			return true
		}
	}
	return false
}

func (sb *structBuilder[F, B]) fieldType(name string) (F, bool) {
	for _, f := range sb.fields {
		if f.Name.String() == name {
			return f.Type, true
		}
	}
	var zero F
	return zero, false
}

func (sb *structBuilder[F, B]) newInitializer(name string, typ InitializerType, doc Doc, defaults []FieldDefault) (*Initializer, error) {
	sym := sb.symbol()
	n, err := parseName(name)
	if err != nil {
		return nil, err
	}
	if _, clash := sb.fieldNames[name]; clash || sb.hasInitializer(name) {
		return nil, newError(CodeStructInitializerDuplicateName, sym, "initializer", name)
	}
	if err := doc.attach(sym); err != nil {
		return nil, err
	}
	init := &Initializer{Name: n, Type: typ, doc: doc}
	seen := map[string]struct{}{}
	for _, d := range defaults {
		if _, dup := seen[d.Field]; dup {
			return nil, newError(CodeStructInitializerDuplicateField, sym, "initializer", name, "field", d.Field)
		}
		seen[d.Field] = struct{}{}
		t, ok := sb.fieldType(d.Field)
		if !ok {
			return nil, newError(CodeStructInitializerUnknownField, sym, "initializer", name, "field", d.Field)
		}
		if !t.acceptsDefault(d.Value) {
			e := badValue(t.TypeName(), d.Value)
			e.Symbol = sym
			e.Params["field"] = d.Field
			return nil, e
		}
		init.values = append(init.values, initValue{field: MustName(d.Field), value: d.Value})
	}
	for _, other := range sb.initializers {
		if init.collidesWith(other) {
			return nil, newError(CodeStructDuplicateInitializerArgs, sym, "initializer", name, "other", other.Name.String())
		}
	}
	return init, nil
}

// finish produces the shared struct body; the caller wraps and registers it.
func (sb *structBuilder[F, B]) finish() (Struct[F], error) {
	if sb.err != nil {
		return Struct[F]{}, sb.err
	}
	doc, err := sb.doc.extract()
	if err != nil {
		return Struct[F]{}, err
	}
	return Struct[F]{
		decl:         sb.decl,
		visibility:   sb.visibility,
		fields:       sb.fields,
		initializers: sb.initializers,
		doc:          doc,
	}, nil
}

// registerStruct adds a finished struct to the library.
func (b *LibraryBuilder) registerStruct(s StructType, slot *node) error {
	decl := s.Declaration()
	if _, defined := b.structDefs[decl]; defined {
		return newError(CodeStructAlreadyDefined, decl.name.String())
	}
	if err := b.addStatement(s, slot); err != nil {
		return err
	}
	b.structDefs[decl] = s
	return nil
}

// FunctionArgStructBuilder defines a FunctionArgStruct.
type FunctionArgStructBuilder struct {
	structBuilder[FunctionArgStructField, *FunctionArgStructBuilder]
}

// DefineFunctionArgStruct declares and defines a function argument struct.
func (b *LibraryBuilder) DefineFunctionArgStruct(name string) *FunctionArgStructBuilder {
	decl, err := b.DeclareFunctionArgStruct(name)
	return b.DefineFunctionArgStructFrom(decl, err)
}

// DefineFunctionArgStructFrom defines a previously declared struct. declErr
// lets the result of a Declare call be passed straight through.
func (b *LibraryBuilder) DefineFunctionArgStructFrom(decl *StructDeclaration, declErr error) *FunctionArgStructBuilder {
	sb := &FunctionArgStructBuilder{}
	sb.init(b, sb, FunctionArgStructKind, decl, declErr)
	return sb
}

func (sb *FunctionArgStructBuilder) Build() (*FunctionArgStruct, error) {
	body, err := sb.finish()
	if err != nil {
		return nil, err
	}
	s := &FunctionArgStruct{Struct: body}
	s.self = s
	if err := sb.lib.registerStruct(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}

func (sb *FunctionArgStructBuilder) MustBuild() *FunctionArgStruct {
	s, err := sb.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// FunctionReturnStructBuilder defines a FunctionReturnStruct.
type FunctionReturnStructBuilder struct {
	structBuilder[FunctionReturnStructField, *FunctionReturnStructBuilder]
}

// DefineFunctionReturnStruct declares and defines a function return struct.
func (b *LibraryBuilder) DefineFunctionReturnStruct(name string) *FunctionReturnStructBuilder {
	decl, err := b.DeclareFunctionReturnStruct(name)
	return b.DefineFunctionReturnStructFrom(decl, err)
}

func (b *LibraryBuilder) DefineFunctionReturnStructFrom(decl *StructDeclaration, declErr error) *FunctionReturnStructBuilder {
	sb := &FunctionReturnStructBuilder{}
	sb.init(b, sb, FunctionReturnStructKind, decl, declErr)
	return sb
}

// DefineOpaqueFunctionReturnStruct defines a return struct whose fields are
// hidden from users of the bindings.
func (b *LibraryBuilder) DefineOpaqueFunctionReturnStruct(name string) *FunctionReturnStructBuilder {
	sb := b.DefineFunctionReturnStruct(name)
	sb.visibility = Private
	return sb
}

func (sb *FunctionReturnStructBuilder) Build() (*FunctionReturnStruct, error) {
	body, err := sb.finish()
	if err != nil {
		return nil, err
	}
	s := &FunctionReturnStruct{Struct: body}
	s.self = s
	if err := sb.lib.registerStruct(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}

func (sb *FunctionReturnStructBuilder) MustBuild() *FunctionReturnStruct {
	s, err := sb.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// CallbackArgStructBuilder defines a CallbackArgStruct.
type CallbackArgStructBuilder struct {
	structBuilder[CallbackArgStructField, *CallbackArgStructBuilder]
}

// DefineCallbackArgStruct declares and defines a callback argument struct.
func (b *LibraryBuilder) DefineCallbackArgStruct(name string) *CallbackArgStructBuilder {
	decl, err := b.DeclareCallbackArgStruct(name)
	return b.DefineCallbackArgStructFrom(decl, err)
}

func (b *LibraryBuilder) DefineCallbackArgStructFrom(decl *StructDeclaration, declErr error) *CallbackArgStructBuilder {
	sb := &CallbackArgStructBuilder{}
	sb.init(b, sb, CallbackArgStructKind, decl, declErr)
	return sb
}

func (sb *CallbackArgStructBuilder) Build() (*CallbackArgStruct, error) {
	body, err := sb.finish()
	if err != nil {
		return nil, err
	}
	s := &CallbackArgStruct{Struct: body}
	s.self = s
	if err := sb.lib.registerStruct(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}

func (sb *CallbackArgStructBuilder) MustBuild() *CallbackArgStruct {
	s, err := sb.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// UniversalStructBuilder defines a UniversalStruct.
type UniversalStructBuilder struct {
	structBuilder[UniversalStructField, *UniversalStructBuilder]
}

// DefineUniversalStruct declares and defines a universal struct.
func (b *LibraryBuilder) DefineUniversalStruct(name string) *UniversalStructBuilder {
	decl, err := b.DeclareUniversalStruct(name)
	return b.DefineUniversalStructFrom(decl, err)
}

func (b *LibraryBuilder) DefineUniversalStructFrom(decl *StructDeclaration, declErr error) *UniversalStructBuilder {
	sb := &UniversalStructBuilder{}
	sb.init(b, sb, UniversalStructKind, decl, declErr)
	return sb
}

func (sb *UniversalStructBuilder) Build() (*UniversalStruct, error) {
	body, err := sb.finish()
	if err != nil {
		return nil, err
	}
	s := &UniversalStruct{Struct: body}
	s.self = s
	if err := sb.lib.registerStruct(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}

func (sb *UniversalStructBuilder) MustBuild() *UniversalStruct {
	s, err := sb.Build()
	if err != nil {
		panic(err)
	}
	return s
}
