package oobind

// ValidatedLibrary is a library whose documentation references are bound to
// entities and whose initializer defaults are checked against their field
// types. It can only be obtained from Library.Validate and is read-only.
type ValidatedLibrary struct {
	version    Version
	info       LibraryInfo
	settings   *LibrarySettings
	arena      *arena
	statements []Statement
	docs       map[Documented]ValidatedDoc
	inits      map[*Initializer][]InitializedValue
}

// Validate checks the whole graph. It does not modify l; calling it again
// yields an equivalent ValidatedLibrary.
func (l *Library) Validate() (*ValidatedLibrary, error) {
	v := &validator{
		lib:        l,
		classes:    map[string]*Class{},
		classDecls: map[string]*ClassDeclaration{},
		structs:    map[string]StructType{},
		enums:      map[string]*Enum{},
		interfaces: map[string]*Interface{},
		docs:       map[Documented]ValidatedDoc{},
		inits:      map[*Initializer][]InitializedValue{},
	}
	v.index()
	for _, s := range l.statements {
		if err := v.statement(s); err != nil {
			return nil, err
		}
	}
	return &ValidatedLibrary{
		version:    l.version,
		info:       l.info,
		settings:   l.settings,
		arena:      l.arena,
		statements: l.statements,
		docs:       v.docs,
		inits:      v.inits,
	}, nil
}

type validator struct {
	lib        *Library
	classes    map[string]*Class
	classDecls map[string]*ClassDeclaration
	structs    map[string]StructType
	enums      map[string]*Enum
	interfaces map[string]*Interface
	docs       map[Documented]ValidatedDoc
	inits      map[*Initializer][]InitializedValue
}

func (v *validator) index() {
	for _, s := range v.lib.statements {
		switch x := s.(type) {
		case *Class:
			v.classes[x.Name().String()] = x
		case *ClassDeclaration:
			v.classDecls[x.name.String()] = x
		case StructType:
			v.structs[x.Name().String()] = x
		case *Enum:
			v.enums[x.name.String()] = x
		case *ErrorType:
			v.enums[x.inner.name.String()] = x.inner
		case *Interface:
			v.interfaces[x.name.String()] = x
		}
	}
}

func (v *validator) statement(s Statement) error {
	switch x := s.(type) {
	case *Function:
		args := make([]Name, len(x.args))
		for i, a := range x.args {
			args[i] = a.Name
		}
		sym := x.name.String()
		if err := v.doc(sym, x, args); err != nil {
			return err
		}
		for _, a := range x.args {
			if err := v.doc(sym, a, args); err != nil {
				return err
			}
		}
		if x.ret != nil {
			return v.doc(sym, x.ret, args)
		}
	case StructType:
		return v.structType(x)
	case *Enum:
		return v.enum(x)
	case *ErrorType:
		return v.enum(x.inner)
	case *Class:
		return v.doc(x.Name().String(), x, nil)
	case *StaticClass:
		return v.doc(x.name.String(), x, nil)
	case *Interface:
		return v.iface(x)
	case *ConstantSet:
		sym := x.name.String()
		if err := v.doc(sym, x, nil); err != nil {
			return err
		}
		for _, c := range x.constants {
			if err := v.doc(sym, c, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) enum(e *Enum) error {
	sym := e.name.String()
	if err := v.doc(sym, e, nil); err != nil {
		return err
	}
	for _, variant := range e.variants {
		if err := v.doc(sym, variant, nil); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) iface(i *Interface) error {
	sym := i.name.String()
	if err := v.doc(sym, i, nil); err != nil {
		return err
	}
	for _, cb := range i.callbacks {
		args := make([]Name, len(cb.args))
		for k, a := range cb.args {
			args[k] = a.Name
		}
		cbSym := sym + "." + cb.Name.String()
		if err := v.doc(cbSym, cb, args); err != nil {
			return err
		}
		for _, a := range cb.args {
			if err := v.doc(cbSym, a, args); err != nil {
				return err
			}
		}
		if cb.ret != nil {
			if err := v.doc(cbSym, cb.ret, args); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) structType(s StructType) error {
	sym := s.Name().String()
	if err := v.doc(sym, s, nil); err != nil {
		return err
	}
	fields := s.AnyFields()
	for _, f := range fields {
		if err := v.doc(sym, f.Field, nil); err != nil {
			return err
		}
	}
	for _, init := range s.Initializers() {
		if err := v.doc(sym, init, nil); err != nil {
			return err
		}
		values := make([]InitializedValue, 0, len(init.values))
		for _, iv := range init.values {
			t, ok := fieldType(fields, iv.field)
			if !ok {
				return newError(CodeStructInitializerUnknownField, sym, "initializer", init.Name.String(), "field", iv.field.String())
			}
			resolved, err := t.resolveDefault(iv.value)
			if err != nil {
				return withField(err, sym, iv.field)
			}
			values = append(values, InitializedValue{Field: iv.field, Value: resolved})
		}
		v.inits[init] = values
	}
	return nil
}

func fieldType(fields []AnyStructField, name Name) (StructFieldType, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// withField names the struct and field on a default-value error that was
// raised without that context.
func withField(err error, sym string, field Name) error {
	be, ok := AsBindingError(err)
	if !ok {
		return err
	}
	out := *be
	out.Params = map[string]string{}
	for k, val := range be.Params {
		out.Params[k] = val
	}
	if out.Symbol == "" {
		out.Symbol = sym
	}
	if _, set := out.Params["field"]; !set {
		out.Params["field"] = field.String()
	}
	return &out
}

// doc resolves d. args lists the parameters a {param:x} reference may name;
// nil means parameters cannot be referenced at all.
func (v *validator) doc(sym string, d Documented, args []Name) error {
	raw := d.RawDoc()
	brief, err := v.docString(sym, raw.brief, args)
	if err != nil {
		return err
	}
	out := ValidatedDoc{brief: brief}
	for _, p := range raw.paragraphs {
		text, err := v.docString(sym, p.Text, args)
		if err != nil {
			return err
		}
		out.paragraphs = append(out.paragraphs, DocParagraph[ResolvedRef]{Kind: p.Kind, Text: text})
	}
	v.docs[d] = out
	return nil
}

func (v *validator) docString(sym string, s DocString[DocRef], args []Name) (DocString[ResolvedRef], error) {
	out := DocString[ResolvedRef]{elements: make([]DocElement[ResolvedRef], 0, len(s.elements))}
	for _, el := range s.elements {
		if el.Kind != ElemReference {
			out.elements = append(out.elements, DocElement[ResolvedRef]{Kind: el.Kind, Text: el.Text})
			continue
		}
		ref, err := v.resolve(sym, el.Ref, args)
		if err != nil {
			return out, err
		}
		out.elements = append(out.elements, DocElement[ResolvedRef]{Kind: ElemReference, Ref: ref})
	}
	return out, nil
}

func (v *validator) resolve(sym string, r DocRef, args []Name) (ResolvedRef, error) {
	invalid := newError(CodeDocInvalidReference, sym, "ref", r.String())
	switch r.Kind {
	case RefArgument:
		if args == nil {
			return nil, newError(CodeDocInvalidArgumentContext, sym, "ref", r.Target)
		}
		for _, a := range args {
			if a.String() == r.Target {
				return ArgumentRef{Name: a}, nil
			}
		}
	case RefClass:
		if c, ok := v.classDecls[r.Target]; ok {
			return ClassDocRef{Class: c}, nil
		}
	case RefClassMethod:
		if c, ok := v.classes[r.Target]; ok {
			if fn, ok := c.FindMethod(r.Member); ok {
				return ClassMethodRef{Class: c, Method: MustName(r.Member), Function: fn}, nil
			}
		}
	case RefClassConstructor:
		if c, ok := v.classes[r.Target]; ok && c.constructor != nil {
			return ClassConstructorRef{Class: c, Constructor: c.constructor}, nil
		}
	case RefClassDestructor:
		if c, ok := v.classes[r.Target]; ok && c.destructor != nil {
			return ClassDestructorRef{Class: c, Destructor: c.destructor}, nil
		}
	case RefStruct:
		if s, ok := v.structs[r.Target]; ok {
			return StructDocRef{Struct: s}, nil
		}
	case RefStructField:
		if s, ok := v.structs[r.Target]; ok {
			for _, f := range s.AnyFields() {
				if f.Name.String() == r.Member {
					return StructFieldRef{Struct: s, Field: f.Name}, nil
				}
			}
		}
	case RefEnum:
		if e, ok := v.enums[r.Target]; ok {
			return EnumDocRef{Enum: e}, nil
		}
	case RefEnumVariant:
		if e, ok := v.enums[r.Target]; ok {
			if variant, ok := e.FindVariantByName(r.Member); ok {
				return EnumVariantRef{Enum: e, Variant: variant.Name}, nil
			}
		}
	case RefInterface:
		if i, ok := v.interfaces[r.Target]; ok {
			return InterfaceDocRef{Interface: i}, nil
		}
	case RefInterfaceMethod:
		if i, ok := v.interfaces[r.Target]; ok {
			if cb, ok := i.FindCallback(r.Member); ok {
				return InterfaceCallbackRef{Interface: i, Callback: cb.Name}, nil
			}
		}
	}
	return nil, invalid
}

func (l *ValidatedLibrary) Version() Version           { return l.version }
func (l *ValidatedLibrary) Info() LibraryInfo          { return l.info }
func (l *ValidatedLibrary) Settings() *LibrarySettings { return l.settings }
func (l *ValidatedLibrary) Statements() []Statement    { return l.statements }

// Lookup returns the entity with the given ID.
func (l *ValidatedLibrary) Lookup(id NodeID) (Node, bool) { return l.arena.lookup(id) }

// Doc returns the resolved documentation of d. Class members share the doc
// of their native function.
func (l *ValidatedLibrary) Doc(d Documented) (ValidatedDoc, bool) {
	switch m := d.(type) {
	case *Method:
		d = m.Function
	case *StaticMethod:
		d = m.Function
	case *FutureMethod:
		d = m.Function
	case *ClassConstructor:
		d = m.Function
	case *ClassDestructor:
		d = m.Function
	case *ErrorType:
		d = m.inner
	}
	doc, ok := l.docs[d]
	return doc, ok
}

// InitializedValues returns the checked defaults of init, in declaration order.
func (l *ValidatedLibrary) InitializedValues(init *Initializer) []InitializedValue {
	return l.inits[init]
}

func statementsOf[T Statement](l *ValidatedLibrary) []T {
	var out []T
	for _, s := range l.statements {
		if x, ok := s.(T); ok {
			out = append(out, x)
		}
	}
	return out
}

func (l *ValidatedLibrary) Functions() []*Function        { return statementsOf[*Function](l) }
func (l *ValidatedLibrary) Structs() []StructType         { return statementsOf[StructType](l) }
func (l *ValidatedLibrary) Enums() []*Enum                { return statementsOf[*Enum](l) }
func (l *ValidatedLibrary) ErrorTypes() []*ErrorType      { return statementsOf[*ErrorType](l) }
func (l *ValidatedLibrary) Classes() []*Class             { return statementsOf[*Class](l) }
func (l *ValidatedLibrary) StaticClasses() []*StaticClass { return statementsOf[*StaticClass](l) }
func (l *ValidatedLibrary) Interfaces() []*Interface      { return statementsOf[*Interface](l) }
func (l *ValidatedLibrary) Iterators() []*Iterator        { return statementsOf[*Iterator](l) }
func (l *ValidatedLibrary) Collections() []*Collection    { return statementsOf[*Collection](l) }
func (l *ValidatedLibrary) Constants() []*ConstantSet     { return statementsOf[*ConstantSet](l) }

var basicTypes = []Type{
	Bool, U8, S8, U16, S16, U32, S32, U64, S64, Float, Double,
	Milliseconds, Seconds, StringType{},
}

// FindType resolves a type by name. Basic types use their TypeName
// ("u32", "duration_seconds", "string"); everything else uses the name of
// the enum, struct, class, interface, iterator or collection.
func (l *ValidatedLibrary) FindType(name string) (Type, bool) {
	for _, t := range basicTypes {
		if t.TypeName() == name {
			return t, true
		}
	}
	for _, s := range l.statements {
		var (
			n Name
			t Type
		)
		switch x := s.(type) {
		case *Enum:
			n, t = x.name, x
		case StructType:
			n, t = x.Name(), x
		case *Iterator:
			n, t = x.Name(), x
		case *Collection:
			n, t = x.Name(), x
		case *Interface:
			n, t = x.name, x
			if x.mode == Asynchronous {
				t = AsynchronousInterface{iface: x}
			}
		default:
			continue
		}
		if n.String() == name {
			return t, true
		}
	}
	// Iterator and collection classes share their name with the iterator or
	// collection found above, so plain classes are searched last.
	for _, s := range l.statements {
		if c, ok := s.(*ClassDeclaration); ok && c.name.String() == name {
			return c, true
		}
	}
	return nil, false
}
