package oobind

// ClassType tells what a declared class is used for.
type ClassType int

const (
	NormalClass ClassType = iota
	IteratorClass
	CollectionClass
)

// ClassDeclaration is the opaque handle type of a class. It is declared
// before any function can take or return it.
type ClassDeclaration struct {
	node
	name     Name
	kind     ClassType
	settings *LibrarySettings
}

func (c *ClassDeclaration) Name() Name                   { return c.name }
func (c *ClassDeclaration) ClassType() ClassType         { return c.kind }
func (c *ClassDeclaration) Settings() *LibrarySettings   { return c.settings }
func (c *ClassDeclaration) StatementKind() StatementKind { return StmtClassDeclaration }
func (c *ClassDeclaration) uniqueName() (Name, bool)     { return c.name, true }

func (c *ClassDeclaration) PassBy() PassBy   { return ConstRef }
func (c *ClassDeclaration) TypeName() string { return "class " + c.name.String() }
func (c *ClassDeclaration) ToNative(d Dialect, expr string) string {
	return d.Class(TowardNative, c, expr)
}
func (c *ClassDeclaration) ToTarget(d Dialect, expr string) string {
	return d.Class(TowardTarget, c, expr)
}

// Mut returns a mutable reference to the class, for callback arguments.
func (c *ClassDeclaration) Mut() ClassMutRef { return ClassMutRef{decl: c} }

// ClassMutRef is a mutable borrow of a class instance.
type ClassMutRef struct{ decl *ClassDeclaration }

func (r ClassMutRef) Declaration() *ClassDeclaration { return r.decl }
func (r ClassMutRef) PassBy() PassBy                 { return MutRef }
func (r ClassMutRef) TypeName() string               { return "mut class " + r.decl.name.String() }
func (r ClassMutRef) ToNative(d Dialect, expr string) string {
	return d.Class(TowardNative, r.decl, expr)
}
func (r ClassMutRef) ToTarget(d Dialect, expr string) string {
	return d.Class(TowardTarget, r.decl, expr)
}

func (b *LibraryBuilder) declareClass(name string, kind ClassType) (*ClassDeclaration, error) {
	n, err := parseName(name)
	if err != nil {
		return nil, err
	}
	c := &ClassDeclaration{name: n, kind: kind, settings: b.settings}
	if err := b.addStatement(c, &c.node); err != nil {
		return nil, err
	}
	return c, nil
}

// DeclareClass declares an opaque class.
func (b *LibraryBuilder) DeclareClass(name string) (*ClassDeclaration, error) {
	return b.declareClass(name, NormalClass)
}

// DeclareIteratorClass declares the handle type of an iterator.
func (b *LibraryBuilder) DeclareIteratorClass(name string) (*ClassDeclaration, error) {
	return b.declareClass(name, IteratorClass)
}

// DeclareCollectionClass declares the handle type of a collection.
func (b *LibraryBuilder) DeclareCollectionClass(name string) (*ClassDeclaration, error) {
	return b.declareClass(name, CollectionClass)
}

// DestructionKind selects how instances of a class are released.
type DestructionKind int

const (
	// DestroyAutomatic releases instances when the target object is finalized.
	DestroyAutomatic DestructionKind = iota
	// DestroyCustom exposes the destructor as a public method with a custom name.
	DestroyCustom
	// DestroyDispose uses the target language's dispose pattern.
	DestroyDispose
)

// DestructionMode is a DestructionKind plus the method name for DestroyCustom.
type DestructionMode struct {
	Kind   DestructionKind
	Method Name
}

// IsManual reports whether users release instances explicitly.
func (m DestructionMode) IsManual() bool { return m.Kind != DestroyAutomatic }

// ClassConstructor is the function creating instances of a class.
type ClassConstructor struct {
	class    *ClassDeclaration
	Function *Function
}

func (c *ClassConstructor) Class() *ClassDeclaration { return c.class }
func (c *ClassConstructor) RawDoc() Doc              { return c.Function.doc }

// NewClassConstructor checks that fn returns an instance of class.
func (b *LibraryBuilder) NewClassConstructor(class *ClassDeclaration, fn *Function) (*ClassConstructor, error) {
	if err := b.checkOwned(class); err != nil {
		return nil, err
	}
	if err := b.checkOwned(fn); err != nil {
		return nil, err
	}
	if fn.ret == nil {
		return nil, newError(CodeConstructorReturnTypeDoesNotMatch, class.name.String(), "function", fn.name.String())
	}
	if rc, ok := fn.ret.Type.(*ClassDeclaration); !ok || !SameNode(rc, class) {
		return nil, newError(CodeConstructorReturnTypeDoesNotMatch, class.name.String(), "function", fn.name.String())
	}
	return &ClassConstructor{class: class, Function: fn}, nil
}

// ClassDestructor is the function releasing instances of a class.
type ClassDestructor struct {
	class    *ClassDeclaration
	Function *Function
}

func (d *ClassDestructor) Class() *ClassDeclaration { return d.class }
func (d *ClassDestructor) RawDoc() Doc              { return d.Function.doc }

// NewClassDestructor checks that fn takes exactly one instance of class,
// returns nothing and cannot fail.
func (b *LibraryBuilder) NewClassDestructor(class *ClassDeclaration, fn *Function) (*ClassDestructor, error) {
	if err := b.checkOwned(class); err != nil {
		return nil, err
	}
	if err := b.checkOwned(fn); err != nil {
		return nil, err
	}
	sym, fname := class.name.String(), fn.name.String()
	if len(fn.args) != 1 {
		return nil, newError(CodeDestructorTakesMoreThanOneParameter, sym, "function", fname)
	}
	if c, ok := fn.args[0].Type.(*ClassDeclaration); !ok || !SameNode(c, class) {
		return nil, newError(CodeDestructorTakesMoreThanOneParameter, sym, "function", fname)
	}
	if fn.ret != nil {
		return nil, newError(CodeDestructorReturnsValue, sym, "function", fname)
	}
	if fn.errorType != nil {
		return nil, newError(CodeDestructorCannotFail, sym, "function", fname)
	}
	return &ClassDestructor{class: class, Function: fn}, nil
}

// Method is an instance method. Its native function takes the instance as
// first parameter.
type Method struct {
	Name     Name
	class    *ClassDeclaration
	Function *Function
}

func (m *Method) Class() *ClassDeclaration { return m.class }
func (m *Method) RawDoc() Doc              { return m.Function.doc }

// StaticMethod is a class-level function without an instance.
type StaticMethod struct {
	Name     Name
	Function *Function
}

func (m *StaticMethod) RawDoc() Doc { return m.Function.doc }

// FutureMethod is an instance method completing through a future interface
// passed as its last parameter.
type FutureMethod struct {
	Name     Name
	class    *ClassDeclaration
	Future   *FutureInterface
	Function *Function
}

func (m *FutureMethod) Class() *ClassDeclaration { return m.class }
func (m *FutureMethod) RawDoc() Doc              { return m.Function.doc }

// Class is the definition of a declared class.
type Class struct {
	node
	decl          *ClassDeclaration
	constructor   *ClassConstructor
	destructor    *ClassDestructor
	methods       []*Method
	staticMethods []*StaticMethod
	futureMethods []*FutureMethod
	destruction   DestructionMode
	doc           Doc
}

func (c *Class) Name() Name                       { return c.decl.name }
func (c *Class) Declaration() *ClassDeclaration   { return c.decl }
func (c *Class) Constructor() *ClassConstructor   { return c.constructor }
func (c *Class) Destructor() *ClassDestructor     { return c.destructor }
func (c *Class) Methods() []*Method               { return c.methods }
func (c *Class) StaticMethods() []*StaticMethod   { return c.staticMethods }
func (c *Class) FutureMethods() []*FutureMethod   { return c.futureMethods }
func (c *Class) DestructionMode() DestructionMode { return c.destruction }
func (c *Class) Settings() *LibrarySettings       { return c.decl.settings }
func (c *Class) RawDoc() Doc                      { return c.doc }
func (c *Class) StatementKind() StatementKind     { return StmtClassDefinition }
func (c *Class) uniqueName() (Name, bool)         { return Name{}, false }

// Functions returns every native function the class is built on.
func (c *Class) Functions() []*Function {
	var out []*Function
	if c.constructor != nil {
		out = append(out, c.constructor.Function)
	}
	if c.destructor != nil {
		out = append(out, c.destructor.Function)
	}
	for _, m := range c.methods {
		out = append(out, m.Function)
	}
	for _, m := range c.staticMethods {
		out = append(out, m.Function)
	}
	for _, m := range c.futureMethods {
		out = append(out, m.Function)
	}
	return out
}

// FindMethod returns the native function of the method, static method or
// future method called name.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for _, m := range c.methods {
		if m.Name.String() == name {
			return m.Function, true
		}
	}
	for _, m := range c.staticMethods {
		if m.Name.String() == name {
			return m.Function, true
		}
	}
	for _, m := range c.futureMethods {
		if m.Name.String() == name {
			return m.Function, true
		}
	}
	return nil, false
}

// ClassBuilder defines a Class for a declaration.
type ClassBuilder struct {
	sticky
	lib         *LibraryBuilder
	decl        *ClassDeclaration
	constructor *ClassConstructor
	destructor  *ClassDestructor
	methods     []*Method
	statics     []*StaticMethod
	futures     []*FutureMethod
	destruction DestructionMode
	doc         optionalDoc
}

// DefineClass starts the definition of decl.
func (b *LibraryBuilder) DefineClass(decl *ClassDeclaration) *ClassBuilder {
	cb := &ClassBuilder{lib: b, decl: decl}
	if cb.fail(b.checkOwned(decl)) {
		return cb
	}
	cb.doc.symbol = decl.name.String()
	if _, defined := b.classDefs[decl]; defined {
		cb.fail(newError(CodeClassAlreadyDefined, decl.name.String()))
	}
	return cb
}

func (cb *ClassBuilder) symbol() string { return cb.decl.name.String() }

func (cb *ClassBuilder) checkMember(class *ClassDeclaration, fn *Function) bool {
	if SameNode(class, cb.decl) {
		return true
	}
	cb.fail(newError(CodeClassMemberWrongAssociatedClass, cb.symbol(), "function", fn.name.String(), "other", class.name.String()))
	return false
}

func (cb *ClassBuilder) Constructor(c *ClassConstructor) *ClassBuilder {
	if cb.failed() || !cb.checkMember(c.class, c.Function) {
		return cb
	}
	if cb.constructor != nil {
		cb.fail(newError(CodeConstructorAlreadyDefined, cb.symbol()))
		return cb
	}
	cb.constructor = c
	return cb
}

func (cb *ClassBuilder) Destructor(d *ClassDestructor) *ClassBuilder {
	if cb.failed() || !cb.checkMember(d.class, d.Function) {
		return cb
	}
	if cb.destructor != nil {
		cb.fail(newError(CodeDestructorAlreadyDefined, cb.symbol()))
		return cb
	}
	cb.destructor = d
	return cb
}

func (cb *ClassBuilder) Method(m *Method) *ClassBuilder {
	if !cb.failed() && cb.checkMember(m.class, m.Function) {
		cb.methods = append(cb.methods, m)
	}
	return cb
}

// StaticMethod exposes fn as a class-level function called name.
func (cb *ClassBuilder) StaticMethod(name string, fn *Function) *ClassBuilder {
	if cb.failed() {
		return cb
	}
	n, err := parseName(name)
	if cb.fail(err) || cb.fail(cb.lib.checkOwned(fn)) {
		return cb
	}
	cb.statics = append(cb.statics, &StaticMethod{Name: n, Function: fn})
	return cb
}

func (cb *ClassBuilder) FutureMethod(m *FutureMethod) *ClassBuilder {
	if !cb.failed() && cb.checkMember(m.class, m.Function) {
		cb.futures = append(cb.futures, m)
	}
	return cb
}

// CustomDestroy exposes the destructor as a public method called name.
func (cb *ClassBuilder) CustomDestroy(name string) *ClassBuilder {
	if cb.failed() {
		return cb
	}
	n, err := parseName(name)
	if cb.fail(err) {
		return cb
	}
	cb.destruction = DestructionMode{Kind: DestroyCustom, Method: n}
	return cb
}

// Disposable releases instances through the dispose pattern.
func (cb *ClassBuilder) Disposable() *ClassBuilder {
	if !cb.failed() {
		cb.destruction = DestructionMode{Kind: DestroyDispose}
	}
	return cb
}

func (cb *ClassBuilder) Doc(doc Doc) *ClassBuilder {
	if !cb.failed() {
		cb.fail(cb.doc.set(doc))
	}
	return cb
}

// Err returns the first error recorded by the chain.
func (cb *ClassBuilder) Err() error { return cb.err }

func (cb *ClassBuilder) Build() (*Class, error) {
	if cb.err != nil {
		return nil, cb.err
	}
	if cb.destruction.IsManual() && cb.destructor == nil {
		return nil, newError(CodeNoDestructorForManualDestruction, cb.symbol())
	}
	if _, defined := cb.lib.classDefs[cb.decl]; defined {
		return nil, newError(CodeClassAlreadyDefined, cb.symbol())
	}
	doc, err := cb.doc.extract()
	if err != nil {
		return nil, err
	}
	c := &Class{
		decl:          cb.decl,
		constructor:   cb.constructor,
		destructor:    cb.destructor,
		methods:       cb.methods,
		staticMethods: cb.statics,
		futureMethods: cb.futures,
		destruction:   cb.destruction,
		doc:           doc,
	}
	if err := cb.lib.addStatement(c, &c.node); err != nil {
		return nil, err
	}
	cb.lib.classDefs[cb.decl] = c
	return c, nil
}

func (cb *ClassBuilder) MustBuild() *Class {
	c, err := cb.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// ConstructorBuilder defines the constructor function of a class, named
// <class>_<constructor name> and returning the class.
type ConstructorBuilder struct {
	class *ClassDeclaration
	fn    *FunctionBuilder
}

// DefineConstructor starts a constructor for class.
func (b *LibraryBuilder) DefineConstructor(class *ClassDeclaration) *ConstructorBuilder {
	if err := b.checkOwned(class); err != nil {
		fb := &FunctionBuilder{lib: b}
		fb.fail(err)
		return &ConstructorBuilder{class: class, fn: fb}
	}
	name := class.name.Append(b.settings.Class.ConstructorName)
	return &ConstructorBuilder{class: class, fn: b.DefineFunction(name.String())}
}

func (cb *ConstructorBuilder) Param(name string, t FunctionArgument, doc Doc) *ConstructorBuilder {
	cb.fn.Param(name, t, doc)
	return cb
}

func (cb *ConstructorBuilder) FailsWith(e *ErrorType) *ConstructorBuilder {
	cb.fn.FailsWith(e)
	return cb
}

func (cb *ConstructorBuilder) Doc(doc Doc) *ConstructorBuilder {
	cb.fn.Doc(doc)
	return cb
}

func (cb *ConstructorBuilder) Build() (*ClassConstructor, error) {
	if cb.fn.failed() {
		return nil, cb.fn.err
	}
	cb.fn.Returns(cb.class, NewDoc("Instance of {class:"+cb.class.name.String()+"}"))
	fn, err := cb.fn.Build()
	if err != nil {
		return nil, err
	}
	return &ClassConstructor{class: cb.class, Function: fn}, nil
}

// DefineDestructor creates the destructor function <class>_<destructor name>.
func (b *LibraryBuilder) DefineDestructor(class *ClassDeclaration, doc Doc) (*ClassDestructor, error) {
	if err := b.checkOwned(class); err != nil {
		return nil, err
	}
	cs := b.settings.Class
	fn, err := b.DefineFunction(class.name.Append(cs.DestructorName).String()).
		Param(cs.MethodInstanceArgumentName.String(), class, NewDoc("Instance of {class:"+class.name.String()+"} to destroy")).
		Doc(doc).
		Build()
	if err != nil {
		return nil, err
	}
	return &ClassDestructor{class: class, Function: fn}, nil
}

// MethodBuilder defines an instance method. The native function is named
// <class>_<method> and takes the instance as first parameter.
type MethodBuilder struct {
	class *ClassDeclaration
	name  Name
	fn    *FunctionBuilder
}

func (b *LibraryBuilder) methodFunction(class *ClassDeclaration, name string) (Name, *FunctionBuilder) {
	n, err := parseName(name)
	if err == nil {
		err = b.checkOwned(class)
	}
	if err != nil {
		fb := &FunctionBuilder{lib: b}
		fb.fail(err)
		return n, fb
	}
	fb := b.DefineFunction(class.name.Append(n).String())
	if n.Contains(class.name) {
		fb.fail(newError(CodeBadMethodName, class.name.String(), "method", name))
		return n, fb
	}
	fb.Param(b.settings.Class.MethodInstanceArgumentName.String(), class, NewDoc("Instance of {class:"+class.name.String()+"}"))
	return n, fb
}

// DefineMethod starts an instance method of class.
func (b *LibraryBuilder) DefineMethod(class *ClassDeclaration, name string) *MethodBuilder {
	n, fb := b.methodFunction(class, name)
	return &MethodBuilder{class: class, name: n, fn: fb}
}

func (mb *MethodBuilder) Param(name string, t FunctionArgument, doc Doc) *MethodBuilder {
	mb.fn.Param(name, t, doc)
	return mb
}

func (mb *MethodBuilder) Returns(t FunctionReturnValue, doc Doc) *MethodBuilder {
	mb.fn.Returns(t, doc)
	return mb
}

func (mb *MethodBuilder) FailsWith(e *ErrorType) *MethodBuilder {
	mb.fn.FailsWith(e)
	return mb
}

func (mb *MethodBuilder) Doc(doc Doc) *MethodBuilder {
	mb.fn.Doc(doc)
	return mb
}

func (mb *MethodBuilder) Build() (*Method, error) {
	fn, err := mb.fn.Build()
	if err != nil {
		return nil, err
	}
	return &Method{Name: mb.name, class: mb.class, Function: fn}, nil
}

// FutureMethodBuilder defines an instance method whose result is delivered
// through a future passed as last parameter.
type FutureMethodBuilder struct {
	class  *ClassDeclaration
	name   Name
	future *FutureInterface
	fn     *FunctionBuilder
}

// DefineFutureMethod starts a future method of class completing future.
func (b *LibraryBuilder) DefineFutureMethod(class *ClassDeclaration, name string, future *FutureInterface) *FutureMethodBuilder {
	n, fb := b.methodFunction(class, name)
	if future == nil {
		fb.fail(newError(CodeUndefinedReference, name, "type", "*oobind.FutureInterface"))
	} else {
		fb.fail(b.checkOwned(future.Interface))
	}
	return &FutureMethodBuilder{class: class, name: n, future: future, fn: fb}
}

func (mb *FutureMethodBuilder) Param(name string, t FunctionArgument, doc Doc) *FutureMethodBuilder {
	mb.fn.Param(name, t, doc)
	return mb
}

func (mb *FutureMethodBuilder) FailsWith(e *ErrorType) *FutureMethodBuilder {
	mb.fn.FailsWith(e)
	return mb
}

func (mb *FutureMethodBuilder) Doc(doc Doc) *FutureMethodBuilder {
	mb.fn.Doc(doc)
	return mb
}

func (mb *FutureMethodBuilder) Build() (*FutureMethod, error) {
	argName := mb.fn.lib.settings.Future.AsyncMethodCallbackArgName.String()
	mb.fn.Param(argName, mb.future.Interface, NewDoc("callback to invoke when the operation completes"))
	fn, err := mb.fn.Build()
	if err != nil {
		return nil, err
	}
	return &FutureMethod{Name: mb.name, class: mb.class, Future: mb.future, Function: fn}, nil
}

// StaticClass groups functions under a class name without instances.
type StaticClass struct {
	node
	name    Name
	methods []*StaticMethod
	doc     Doc
}

func (s *StaticClass) Name() Name                   { return s.name }
func (s *StaticClass) Methods() []*StaticMethod     { return s.methods }
func (s *StaticClass) RawDoc() Doc                  { return s.doc }
func (s *StaticClass) StatementKind() StatementKind { return StmtStaticClass }
func (s *StaticClass) uniqueName() (Name, bool)     { return s.name, true }

// StaticClassBuilder defines a StaticClass.
type StaticClassBuilder struct {
	sticky
	lib     *LibraryBuilder
	name    Name
	methods []*StaticMethod
	doc     optionalDoc
}

// DefineStaticClass starts a static class.
func (b *LibraryBuilder) DefineStaticClass(name string) *StaticClassBuilder {
	sb := &StaticClassBuilder{lib: b, doc: optionalDoc{symbol: name}}
	n, err := parseName(name)
	sb.fail(err)
	sb.name = n
	return sb
}

// StaticMethod exposes fn as name.
func (sb *StaticClassBuilder) StaticMethod(name string, fn *Function) *StaticClassBuilder {
	if sb.failed() {
		return sb
	}
	n, err := parseName(name)
	if sb.fail(err) || sb.fail(sb.lib.checkOwned(fn)) {
		return sb
	}
	sb.methods = append(sb.methods, &StaticMethod{Name: n, Function: fn})
	return sb
}

func (sb *StaticClassBuilder) Doc(doc Doc) *StaticClassBuilder {
	if !sb.failed() {
		sb.fail(sb.doc.set(doc))
	}
	return sb
}

// Err returns the first error recorded by the chain.
func (sb *StaticClassBuilder) Err() error { return sb.err }

func (sb *StaticClassBuilder) Build() (*StaticClass, error) {
	if sb.err != nil {
		return nil, sb.err
	}
	doc, err := sb.doc.extract()
	if err != nil {
		return nil, err
	}
	s := &StaticClass{name: sb.name, methods: sb.methods, doc: doc}
	if err := sb.lib.addStatement(s, &s.node); err != nil {
		return nil, err
	}
	return s, nil
}
