package oobind

// FunctionCategory records which higher-level shape, if any, a native
// function was generated for.
type FunctionCategory int

const (
	CategoryNative FunctionCategory = iota
	CategoryCollectionCreate
	CategoryCollectionDestroy
	CategoryCollectionAdd
	CategoryIteratorNext
)

func (c FunctionCategory) String() string {
	switch c {
	case CategoryCollectionCreate:
		return "collection_create"
	case CategoryCollectionDestroy:
		return "collection_destroy"
	case CategoryCollectionAdd:
		return "collection_add"
	case CategoryIteratorNext:
		return "iterator_next"
	}
	return "native"
}

// SignatureType is the shape of a native function's result in the C ABI.
type SignatureType int

const (
	NoErrorNoReturn SignatureType = iota
	NoErrorWithReturn
	ErrorNoReturn
	ErrorWithReturn
)

// Function is a plain native function. Classes, collections and iterators
// are validated views over functions.
type Function struct {
	node
	name      Name
	category  FunctionCategory
	args      []*Arg[FunctionArgument]
	ret       *Return[FunctionReturnValue]
	errorType *ErrorType
	settings  *LibrarySettings
	doc       Doc
}

func (f *Function) Name() Name                           { return f.name }
func (f *Function) Category() FunctionCategory           { return f.category }
func (f *Function) Args() []*Arg[FunctionArgument]       { return f.args }
func (f *Function) Return() *Return[FunctionReturnValue] { return f.ret }
func (f *Function) ErrorType() *ErrorType                { return f.errorType }
func (f *Function) Settings() *LibrarySettings           { return f.settings }
func (f *Function) RawDoc() Doc                          { return f.doc }
func (f *Function) StatementKind() StatementKind         { return StmtFunction }
func (f *Function) uniqueName() (Name, bool)             { return f.name, true }

// Fallible reports whether the function declares an error type.
func (f *Function) Fallible() bool { return f.errorType != nil }

func (f *Function) SignatureType() SignatureType {
	switch {
	case f.errorType == nil && f.ret == nil:
		return NoErrorNoReturn
	case f.errorType == nil:
		return NoErrorWithReturn
	case f.ret == nil:
		return ErrorNoReturn
	}
	return ErrorWithReturn
}

// FindArg returns the parameter called name.
func (f *Function) FindArg(name string) (*Arg[FunctionArgument], bool) {
	for _, a := range f.args {
		if a.Name.String() == name {
			return a, true
		}
	}
	return nil, false
}

// FunctionBuilder defines a Function.
type FunctionBuilder struct {
	sticky
	lib       *LibraryBuilder
	name      Name
	category  FunctionCategory
	args      argList[FunctionArgument]
	ret       *Return[FunctionReturnValue]
	errorType *ErrorType
	doc       optionalDoc
}

// DefineFunction starts a native function definition.
func (b *LibraryBuilder) DefineFunction(name string) *FunctionBuilder {
	fb := &FunctionBuilder{lib: b, doc: optionalDoc{symbol: name}}
	n, err := parseName(name)
	fb.fail(err)
	fb.name = n
	return fb
}

func (b *LibraryBuilder) defineFunctionOf(name Name, category FunctionCategory) *FunctionBuilder {
	fb := b.DefineFunction(name.String())
	fb.category = category
	return fb
}

// Param appends a parameter.
func (fb *FunctionBuilder) Param(name string, t FunctionArgument, doc Doc) *FunctionBuilder {
	if !fb.failed() && !fb.fail(fb.lib.checkType(t)) {
		fb.fail(fb.args.add(fb.name.String(), name, t, doc))
	}
	return fb
}

// Returns sets the return value. Functions without one return void.
func (fb *FunctionBuilder) Returns(t FunctionReturnValue, doc Doc) *FunctionBuilder {
	if fb.failed() {
		return fb
	}
	if fb.ret != nil {
		fb.fail(newError(CodeReturnTypeAlreadyDefined, fb.name.String()))
		return fb
	}
	if fb.fail(doc.attach(fb.name.String())) {
		return fb
	}
	fb.ret = &Return[FunctionReturnValue]{Type: t, doc: doc}
	return fb
}

// FailsWith attaches the error type. At most one per function.
func (fb *FunctionBuilder) FailsWith(e *ErrorType) *FunctionBuilder {
	if fb.failed() {
		return fb
	}
	if fb.errorType != nil {
		fb.fail(newError(CodeErrorTypeAlreadyDefined, fb.name.String()))
		return fb
	}
	fb.errorType = e
	return fb
}

func (fb *FunctionBuilder) Doc(doc Doc) *FunctionBuilder {
	if !fb.failed() {
		fb.fail(fb.doc.set(doc))
	}
	return fb
}

// Err returns the first error recorded by the chain.
func (fb *FunctionBuilder) Err() error { return fb.err }

func (fb *FunctionBuilder) Build() (*Function, error) {
	if fb.err != nil {
		return nil, fb.err
	}
	doc, err := fb.doc.extract()
	if err != nil {
		return nil, err
	}
	f := &Function{
		name:      fb.name,
		category:  fb.category,
		args:      fb.args.args,
		ret:       fb.ret,
		errorType: fb.errorType,
		settings:  fb.lib.settings,
		doc:       doc,
	}
	if err := fb.lib.addStatement(f, &f.node); err != nil {
		return nil, err
	}
	return f, nil
}

func (fb *FunctionBuilder) MustBuild() *Function {
	f, err := fb.Build()
	if err != nil {
		panic(err)
	}
	return f
}
