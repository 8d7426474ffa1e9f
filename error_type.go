package oobind

// ExceptionType classifies how target languages raise an ErrorType.
type ExceptionType int

const (
	// CheckedException must be declared or handled by callers (Java).
	CheckedException ExceptionType = iota
	// UncheckedException is a runtime exception.
	UncheckedException
)

func (t ExceptionType) String() string {
	if t == UncheckedException {
		return "unchecked"
	}
	return "checked"
}

// ErrorType is an enum reinterpreted as the error channel of functions. The
// first variant of the inner enum is always "ok" with value 0.
type ErrorType struct {
	node
	exceptionName Name
	kind          ExceptionType
	inner         *Enum
}

func (e *ErrorType) Name() Name                   { return e.inner.name }
func (e *ErrorType) ExceptionName() Name          { return e.exceptionName }
func (e *ErrorType) ExceptionType() ExceptionType { return e.kind }
func (e *ErrorType) Inner() *Enum                 { return e.inner }
func (e *ErrorType) RawDoc() Doc                  { return e.inner.doc }
func (e *ErrorType) StatementKind() StatementKind { return StmtErrorType }
func (e *ErrorType) uniqueName() (Name, bool)     { return e.inner.name, true }

// ErrorTypeBuilder defines an ErrorType.
type ErrorTypeBuilder struct {
	sticky
	lib           *LibraryBuilder
	exceptionName Name
	kind          ExceptionType
	inner         *EnumBuilder
}

// DefineErrorType starts an error type. The inner enum is created with its
// "ok" variant already pushed.
func (b *LibraryBuilder) DefineErrorType(name, exceptionName string, kind ExceptionType) *ErrorTypeBuilder {
	eb := &ErrorTypeBuilder{lib: b, kind: kind, inner: newEnumBuilder(b, name)}
	n, err := parseName(exceptionName)
	if eb.fail(err) {
		return eb
	}
	eb.exceptionName = n
	eb.inner.Push("ok", NewDoc("Success, i.e. no error occurred"))
	return eb
}

// AddError adds an error variant with the next value.
func (eb *ErrorTypeBuilder) AddError(name string, doc Doc) *ErrorTypeBuilder {
	if !eb.failed() {
		eb.inner.Push(name, doc)
	}
	return eb
}

func (eb *ErrorTypeBuilder) Doc(doc Doc) *ErrorTypeBuilder {
	if !eb.failed() {
		eb.inner.Doc(doc)
	}
	return eb
}

// Err returns the first error recorded by the chain.
func (eb *ErrorTypeBuilder) Err() error {
	if eb.err != nil {
		return eb.err
	}
	return eb.inner.Err()
}

func (eb *ErrorTypeBuilder) Build() (*ErrorType, error) {
	if err := eb.Err(); err != nil {
		return nil, err
	}
	inner, err := eb.inner.build()
	if err != nil {
		return nil, err
	}
	et := &ErrorType{exceptionName: eb.exceptionName, kind: eb.kind, inner: inner}
	if err := eb.lib.addStatement(et, &et.node); err != nil {
		return nil, err
	}
	eb.lib.arena.register(inner, &inner.node)
	return et, nil
}

func (eb *ErrorTypeBuilder) MustBuild() *ErrorType {
	et, err := eb.Build()
	if err != nil {
		panic(err)
	}
	return et
}
