package oobind

// InterfaceCategory fixes the ownership contract of an interface.
type InterfaceCategory int

const (
	// Synchronous interfaces are borrowed for the duration of one call.
	Synchronous InterfaceCategory = iota
	// Asynchronous interfaces are moved into native code, which may invoke
	// them later from any thread. The destroy callback runs exactly once.
	Asynchronous
	// Future interfaces are asynchronous and complete exactly once, with a
	// result or with a failure when dropped.
	Future
)

func (c InterfaceCategory) String() string {
	switch c {
	case Asynchronous:
		return "asynchronous"
	case Future:
		return "future"
	}
	return "synchronous"
}

// Callback is one method of an interface, implemented by user code.
type Callback struct {
	Name Name
	args []*Arg[CallbackArgument]
	ret  *Return[CallbackReturnValue]
	doc  Doc
}

func (c *Callback) Args() []*Arg[CallbackArgument]       { return c.args }
func (c *Callback) Return() *Return[CallbackReturnValue] { return c.ret }
func (c *Callback) RawDoc() Doc                          { return c.doc }

// FunctionalTransform is a callback with exactly one argument and one return
// value, for which target languages can accept a plain lambda.
func (c *Callback) FunctionalTransform() bool {
	return len(c.args) == 1 && c.ret != nil
}

// Interface is a set of callbacks supplied by the caller. Every interface
// additionally has an implicit destroy callback named by the library
// settings.
type Interface struct {
	node
	name      Name
	mode      InterfaceCategory
	callbacks []*Callback
	settings  *LibrarySettings
	doc       Doc
}

func (i *Interface) Name() Name                   { return i.name }
func (i *Interface) Mode() InterfaceCategory      { return i.mode }
func (i *Interface) Callbacks() []*Callback       { return i.callbacks }
func (i *Interface) Settings() *LibrarySettings   { return i.settings }
func (i *Interface) RawDoc() Doc                  { return i.doc }
func (i *Interface) StatementKind() StatementKind { return StmtInterface }
func (i *Interface) uniqueName() (Name, bool)     { return i.name, true }

// DestroyCallbackName is the reserved name of the implicit destroy callback.
func (i *Interface) DestroyCallbackName() Name { return i.settings.Interface.DestroyCallbackName }

// FindCallback returns the callback called name.
func (i *Interface) FindCallback(name string) (*Callback, bool) {
	for _, cb := range i.callbacks {
		if cb.Name.String() == name {
			return cb, true
		}
	}
	return nil, false
}

// IsFunctional reports whether the interface has a single callback, so that
// target languages may accept a lambda in its place.
func (i *Interface) IsFunctional() bool { return len(i.callbacks) == 1 }

// PassBy is MutRef for synchronous interfaces and Move otherwise.
func (i *Interface) PassBy() PassBy {
	if i.mode == Synchronous {
		return MutRef
	}
	return Move
}

func (i *Interface) TypeName() string { return i.mode.String() + " interface " + i.name.String() }

func (i *Interface) ToNative(d Dialect, expr string) string {
	return d.Interface(TowardNative, i, moveIfNeeded(i, d, expr))
}

func (i *Interface) ToTarget(d Dialect, expr string) string {
	return d.Interface(TowardTarget, i, expr)
}

// AsynchronousInterface is an interface built by BuildAsync. Unlike a plain
// *Interface it may be stored in function argument structs. The zero value
// wraps nothing and is rejected wherever it is used.
type AsynchronousInterface struct {
	iface *Interface
}

// Interface returns the wrapped asynchronous interface.
func (a AsynchronousInterface) Interface() *Interface { return a.iface }

func (a AsynchronousInterface) NodeID() NodeID   { return a.iface.NodeID() }
func (a AsynchronousInterface) owner() *arena    { return a.iface.owner() }
func (a AsynchronousInterface) Name() Name       { return a.iface.name }
func (a AsynchronousInterface) PassBy() PassBy   { return a.iface.PassBy() }
func (a AsynchronousInterface) TypeName() string { return a.iface.TypeName() }
func (a AsynchronousInterface) ToNative(d Dialect, expr string) string {
	return a.iface.ToNative(d, expr)
}
func (a AsynchronousInterface) ToTarget(d Dialect, expr string) string {
	return a.iface.ToTarget(d, expr)
}

// FutureInterface is a future whose completion carries ValueType, or the
// error of ErrorType when one is given.
type FutureInterface struct {
	*Interface
	ValueType CallbackArgument
	ErrorType *ErrorType
}

// InterfaceBuilder defines an Interface.
type InterfaceBuilder struct {
	sticky
	lib       *LibraryBuilder
	name      Name
	callbacks []*Callback
	names     map[string]struct{}
	doc       Doc
}

// DefineInterface starts an interface definition.
func (b *LibraryBuilder) DefineInterface(name string, doc Doc) *InterfaceBuilder {
	ib := &InterfaceBuilder{lib: b, names: map[string]struct{}{}}
	n, err := parseName(name)
	if ib.fail(err) {
		return ib
	}
	ib.name = n
	if ib.fail(doc.attach(name)) {
		return ib
	}
	ib.doc = doc
	return ib
}

// BeginCallback starts a callback. End returns to the interface.
func (ib *InterfaceBuilder) BeginCallback(name string, doc Doc) *CallbackBuilder {
	cb := &CallbackBuilder{parent: ib}
	if ib.failed() {
		return cb
	}
	n, err := parseName(name)
	if ib.fail(err) {
		return cb
	}
	reserved := ib.lib.settings.Interface
	if n == reserved.DestroyCallbackName || n == reserved.ContextArgName {
		ib.fail(newError(CodeInterfaceMethodWithReservedName, ib.name.String(), "callback", name))
		return cb
	}
	if _, dup := ib.names[name]; dup {
		ib.fail(newError(CodeInterfaceDuplicateCallbackName, ib.name.String(), "callback", name))
		return cb
	}
	if ib.fail(doc.attach(ib.name.String())) {
		return cb
	}
	cb.cb = &Callback{Name: n, doc: doc}
	return cb
}

// Err returns the first error recorded by the chain.
func (ib *InterfaceBuilder) Err() error { return ib.err }

func (ib *InterfaceBuilder) build(mode InterfaceCategory) (*Interface, error) {
	if ib.err != nil {
		return nil, ib.err
	}
	i := &Interface{
		name:      ib.name,
		mode:      mode,
		callbacks: ib.callbacks,
		settings:  ib.lib.settings,
		doc:       ib.doc,
	}
	if err := ib.lib.addStatement(i, &i.node); err != nil {
		return nil, err
	}
	return i, nil
}

// BuildSync finishes a synchronous interface, borrowed by native code.
func (ib *InterfaceBuilder) BuildSync() (*Interface, error) {
	return ib.build(Synchronous)
}

// BuildAsync finishes an asynchronous interface, moved into native code.
func (ib *InterfaceBuilder) BuildAsync() (AsynchronousInterface, error) {
	i, err := ib.build(Asynchronous)
	if err != nil {
		return AsynchronousInterface{}, err
	}
	return AsynchronousInterface{iface: i}, nil
}

// CallbackBuilder defines one callback. Errors are recorded on the parent
// InterfaceBuilder.
type CallbackBuilder struct {
	parent *InterfaceBuilder
	cb     *Callback
	args   argList[CallbackArgument]
}

func (cb *CallbackBuilder) active() bool { return cb.cb != nil && !cb.parent.failed() }

func (cb *CallbackBuilder) symbol() string {
	return cb.parent.name.String() + "." + cb.cb.Name.String()
}

// Param appends an argument handed to user code.
func (cb *CallbackBuilder) Param(name string, t CallbackArgument, doc Doc) *CallbackBuilder {
	if !cb.active() {
		return cb
	}
	if name == cb.parent.lib.settings.Interface.ContextArgName.String() {
		cb.parent.fail(newError(CodeCallbackMethodArgumentWithReservedName, cb.parent.name.String(), "callback", cb.cb.Name.String(), "arg", name))
		return cb
	}
	if cb.parent.fail(cb.parent.lib.checkType(t)) {
		return cb
	}
	cb.parent.fail(cb.args.add(cb.symbol(), name, t, doc))
	return cb
}

// Returns sets the value user code returns.
func (cb *CallbackBuilder) Returns(t CallbackReturnValue, doc Doc) *CallbackBuilder {
	if !cb.active() {
		return cb
	}
	if cb.cb.ret != nil {
		cb.parent.fail(newError(CodeReturnTypeAlreadyDefined, cb.symbol()))
		return cb
	}
	if cb.parent.fail(doc.attach(cb.symbol())) {
		return cb
	}
	cb.cb.ret = &Return[CallbackReturnValue]{Type: t, doc: doc}
	return cb
}

// End adds the callback to the interface.
func (cb *CallbackBuilder) End() *InterfaceBuilder {
	if !cb.active() {
		return cb.parent
	}
	cb.cb.args = cb.args.args
	cb.parent.names[cb.cb.Name.String()] = struct{}{}
	cb.parent.callbacks = append(cb.parent.callbacks, cb.cb)
	return cb.parent
}

// DefineFutureInterface creates a future completed with a value of valueType.
// The success callback takes the value; when errorType is set, a failure
// callback takes the error.
func (b *LibraryBuilder) DefineFutureInterface(name string, doc Doc, valueType CallbackArgument, valueDoc Doc, errorType *ErrorType) (*FutureInterface, error) {
	fs := b.settings.Future
	ib := b.DefineInterface(name, doc)
	ib.BeginCallback(fs.SuccessCallbackName.String(), NewDoc("Invoked when the asynchronous result is ready")).
		Param(fs.SuccessParameterName.String(), valueType, valueDoc).
		End()
	if errorType != nil {
		if err := b.checkOwned(errorType); err != nil {
			return nil, err
		}
		ib.BeginCallback(fs.FailureCallbackName.String(), NewDoc("Invoked when the asynchronous operation fails")).
			Param(fs.FailureParameterName.String(), errorType.inner, NewDoc("Error raised by the operation")).
			End()
	}
	i, err := ib.build(Future)
	if err != nil {
		return nil, err
	}
	return &FutureInterface{Interface: i, ValueType: valueType, ErrorType: errorType}, nil
}
