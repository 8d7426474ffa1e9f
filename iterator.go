package oobind

// Iterator is a pull-based cursor owned by native code. It is a validated
// view over a single next function returning a nullable item reference.
type Iterator struct {
	node
	class       *ClassDeclaration
	next        *Function
	item        IteratorItem
	hasLifetime bool
	settings    *LibrarySettings
}

func (it *Iterator) Name() Name                       { return it.class.name }
func (it *Iterator) IteratorClass() *ClassDeclaration { return it.class }
func (it *Iterator) NextFunction() *Function          { return it.next }
func (it *Iterator) ItemType() IteratorItem           { return it.item }
func (it *Iterator) Settings() *LibrarySettings       { return it.settings }
func (it *Iterator) StatementKind() StatementKind     { return StmtIterator }
func (it *Iterator) uniqueName() (Name, bool)         { return Name{}, false }

// HasLifetime reports whether items borrow from the data the iterator
// was created from.
func (it *Iterator) HasLifetime() bool { return it.hasLifetime }

func (it *Iterator) PassBy() PassBy   { return MutRef }
func (it *Iterator) TypeName() string { return "iterator " + it.class.name.String() }
func (it *Iterator) ToNative(d Dialect, expr string) string {
	return d.Iterator(TowardNative, it, expr)
}
func (it *Iterator) ToTarget(d Dialect, expr string) string {
	return d.Iterator(TowardTarget, it, expr)
}

// NewIterator checks that next takes exactly one class reference (the
// iterator handle), returns a reference to item and cannot fail, then
// registers the iterator.
func (b *LibraryBuilder) NewIterator(next *Function, item IteratorItem, hasLifetime bool) (*Iterator, error) {
	if err := b.checkOwned(next); err != nil {
		return nil, err
	}
	if err := b.checkOwned(item); err != nil {
		return nil, err
	}
	sym := next.name.String()
	if next.errorType != nil {
		return nil, newError(CodeIteratorFunctionsCannotFail, sym)
	}
	if len(next.args) != 1 {
		return nil, newError(CodeIteratorNotSingleClassRefParam, sym)
	}
	class, ok := next.args[0].Type.(*ClassDeclaration)
	if !ok {
		return nil, newError(CodeIteratorNotSingleClassRefParam, sym)
	}
	if next.ret == nil {
		return nil, newError(CodeIteratorReturnTypeNotStructRef, sym)
	}
	ref, ok := next.ret.Type.(StructRef)
	if !ok || !SameNode(ref.decl, item.Declaration()) {
		return nil, newError(CodeIteratorReturnTypeNotStructRef, sym)
	}
	it := &Iterator{
		class:       class,
		next:        next,
		item:        item,
		hasLifetime: hasLifetime,
		settings:    b.settings,
	}
	if err := b.addStatement(it, &it.node); err != nil {
		return nil, err
	}
	return it, nil
}

// DefineIterator declares an iterator class called name and generates its
// next function before registering the iterator.
func (b *LibraryBuilder) DefineIterator(name string, item IteratorItem, hasLifetime bool) (*Iterator, error) {
	class, err := b.DeclareIteratorClass(name)
	if err != nil {
		return nil, err
	}
	next, err := b.defineFunctionOf(class.name.Append(b.settings.Iterator.NextFunctionSuffix), CategoryIteratorNext).
		Param("iter", class, NewDoc("Iterator")).
		Returns(item.Declaration().Ref(), NewDoc("Next value of the iterator or {null} if the iterator reached the end")).
		Doc(NewDoc("Get the next value of the iterator")).
		Build()
	if err != nil {
		return nil, err
	}
	return b.NewIterator(next, item, hasLifetime)
}
