package oobind

// Collection is an opaque, growable sequence passed into native code. It is
// a validated view over a create/delete/add function triplet.
type Collection struct {
	node
	classType  *ClassDeclaration
	itemType   FunctionArgument
	create     *Function
	delete     *Function
	add        *Function
	hasReserve bool
}

func (c *Collection) Name() Name                         { return c.classType.name }
func (c *Collection) CollectionClass() *ClassDeclaration { return c.classType }
func (c *Collection) ItemType() FunctionArgument         { return c.itemType }
func (c *Collection) CreateFunc() *Function              { return c.create }
func (c *Collection) DeleteFunc() *Function              { return c.delete }
func (c *Collection) AddFunc() *Function                 { return c.add }
func (c *Collection) HasReserve() bool                   { return c.hasReserve }
func (c *Collection) StatementKind() StatementKind       { return StmtCollection }
func (c *Collection) uniqueName() (Name, bool)           { return Name{}, false }

func (c *Collection) PassBy() PassBy   { return MutRef }
func (c *Collection) TypeName() string { return "collection " + c.classType.name.String() }
func (c *Collection) ToNative(d Dialect, expr string) string {
	return d.Collection(TowardNative, c, expr)
}
func (c *Collection) ToTarget(d Dialect, expr string) string {
	return d.Collection(TowardTarget, c, expr)
}

// NewCollection checks the shape of the three functions and registers the
// collection:
//
//	create() -> class          or create(u32) -> class
//	destroy(class)
//	add(class, item)
//
// None of them may fail. The item type is the second parameter of add.
func (b *LibraryBuilder) NewCollection(create, destroy, add *Function) (*Collection, error) {
	for _, f := range []*Function{create, destroy, add} {
		if err := b.checkOwned(f); err != nil {
			return nil, err
		}
		if f.errorType != nil {
			return nil, newError(CodeCollectionFunctionsCannotFail, f.name.String())
		}
	}

	hasReserve := false
	switch len(create.args) {
	case 0:
	case 1:
		if p, ok := create.args[0].Type.(Primitive); !ok || p != U32 {
			return nil, newError(CodeCollectionCreateFuncInvalidSignature, create.name.String())
		}
		hasReserve = true
	default:
		return nil, newError(CodeCollectionCreateFuncInvalidSignature, create.name.String())
	}
	if create.ret == nil {
		return nil, newError(CodeCollectionCreateFuncInvalidSignature, create.name.String())
	}
	class, ok := create.ret.Type.(*ClassDeclaration)
	if !ok {
		return nil, newError(CodeCollectionCreateFuncInvalidSignature, create.name.String())
	}

	if len(destroy.args) != 1 || !isClassArg(destroy.args[0].Type, class) || destroy.ret != nil {
		return nil, newError(CodeCollectionDeleteFuncInvalidSignature, destroy.name.String())
	}

	if len(add.args) != 2 || !isClassArg(add.args[0].Type, class) || add.ret != nil {
		return nil, newError(CodeCollectionAddFuncInvalidSignature, add.name.String())
	}

	c := &Collection{
		classType:  class,
		itemType:   add.args[1].Type,
		create:     create,
		delete:     destroy,
		add:        add,
		hasReserve: hasReserve,
	}
	if err := b.addStatement(c, &c.node); err != nil {
		return nil, err
	}
	return c, nil
}

func isClassArg(t FunctionArgument, class *ClassDeclaration) bool {
	c, ok := t.(*ClassDeclaration)
	return ok && SameNode(c, class)
}

// DefineCollection declares a collection class called name and generates
// its create, destroy and add functions before registering the collection.
func (b *LibraryBuilder) DefineCollection(name string, item FunctionArgument, hasReserve bool) (*Collection, error) {
	class, err := b.DeclareCollectionClass(name)
	if err != nil {
		return nil, err
	}
	cs := b.settings.Collection
	ref := "{class:" + name + "}"

	cfb := b.defineFunctionOf(class.name.Append(cs.CreateFunctionSuffix), CategoryCollectionCreate)
	if hasReserve {
		cfb.Param("reserve_size", U32, NewDoc("Number of elements to pre-allocate"))
	}
	create, err := cfb.
		Returns(class, NewDoc("Allocated opaque collection instance")).
		Doc(NewDoc("Create an instance of " + ref)).
		Build()
	if err != nil {
		return nil, err
	}

	instance := b.settings.Class.MethodInstanceArgumentName.String()
	destroy, err := b.defineFunctionOf(class.name.Append(cs.DestroyFunctionSuffix), CategoryCollectionDestroy).
		Param(instance, class, NewDoc("instance to destroy")).
		Doc(NewDoc("Destroy an instance of " + ref)).
		Build()
	if err != nil {
		return nil, err
	}

	add, err := b.defineFunctionOf(class.name.Append(cs.AddFunctionSuffix), CategoryCollectionAdd).
		Param(instance, class, NewDoc("Collection to add the item to")).
		Param("item", item, NewDoc("Item to add to the collection")).
		Doc(NewDoc("Add an item to " + ref)).
		Build()
	if err != nil {
		return nil, err
	}

	return b.NewCollection(create, destroy, add)
}
