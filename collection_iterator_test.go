package oobind_test

import (
	"strings"
	"testing"

	"github.com/reoring/oobind"
)

func TestCollection_Define(t *testing.T) {
	b := newBuilder(t)
	c, err := b.DefineCollection("string_list", oobind.StringType{}, true)
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	if !c.HasReserve() {
		t.Fatalf("expected reserve")
	}
	if c.CreateFunc().Name().String() != "string_list_create" ||
		c.DeleteFunc().Name().String() != "string_list_destroy" ||
		c.AddFunc().Name().String() != "string_list_add" {
		t.Fatalf("unexpected function names")
	}
	if _, ok := c.ItemType().(oobind.StringType); !ok {
		t.Fatalf("unexpected item type %v", c.ItemType())
	}
	if c.PassBy() != oobind.MutRef {
		t.Fatalf("expected MutRef, got %v", c.PassBy())
	}
	if c.CollectionClass().ClassType() != oobind.CollectionClass {
		t.Fatalf("unexpected class type")
	}
}

func TestCollection_WithoutReserve(t *testing.T) {
	b := newBuilder(t)
	c, err := b.DefineCollection("value_list", oobind.U32, false)
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	if c.HasReserve() || len(c.CreateFunc().Args()) != 0 {
		t.Fatalf("create should take no arguments")
	}
}

type collectionParts struct {
	class, other *oobind.ClassDeclaration
}

func collectionSetup(t *testing.T, b *oobind.LibraryBuilder) collectionParts {
	t.Helper()
	return collectionParts{class: declareClass(t, b, "items"), other: declareClass(t, b, "other_items")}
}

func TestNewCollection_InvalidShapes(t *testing.T) {
	b := newBuilder(t)
	p := collectionSetup(t, b)
	failure := b.DefineErrorType("list_error", "list_exception", oobind.CheckedException).
		AddError("full", doc("Full")).
		Doc(doc("List error")).
		MustBuild()

	create := b.DefineFunction("items_create").Returns(p.class, doc("List")).Doc(doc("Create")).MustBuild()
	destroy := b.DefineFunction("items_destroy").Param("instance", p.class, doc("List")).Doc(doc("Destroy")).MustBuild()
	add := b.DefineFunction("items_add").
		Param("instance", p.class, doc("List")).
		Param("item", oobind.U32, doc("Item")).
		Doc(doc("Add")).
		MustBuild()

	if _, err := b.NewCollection(create, destroy, add); err != nil {
		t.Fatalf("valid collection rejected: %v", err)
	}

	badCreate := b.DefineFunction("items_create_bad").
		Param("size", oobind.U16, doc("Size")).
		Returns(p.class, doc("List")).
		Doc(doc("Create")).
		MustBuild()
	_, err := b.NewCollection(badCreate, destroy, add)
	expectCode(t, err, oobind.CodeCollectionCreateFuncInvalidSignature)

	twoArgs := b.DefineFunction("items_create_two").
		Param("size", oobind.U32, doc("Size")).
		Param("extra", oobind.U32, doc("Extra")).
		Returns(p.class, doc("List")).
		Doc(doc("Create")).
		MustBuild()
	_, err = b.NewCollection(twoArgs, destroy, add)
	expectCode(t, err, oobind.CodeCollectionCreateFuncInvalidSignature)

	noClass := b.DefineFunction("items_create_void").Doc(doc("Create")).MustBuild()
	_, err = b.NewCollection(noClass, destroy, add)
	expectCode(t, err, oobind.CodeCollectionCreateFuncInvalidSignature)

	wrongDestroy := b.DefineFunction("items_destroy_other").
		Param("instance", p.other, doc("Other list")).
		Doc(doc("Destroy")).
		MustBuild()
	_, err = b.NewCollection(create, wrongDestroy, add)
	expectCode(t, err, oobind.CodeCollectionDeleteFuncInvalidSignature)

	returningDestroy := b.DefineFunction("items_destroy_ret").
		Param("instance", p.class, doc("List")).
		Returns(oobind.Bool, doc("Done")).
		Doc(doc("Destroy")).
		MustBuild()
	_, err = b.NewCollection(create, returningDestroy, add)
	expectCode(t, err, oobind.CodeCollectionDeleteFuncInvalidSignature)

	addOneArg := b.DefineFunction("items_add_one").
		Param("instance", p.class, doc("List")).
		Doc(doc("Add")).
		MustBuild()
	_, err = b.NewCollection(create, destroy, addOneArg)
	expectCode(t, err, oobind.CodeCollectionAddFuncInvalidSignature)

	addOther := b.DefineFunction("items_add_other").
		Param("instance", p.other, doc("List")).
		Param("item", oobind.U32, doc("Item")).
		Doc(doc("Add")).
		MustBuild()
	_, err = b.NewCollection(create, destroy, addOther)
	expectCode(t, err, oobind.CodeCollectionAddFuncInvalidSignature)

	fallibleAdd := b.DefineFunction("items_add_fallible").
		Param("instance", p.class, doc("List")).
		Param("item", oobind.U32, doc("Item")).
		FailsWith(failure).
		Doc(doc("Add")).
		MustBuild()
	_, err = b.NewCollection(create, destroy, fallibleAdd)
	expectCode(t, err, oobind.CodeCollectionFunctionsCannotFail)
}

func TestNewCollection_ForeignFunction(t *testing.T) {
	other := newBuilder(t)
	oc := declareClass(t, other, "items")
	create := other.DefineFunction("items_create").Returns(oc, doc("List")).Doc(doc("Create")).MustBuild()

	b := newBuilder(t)
	class := declareClass(t, b, "items")
	destroy := b.DefineFunction("items_destroy").Param("instance", class, doc("List")).Doc(doc("Destroy")).MustBuild()
	add := b.DefineFunction("items_add").
		Param("instance", class, doc("List")).
		Param("item", oobind.U32, doc("Item")).
		Doc(doc("Add")).
		MustBuild()
	_, err := b.NewCollection(create, destroy, add)
	expectCode(t, err, oobind.CodeNotPartOfThisLibrary)
}

func defineItem(t *testing.T, b *oobind.LibraryBuilder) *oobind.FunctionReturnStruct {
	t.Helper()
	return b.DefineFunctionReturnStruct("entry").
		Field("id", oobind.U32, doc("Identifier")).
		Doc(doc("Entry")).
		MustBuild()
}

func TestIterator_Define(t *testing.T) {
	b := newBuilder(t)
	item := defineItem(t, b)
	it, err := b.DefineIterator("entry_iterator", item, true)
	if err != nil {
		t.Fatalf("iterator: %v", err)
	}
	next := it.NextFunction()
	if next.Name().String() != "entry_iterator_next" {
		t.Fatalf("unexpected next function %s", next.Name())
	}
	ref, ok := next.Return().Type.(oobind.StructRef)
	if !ok || !oobind.SameNode(ref.Declaration(), item.Declaration()) {
		t.Fatalf("next should return a reference to the item")
	}
	if !it.HasLifetime() || it.PassBy() != oobind.MutRef {
		t.Fatalf("unexpected iterator properties")
	}
	if it.IteratorClass().ClassType() != oobind.IteratorClass {
		t.Fatalf("unexpected class type")
	}
}

func TestNewIterator_InvalidShapes(t *testing.T) {
	b := newBuilder(t)
	item := defineItem(t, b)
	other := b.DefineUniversalStruct("other_entry").
		Field("id", oobind.U32, doc("Identifier")).
		Doc(doc("Other")).
		MustBuild()
	class := declareClass(t, b, "cursor")
	failure := b.DefineErrorType("cursor_error", "cursor_exception", oobind.CheckedException).
		AddError("broken", doc("Broken")).
		Doc(doc("Cursor error")).
		MustBuild()

	twoParams := b.DefineFunction("cursor_next_two").
		Param("iter", class, doc("Iterator")).
		Param("skip", oobind.U32, doc("Skip")).
		Returns(item.Declaration().Ref(), doc("Next")).
		Doc(doc("Next")).
		MustBuild()
	_, err := b.NewIterator(twoParams, item, false)
	expectCode(t, err, oobind.CodeIteratorNotSingleClassRefParam)

	notClass := b.DefineFunction("cursor_next_scalar").
		Param("iter", oobind.U32, doc("Iterator")).
		Returns(item.Declaration().Ref(), doc("Next")).
		Doc(doc("Next")).
		MustBuild()
	_, err = b.NewIterator(notClass, item, false)
	expectCode(t, err, oobind.CodeIteratorNotSingleClassRefParam)

	void := b.DefineFunction("cursor_next_void").
		Param("iter", class, doc("Iterator")).
		Doc(doc("Next")).
		MustBuild()
	_, err = b.NewIterator(void, item, false)
	expectCode(t, err, oobind.CodeIteratorReturnTypeNotStructRef)

	wrongItem := b.DefineFunction("cursor_next_other").
		Param("iter", class, doc("Iterator")).
		Returns(other.Declaration().Ref(), doc("Next")).
		Doc(doc("Next")).
		MustBuild()
	_, err = b.NewIterator(wrongItem, item, false)
	expectCode(t, err, oobind.CodeIteratorReturnTypeNotStructRef)

	fallible := b.DefineFunction("cursor_next_fallible").
		Param("iter", class, doc("Iterator")).
		Returns(item.Declaration().Ref(), doc("Next")).
		FailsWith(failure).
		Doc(doc("Next")).
		MustBuild()
	_, err = b.NewIterator(fallible, item, false)
	expectCode(t, err, oobind.CodeIteratorFunctionsCannotFail)

	good := b.DefineFunction("cursor_next").
		Param("iter", class, doc("Iterator")).
		Returns(item.Declaration().Ref(), doc("Next")).
		Doc(doc("Next")).
		MustBuild()
	if _, err := b.NewIterator(good, item, false); err != nil {
		t.Fatalf("valid iterator rejected: %v", err)
	}
}

func TestIterator_InStructField(t *testing.T) {
	b := newBuilder(t)
	item := defineItem(t, b)
	it, err := b.DefineIterator("entry_iterator", item, false)
	if err != nil {
		t.Fatalf("iterator: %v", err)
	}
	s := b.DefineFunctionReturnStruct("listing").
		Field("entries", it, doc("Entries")).
		Doc(doc("Listing")).
		MustBuild()
	if s.PassBy() != oobind.ConstRef {
		t.Fatalf("an iterator field does not make the struct a move type")
	}
}

func TestNilEntities_ReturnErrors(t *testing.T) {
	b := newBuilder(t)
	_, err := b.NewCollection(nil, nil, nil)
	expectCode(t, err, oobind.CodeUndefinedReference)
	if !strings.Contains(err.Error(), "*oobind.Function") {
		t.Fatalf("expected the missing type in %q", err)
	}

	item := defineItem(t, b)
	_, err = b.NewIterator(nil, item, false)
	expectCode(t, err, oobind.CodeUndefinedReference)

	class := declareClass(t, b, "items")
	_, err = b.NewClassConstructor(nil, nil)
	expectCode(t, err, oobind.CodeUndefinedReference)
	_, err = b.NewClassDestructor(class, nil)
	expectCode(t, err, oobind.CodeUndefinedReference)

	_, err = b.DefineFunction("take_entry").
		Param("value", oobind.StructRef{}, doc("Entry")).
		Doc(doc("Take an entry")).
		Build()
	expectCode(t, err, oobind.CodeUndefinedReference)

	_, err = b.DefineInterface("visitor", doc("Visitor")).
		BeginCallback("on_item", doc("Item")).
		Param("item", oobind.ClassMutRef{}, doc("Item")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeUndefinedReference)
}
