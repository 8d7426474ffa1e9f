package oobind_test

import (
	"testing"

	"github.com/reoring/oobind"
)

func TestInterface_SyncIsBorrowed(t *testing.T) {
	b := newBuilder(t)
	i, err := b.DefineInterface("visitor", doc("Visits values")).
		BeginCallback("on_value", doc("Called for each value")).
		Param("value", oobind.U32, doc("Value")).
		Returns(oobind.Bool, doc("Whether to continue")).
		End().
		BeginCallback("on_end", doc("Called at the end")).
		End().
		BuildSync()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if i.PassBy() != oobind.MutRef {
		t.Fatalf("expected MutRef, got %v", i.PassBy())
	}
	if i.IsFunctional() {
		t.Fatalf("two callbacks is not functional")
	}
	if len(i.Callbacks()) != 2 || i.Callbacks()[0].Name.String() != "on_value" {
		t.Fatalf("unexpected callbacks")
	}
	if i.DestroyCallbackName().String() != "on_destroy" {
		t.Fatalf("unexpected destroy callback %s", i.DestroyCallbackName())
	}
}

func TestInterface_AsyncIsMoved(t *testing.T) {
	b := newBuilder(t)
	i, err := b.DefineInterface("receiver", doc("Receives values")).
		BeginCallback("on_value", doc("Value received")).
		Param("value", oobind.U32, doc("Value")).
		Returns(oobind.U8, doc("Ack")).
		End().
		BuildAsync()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if i.PassBy() != oobind.Move || !oobind.IsMoveType(i) {
		t.Fatalf("expected Move, got %v", i.PassBy())
	}
	if !i.Interface().IsFunctional() || !i.Interface().Callbacks()[0].FunctionalTransform() {
		t.Fatalf("single callback with one arg and a return should be functional")
	}
}

func TestInterface_ReservedNames(t *testing.T) {
	b := newBuilder(t)
	_, err := b.DefineInterface("first", doc("First")).
		BeginCallback("on_destroy", doc("Destroy")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeInterfaceMethodWithReservedName)

	_, err = b.DefineInterface("second", doc("Second")).
		BeginCallback("ctx", doc("Context")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeInterfaceMethodWithReservedName)

	_, err = b.DefineInterface("third", doc("Third")).
		BeginCallback("on_value", doc("Value")).
		Param("ctx", oobind.U8, doc("Context")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeCallbackMethodArgumentWithReservedName)
}

func TestInterface_DuplicateCallback(t *testing.T) {
	b := newBuilder(t)
	_, err := b.DefineInterface("visitor", doc("Visitor")).
		BeginCallback("on_value", doc("Value")).
		End().
		BeginCallback("on_value", doc("Value again")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeInterfaceDuplicateCallbackName)
}

func TestInterface_CallbackErrors(t *testing.T) {
	b := newBuilder(t)
	_, err := b.DefineInterface("visitor", doc("Visitor")).
		BeginCallback("on_value", doc("Value")).
		Param("value", oobind.U8, doc("Value")).
		Param("value", oobind.U8, doc("Value again")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeDuplicateArgName)

	_, err = b.DefineInterface("checker", doc("Checker")).
		BeginCallback("check", doc("Check")).
		Returns(oobind.Bool, doc("Result")).
		Returns(oobind.U8, doc("Result again")).
		End().
		BuildSync()
	expectCode(t, err, oobind.CodeReturnTypeAlreadyDefined)
}

func TestInterface_FutureWithoutError(t *testing.T) {
	b := newBuilder(t)
	f, err := b.DefineFutureInterface("string_result", doc("String result"), oobind.StringType{}, doc("Result"), nil)
	if err != nil {
		t.Fatalf("future: %v", err)
	}
	if len(f.Callbacks()) != 1 {
		t.Fatalf("expected only the success callback, got %d", len(f.Callbacks()))
	}
	cb := f.Callbacks()[0]
	if cb.Name.String() != "on_complete" || cb.Args()[0].Name.String() != "result" {
		t.Fatalf("unexpected success callback %s", cb.Name)
	}
	if f.ErrorType != nil {
		t.Fatalf("unexpected error type")
	}
}

func TestInterface_NameAlreadyUsed(t *testing.T) {
	b := newBuilder(t)
	b.DefineEnum("visitor").Push("a", doc("A")).Doc(doc("Visitor")).MustBuild()
	_, err := b.DefineInterface("visitor", doc("Visitor")).BuildSync()
	expectCode(t, err, oobind.CodeSymbolAlreadyUsed)
}
