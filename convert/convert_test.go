package convert_test

import (
	"reflect"
	"testing"

	"github.com/reoring/oobind"
	"github.com/reoring/oobind/convert"
)

type fixture struct {
	level    *oobind.Enum
	point    *oobind.UniversalStruct
	request  *oobind.FunctionArgStruct
	listener oobind.AsynchronousInterface
	visitor  *oobind.Interface
	counter  *oobind.ClassDeclaration
	iter     *oobind.Iterator
	list     *oobind.Collection
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	settings, err := oobind.NewLibrarySettings("foo", "foo")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	b := oobind.NewLibraryBuilder(oobind.Version{Major: 1}, oobind.LibraryInfo{}, settings)
	d := oobind.NewDoc

	var f fixture
	f.level = b.DefineEnum("level").Push("low", d("Low")).Doc(d("Level")).MustBuild()
	f.point = b.DefineUniversalStruct("point_value").
		Field("x", oobind.S32, d("X")).
		Doc(d("Point")).
		MustBuild()
	f.listener, err = b.DefineInterface("listener", d("Listener")).
		BeginCallback("on_value", d("Value")).
		Param("value", oobind.U32, d("Value")).
		Returns(oobind.Bool, d("Keep going")).
		End().
		BuildAsync()
	if err != nil {
		t.Fatalf("listener: %v", err)
	}
	f.visitor, err = b.DefineInterface("visitor", d("Visitor")).
		BeginCallback("on_value", d("Value")).
		Param("value", oobind.U32, d("Value")).
		End().
		BeginCallback("on_end", d("End")).
		End().
		BuildSync()
	if err != nil {
		t.Fatalf("visitor: %v", err)
	}
	f.request = b.DefineFunctionArgStruct("request").
		Field("listener", f.listener, d("Listener")).
		Doc(d("Request")).
		MustBuild()
	f.counter, err = b.DeclareClass("counter")
	if err != nil {
		t.Fatalf("class: %v", err)
	}
	item := b.DefineFunctionReturnStruct("entry").Field("id", oobind.U32, d("Id")).Doc(d("Entry")).MustBuild()
	f.iter, err = b.DefineIterator("entry_iter", item, false)
	if err != nil {
		t.Fatalf("iterator: %v", err)
	}
	f.list, err = b.DefineCollection("name_list", oobind.StringType{}, false)
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	return f
}

type conversion struct {
	typ      oobind.Type
	toNative string
	toTarget string
}

func check(t *testing.T, d oobind.Dialect, cases []conversion) {
	t.Helper()
	for _, c := range cases {
		if got := c.typ.ToNative(d, "x"); got != c.toNative {
			t.Fatalf("%s %s to native: got %q want %q", d.Name(), c.typ.TypeName(), got, c.toNative)
		}
		if got := c.typ.ToTarget(d, "x"); got != c.toTarget {
			t.Fatalf("%s %s to target: got %q want %q", d.Name(), c.typ.TypeName(), got, c.toTarget)
		}
	}
}

func TestC_Identity(t *testing.T) {
	f := newFixture(t)
	var cases []conversion
	for _, typ := range []oobind.Type{
		oobind.Bool, oobind.U64, oobind.Seconds, oobind.StringType{}, oobind.PrimitiveRef{Inner: oobind.U8},
		f.level, f.point, f.request, f.listener, f.visitor, f.counter, f.counter.Mut(), f.iter, f.list,
	} {
		cases = append(cases, conversion{typ, "x", "x"})
	}
	check(t, convert.C(), cases)
}

func TestCpp_Conversions(t *testing.T) {
	f := newFixture(t)
	check(t, convert.Cpp(), []conversion{
		{oobind.U32, "x", "x"},
		{oobind.Milliseconds, "::convert::to_milli_sec_u64(x)", "::convert::from_milli_sec_u64(x)"},
		{oobind.Seconds, "::convert::to_sec_u64(x)", "::convert::from_sec_u64(x)"},
		{oobind.StringType{}, "x.c_str()", "std::string(x)"},
		{f.level, "::convert::to_native(x)", "::convert::to_cpp(x)"},
		{f.point, "to_native(x)", "to_cpp(x)"},
		{f.request, "to_native(std::move(x))", "to_cpp(x)"},
		{f.point.Declaration().Ref(), "::convert::to_native(x)", "::convert::to_cpp(x)"},
		{f.listener, "to_native(std::move(x))", "x"},
		{f.visitor, "to_native(x)", "x"},
		{f.counter, "::convert::get(x)", "::convert::to_cpp(x)"},
		{f.iter, "::convert::to_native(x)", "::convert::construct(x)"},
		{f.list, "::convert::to_native(x)", "::convert::to_cpp(x)"},
	})
}

func TestDotnet_Conversions(t *testing.T) {
	f := newFixture(t)
	check(t, convert.Dotnet(), []conversion{
		{oobind.Bool, "Convert.ToByte(x)", "Convert.ToBoolean(x)"},
		{oobind.S16, "x", "x"},
		{oobind.PrimitiveRef{Inner: oobind.U32}, "x", "Helpers.PrimitivePointer.Unsigned.ReadInt(x)"},
		{oobind.Milliseconds, "(ulong)x.TotalMilliseconds", "TimeSpan.FromMilliseconds(x)"},
		{oobind.Seconds, "(ulong)x.TotalSeconds", "TimeSpan.FromSeconds(x)"},
		{oobind.StringType{}, "Helpers.RustString.ToNative(x)", "Helpers.RustString.FromNative(x)"},
		{f.point, "PointValueNative.ToNative(x)", "PointValueNative.FromNative(x)"},
		{f.request, "RequestNative.ToNative(x)", "RequestNative.FromNative(x)"},
		{f.point.Declaration().Ref(), "PointValueNative.ToNativeRef(x)", "PointValueNative.FromNativeRef(x)"},
		{f.listener, "new IListenerNativeAdapter(functional.Listener.create(x))", "IListenerNativeAdapter.FromNative(x.ctx)"},
		{f.visitor, "new IVisitorNativeAdapter(x)", "IVisitorNativeAdapter.FromNative(x.ctx)"},
		{f.counter, "x.self", "Counter.FromNative(x)"},
		{f.iter, "x", "EntryIterHelpers.FromNative(x)"},
		{f.list, "NameListHelpers.ToNative(x)", "x"},
	})
}

func TestConvert_DirectionHelper(t *testing.T) {
	d := convert.Cpp()
	if got := oobind.Convert(oobind.StringType{}, d, oobind.TowardTarget, "s"); got != "std::string(s)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := oobind.Convert(oobind.StringType{}, d, oobind.TowardNative, "s"); got != "s.c_str()" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestLookup(t *testing.T) {
	if !reflect.DeepEqual(convert.Names(), []string{"c", "cpp", "dotnet"}) {
		t.Fatalf("unexpected names %v", convert.Names())
	}
	for _, n := range convert.Names() {
		d, ok := convert.Lookup(n)
		if !ok || d.Name() != n {
			t.Fatalf("lookup %s failed", n)
		}
	}
	if _, ok := convert.Lookup("cobol"); ok {
		t.Fatalf("unexpected dialect")
	}
}
