package oobind_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/reoring/oobind"
)

func TestValidate_EndToEnd(t *testing.T) {
	b := newBuilder(t)
	level := b.DefineEnum("level").
		Push("low", doc("Low")).
		Push("medium", doc("Medium")).
		Push("high", doc("High")).
		Doc(doc("Level of detail")).
		MustBuild()
	settings := b.DefineFunctionArgStruct("settings").
		Field("level", level, doc("Level, defaults to {enum:level.medium}")).
		Field("name", oobind.StringType{}, doc("Name")).
		Doc(doc("Settings")).
		Initializer("init", oobind.NormalInitializer, doc("Defaults"),
			oobind.Set("level", oobind.DefaultVariant("medium")),
			oobind.Set("name", oobind.DefaultString("default"))).
		MustBuild()
	apply := b.DefineFunction("apply").
		Param("value", settings, doc("Settings to apply")).
		Returns(oobind.Bool, doc("Whether {param:value} was applied")).
		Doc(doc("Apply {struct:settings} at {struct:settings.level}")).
		MustBuild()

	v := mustValidate(t, b)

	if settings.PassBy() != oobind.ConstRef {
		t.Fatalf("settings should be passed by const ref, got %v", settings.PassBy())
	}
	var names []string
	for _, f := range settings.Fields() {
		names = append(names, f.Name.String())
	}
	if !reflect.DeepEqual(names, []string{"level", "name"}) {
		t.Fatalf("unexpected field order %v", names)
	}

	var values []int32
	for _, e := range v.Enums() {
		for _, variant := range e.Variants() {
			values = append(values, variant.Value)
		}
	}
	if !reflect.DeepEqual(values, []int32{0, 1, 2}) {
		t.Fatalf("unexpected enum values %v", values)
	}

	fns := v.Functions()
	if len(fns) != 2 || fns[0] != apply || fns[1].Name().String() != "version" {
		t.Fatalf("unexpected functions %v", fns)
	}

	d, ok := v.Doc(apply)
	if !ok {
		t.Fatalf("function doc not resolved")
	}
	var refs []string
	for _, el := range d.Brief().Elements() {
		if el.Kind == oobind.ElemReference {
			refs = append(refs, el.Ref.String())
		}
	}
	if !reflect.DeepEqual(refs, []string{"settings", "settings.level"}) {
		t.Fatalf("unexpected refs %v", refs)
	}
	if got := oobind.PlainText(d.Brief()); got != "Apply settings at settings.level" {
		t.Fatalf("unexpected plain text %q", got)
	}

	ret, ok := v.Doc(apply.Return())
	if !ok {
		t.Fatalf("return doc not resolved")
	}
	if _, isArg := ret.Brief().Elements()[1].Ref.(oobind.ArgumentRef); !isArg {
		t.Fatalf("expected an argument reference in the return doc")
	}

	iv := v.InitializedValues(settings.Initializers()[0])
	if len(iv) != 2 {
		t.Fatalf("expected 2 initialized values, got %d", len(iv))
	}
	if got := iv[0].Value.Describe(); got != "level::medium" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := iv[1].Value.Describe(); got != "'default'" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	b := newBuilder(t)
	b.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()
	b.DefineUniversalStruct("point").
		Field("x", oobind.S32, doc("X")).
		Doc(doc("Point")).
		Initializer("origin", oobind.StaticInitializer, doc("Origin"), oobind.Set("x", oobind.DefaultInteger(0))).
		MustBuild()
	lib, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	first, err := lib.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	second, err := lib.Validate()
	if err != nil {
		t.Fatalf("validate again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation is not idempotent")
	}
	if first.Version() != lib.Version() || first.Settings() != lib.Settings() {
		t.Fatalf("metadata not carried over")
	}
}

func TestValidate_InvalidReferences(t *testing.T) {
	cases := []struct {
		name string
		text string
		code string
	}{
		{"missing struct", "See {struct:missing}", oobind.CodeDocInvalidReference},
		{"missing enum variant", "See {enum:level.none}", oobind.CodeDocInvalidReference},
		{"missing class", "See {class:nothing}", oobind.CodeDocInvalidReference},
		{"missing interface", "See {interface:nothing}", oobind.CodeDocInvalidReference},
		{"param outside a function", "See {param:x}", oobind.CodeDocInvalidArgumentContext},
	}
	for _, tc := range cases {
		b := newBuilder(t)
		b.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()
		b.DefineUniversalStruct("holder").
			Field("x", oobind.U8, doc(tc.text)).
			Doc(doc("Holder")).
			MustBuild()
		lib, err := b.Build()
		if err != nil {
			t.Fatalf("%s: build: %v", tc.name, err)
		}
		_, err = lib.Validate()
		if err == nil || !oobind.IsCode(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestValidate_UnknownParameter(t *testing.T) {
	b := newBuilder(t)
	b.DefineFunction("compute").
		Param("value", oobind.U32, doc("Value")).
		Doc(doc("Compute {param:other}")).
		MustBuild()
	lib, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, err = lib.Validate()
	expectCode(t, err, oobind.CodeDocInvalidReference)
}

func TestValidate_ClassAndInterfaceReferences(t *testing.T) {
	b := newBuilder(t)
	counter := declareClass(t, b, "counter")
	ctor, err := b.DefineConstructor(counter).Doc(doc("Create")).Build()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	dtor, err := b.DefineDestructor(counter, doc("Destroy"))
	if err != nil {
		t.Fatalf("destructor: %v", err)
	}
	inc, err := b.DefineMethod(counter, "increment").Doc(doc("Increment")).Build()
	if err != nil {
		t.Fatalf("method: %v", err)
	}
	b.DefineClass(counter).
		Constructor(ctor).
		Destructor(dtor).
		Method(inc).
		Doc(doc("Counter, see {class:counter.[constructor]} and {class:counter.[destructor]}").
			Details("Call {class:counter.increment()} to count.")).
		MustBuild()
	_, err = b.DefineInterface("observer", doc("Observes {class:counter}")).
		BeginCallback("on_change", doc("Changed, see {interface:observer.on_change()}")).
		Param("value", oobind.U32, doc("New {param:value}")).
		End().
		BuildSync()
	if err != nil {
		t.Fatalf("interface: %v", err)
	}

	v := mustValidate(t, b)
	classes := v.Classes()
	if len(classes) != 1 {
		t.Fatalf("expected one class")
	}
	d, ok := v.Doc(classes[0])
	if !ok {
		t.Fatalf("class doc not resolved")
	}
	var kinds []string
	for _, el := range d.Brief().Elements() {
		if el.Kind == oobind.ElemReference {
			kinds = append(kinds, reflect.TypeOf(el.Ref).Name())
		}
	}
	if !reflect.DeepEqual(kinds, []string{"ClassConstructorRef", "ClassDestructorRef"}) {
		t.Fatalf("unexpected reference kinds %v", kinds)
	}
	if len(d.Paragraphs()) != 1 || d.Paragraphs()[0].Kind != oobind.Details {
		t.Fatalf("details paragraph missing")
	}
	if _, ok := v.Doc(inc); !ok {
		t.Fatalf("method doc not resolved")
	}
	if len(v.Interfaces()) != 1 {
		t.Fatalf("expected one interface")
	}
}

func TestValidate_InitializerValueOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		field oobind.UniversalStructField
		value oobind.InitializerDefault
		code  string
	}{
		{"u8 overflow", oobind.U8, oobind.DefaultInteger(300), oobind.CodeStructInitializerBadValueForType},
		{"unsigned negative", oobind.U16, oobind.DefaultInteger(-1), oobind.CodeStructInitializerBadValueForType},
		{"typed mismatch", oobind.U8, oobind.DefaultU16(3), oobind.CodeStructInitializerBadValueForType},
		{"real for integer", oobind.S32, oobind.DefaultReal(1.5), oobind.CodeStructInitializerBadValueForType},
		{"sub-millisecond", oobind.Milliseconds, oobind.DefaultDuration(1500 * time.Microsecond), oobind.CodeStructInitializerBadValueForType},
		{"sub-second", oobind.Seconds, oobind.DefaultDuration(1500 * time.Millisecond), oobind.CodeStructInitializerBadValueForType},
		{"negative duration", oobind.Seconds, oobind.DefaultDuration(-time.Second), oobind.CodeStructInitializerBadValueForType},
	}
	for _, tc := range cases {
		b := newBuilder(t)
		b.DefineUniversalStruct("holder").
			Field("x", tc.field, doc("X")).
			Doc(doc("Holder")).
			Initializer("init", oobind.NormalInitializer, doc("Init"), oobind.Set("x", tc.value)).
			MustBuild()
		lib, err := b.Build()
		if err != nil {
			t.Fatalf("%s: build: %v", tc.name, err)
		}
		_, err = lib.Validate()
		if err == nil || !oobind.IsCode(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
		be, _ := oobind.AsBindingError(err)
		if be.Symbol != "holder" || be.Params["field"] != "x" {
			t.Fatalf("%s: error should name the struct and field, got %+v", tc.name, be)
		}
	}
}

func TestValidate_InitializerValuesInRange(t *testing.T) {
	b := newBuilder(t)
	s := b.DefineUniversalStruct("limits").
		Field("small", oobind.S8, doc("Small")).
		Field("big", oobind.U64, doc("Big")).
		Field("ratio", oobind.Float, doc("Ratio")).
		Field("wait", oobind.Seconds, doc("Wait")).
		Field("enabled", oobind.Bool, doc("Enabled")).
		Doc(doc("Limits")).
		Initializer("init", oobind.NormalInitializer, doc("Init"),
			oobind.Set("small", oobind.DefaultInteger(-128)),
			oobind.Set("big", oobind.DefaultU64(1<<63)),
			oobind.Set("ratio", oobind.DefaultInteger(2)),
			oobind.Set("wait", oobind.DefaultDuration(5*time.Second)),
			oobind.Set("enabled", oobind.DefaultBool(true))).
		MustBuild()
	v := mustValidate(t, b)
	iv := v.InitializedValues(s.Initializers()[0])
	if len(iv) != 5 {
		t.Fatalf("expected 5 values, got %d", len(iv))
	}
	if got := iv[3].Value.Describe(); got != "5 seconds" {
		t.Fatalf("unexpected duration description %q", got)
	}
	if iv[0].Value.Number.Int64() != -128 {
		t.Fatalf("unexpected value %v", iv[0].Value.Number)
	}
}

func TestValidate_UnknownEnumVariant(t *testing.T) {
	b := newBuilder(t)
	level := b.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()
	b.DefineUniversalStruct("holder").
		Field("level", level, doc("Level")).
		Doc(doc("Holder")).
		Initializer("init", oobind.NormalInitializer, doc("Init"), oobind.Set("level", oobind.DefaultVariant("extreme"))).
		MustBuild()
	lib, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, err = lib.Validate()
	expectCode(t, err, oobind.CodeUnknownEnumVariant)
}

func TestValidate_StructDefaultNeedsDefaultInitializer(t *testing.T) {
	b := newBuilder(t)
	inner := b.DefineUniversalStruct("inner").
		Field("x", oobind.U8, doc("X")).
		Doc(doc("Inner")).
		MustBuild()
	b.DefineUniversalStruct("outer").
		Field("inner", inner, doc("Inner")).
		Doc(doc("Outer")).
		Initializer("init", oobind.NormalInitializer, doc("Init"), oobind.Set("inner", oobind.DefaultStruct())).
		MustBuild()
	lib, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, err = lib.Validate()
	expectCode(t, err, oobind.CodeStructInitializerStructFieldWithoutDefaultInitializer)
}

func TestValidate_StructDefaultWithDefaultInitializer(t *testing.T) {
	b := newBuilder(t)
	inner := b.DefineUniversalStruct("inner").
		Field("x", oobind.U8, doc("X")).
		Doc(doc("Inner")).
		Initializer("init", oobind.NormalInitializer, doc("Init"), oobind.Set("x", oobind.DefaultInteger(1))).
		MustBuild()
	outer := b.DefineUniversalStruct("outer").
		Field("inner", inner, doc("Inner")).
		Doc(doc("Outer")).
		Initializer("init", oobind.NormalInitializer, doc("Init"), oobind.Set("inner", oobind.DefaultStruct())).
		MustBuild()
	v := mustValidate(t, b)
	iv := v.InitializedValues(outer.Initializers()[0])
	if len(iv) != 1 || iv[0].Value.Struct != oobind.StructType(inner) {
		t.Fatalf("unexpected struct default %+v", iv)
	}
}

func TestLibrary_ForeignEntitiesRejected(t *testing.T) {
	other := newBuilder(t)
	foreign := other.DefineUniversalStruct("point").
		Field("x", oobind.U8, doc("X")).
		Doc(doc("Point")).
		MustBuild()
	foreignEnum := other.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()

	b := newBuilder(t)
	_, err := b.DefineFunction("take_point").
		Param("value", foreign, doc("Point")).
		Doc(doc("Take a point")).
		Build()
	expectCode(t, err, oobind.CodeNotPartOfThisLibrary)

	_, err = b.DefineUniversalStruct("holder").
		Field("level", foreignEnum, doc("Level")).
		Doc(doc("Holder")).
		Build()
	expectCode(t, err, oobind.CodeNotPartOfThisLibrary)
}

func TestLibrary_SymbolAlreadyUsed(t *testing.T) {
	b := newBuilder(t)
	b.DefineFunction("compute").Doc(doc("Compute")).MustBuild()
	_, err := b.DefineFunction("compute").Doc(doc("Compute again")).Build()
	expectCode(t, err, oobind.CodeSymbolAlreadyUsed)

	_, err = b.DeclareClass("compute")
	expectCode(t, err, oobind.CodeSymbolAlreadyUsed)
}

func TestLibrary_VersionFunctionReserved(t *testing.T) {
	b := newBuilder(t)
	b.DefineFunction("version").Doc(doc("Clash")).MustBuild()
	_, err := b.Build()
	expectCode(t, err, oobind.CodeSymbolAlreadyUsed)
}

func TestValidatedLibrary_Lookup(t *testing.T) {
	b := newBuilder(t)
	e := b.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()
	v := mustValidate(t, b)
	n, ok := v.Lookup(e.NodeID())
	if !ok || n != oobind.Node(e) {
		t.Fatalf("lookup did not return the enum")
	}
	if v.Version().String() != "1.2.3" {
		t.Fatalf("unexpected version %s", v.Version())
	}
	if len(v.Statements()) != 2 {
		t.Fatalf("expected the enum and the version function, got %d", len(v.Statements()))
	}
}

func TestValidatedLibrary_FindType(t *testing.T) {
	b := newBuilder(t)
	b.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()
	counter := declareClass(t, b, "counter")
	if _, err := b.DefineCollection("name_list", oobind.StringType{}, false); err != nil {
		t.Fatalf("collection: %v", err)
	}
	v := mustValidate(t, b)

	for name, want := range map[string]string{
		"u32":              "u32",
		"duration_seconds": "duration_seconds",
		"string":           "string",
		"level":            "enum level",
		"counter":          "class counter",
		"name_list":        "collection name_list",
	} {
		typ, ok := v.FindType(name)
		if !ok {
			t.Fatalf("%s not found", name)
		}
		if typ.TypeName() != want {
			t.Fatalf("%s: got %s want %s", name, typ.TypeName(), want)
		}
	}
	if typ, _ := v.FindType("counter"); !oobind.SameNode(typ.(*oobind.ClassDeclaration), counter) {
		t.Fatalf("expected the declared class")
	}
	if _, ok := v.FindType("missing"); ok {
		t.Fatalf("unexpected match for an unknown name")
	}
}

func TestValidatedLibrary_LookupSkipsRejectedStatements(t *testing.T) {
	other := newBuilder(t)
	foreign := other.DefineEnum("level").Push("low", doc("Low")).Doc(doc("Level")).MustBuild()

	b := newBuilder(t)
	b.DefineUniversalStruct("point").Field("x", oobind.U8, doc("X")).Doc(doc("Point")).MustBuild()
	_, err := b.DeclareUniversalStruct("point")
	expectCode(t, err, oobind.CodeSymbolAlreadyUsed)
	_, err = b.DefineFunction("take_level").
		Param("level", foreign, doc("Level")).
		Doc(doc("Take a level")).
		Build()
	expectCode(t, err, oobind.CodeNotPartOfThisLibrary)

	v := mustValidate(t, b)
	count := 0
	for id := oobind.NodeID(0); ; id++ {
		n, ok := v.Lookup(id)
		if !ok {
			break
		}
		count++
		if _, isStatement := n.(oobind.Statement); !isStatement {
			t.Fatalf("node %d is not a statement: %T", id, n)
		}
	}
	if count != len(v.Statements()) {
		t.Fatalf("expected %d nodes, got %d", len(v.Statements()), count)
	}
}
