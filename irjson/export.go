package irjson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/oobind"
)

// Export converts v into its JSON document form.
func Export(v *oobind.ValidatedLibrary) *Document {
	s := v.Settings()
	info := v.Info()
	out := &Document{
		Library:    s.Name.String(),
		CFFIPrefix: s.CFFIPrefix.String(),
		Version:    v.Version().String(),
		Info: Info{
			Description:        info.Description,
			ProjectURL:         info.ProjectURL,
			Repository:         info.Repository,
			LicenseName:        info.LicenseName,
			LicenseDescription: info.LicenseDescription,
		},
		Statements: []Statement{},
	}
	e := exporter{lib: v}
	for _, st := range v.Statements() {
		out.Statements = append(out.Statements, e.statement(st))
	}
	return out
}

// Marshal returns the indented JSON encoding of Export(v).
func Marshal(v *oobind.ValidatedLibrary) ([]byte, error) {
	return j.MarshalIndent(Export(v), "", "  ")
}

// Write encodes Export(v) to w followed by a newline.
func Write(w io.Writer, v *oobind.ValidatedLibrary) error {
	enc := j.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Export(v))
}

// Unmarshal decodes a document produced by Marshal. Unknown keys are
// rejected so that a newer document is not silently truncated.
func Unmarshal(data []byte) (*Document, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

type exporter struct {
	lib *oobind.ValidatedLibrary
}

func (e exporter) doc(d oobind.Documented) *Doc {
	vd, ok := e.lib.Doc(d)
	if !ok {
		return nil
	}
	out := &Doc{Brief: oobind.PlainText(vd.Brief())}
	for _, p := range vd.Paragraphs() {
		text := oobind.PlainText(p.Text)
		if p.Kind == oobind.Warning {
			out.Warnings = append(out.Warnings, text)
		} else {
			out.Details = append(out.Details, text)
		}
	}
	return out
}

func (e exporter) param(name string, t oobind.Type, d oobind.Documented) Param {
	return Param{Name: name, Type: t.TypeName(), PassBy: t.PassBy().String(), Doc: e.doc(d)}
}

func (e exporter) statement(st oobind.Statement) Statement {
	out := Statement{ID: uint32(st.NodeID()), Kind: st.StatementKind().String()}
	switch x := st.(type) {
	case *oobind.ConstantSet:
		out.Name = x.Name().String()
		out.Doc = e.doc(x)
		for _, c := range x.Values() {
			out.Constants = append(out.Constants, Constant{Name: c.Name.String(), Value: c.Value.String(), Doc: e.doc(c)})
		}
	case *oobind.StructDeclaration:
		out.Name = x.Name().String()
		out.StructKind = x.Kind().String()
	case oobind.StructType:
		e.structType(&out, x)
	case *oobind.Enum:
		e.enum(&out, x)
	case *oobind.ErrorType:
		e.enum(&out, x.Inner())
		out.Doc = e.doc(x)
		out.ExceptionName = x.ExceptionName().String()
		out.ExceptionType = x.ExceptionType().String()
	case *oobind.ClassDeclaration:
		out.Name = x.Name().String()
		out.ClassType = classType(x.ClassType())
	case *oobind.Class:
		e.class(&out, x)
	case *oobind.StaticClass:
		out.Name = x.Name().String()
		out.Doc = e.doc(x)
		for _, m := range x.Methods() {
			out.Members = append(out.Members, Member{Kind: "static", Name: m.Name.String(), Function: m.Function.Name().String()})
		}
	case *oobind.Interface:
		e.iface(&out, x)
	case *oobind.Iterator:
		out.Name = x.Name().String()
		out.Class = x.IteratorClass().Name().String()
		out.Item = x.ItemType().Name().String()
		out.Functions = []string{x.NextFunction().Name().String()}
		out.Lifetime = x.HasLifetime()
	case *oobind.Collection:
		out.Name = x.Name().String()
		out.Class = x.CollectionClass().Name().String()
		out.Item = x.ItemType().TypeName()
		out.Functions = []string{x.CreateFunc().Name().String(), x.DeleteFunc().Name().String(), x.AddFunc().Name().String()}
		out.Reserve = x.HasReserve()
	case *oobind.Function:
		e.function(&out, x)
	}
	return out
}

func (e exporter) structType(out *Statement, s oobind.StructType) {
	out.Name = s.Name().String()
	out.StructKind = s.Kind().String()
	out.Opaque = s.Visibility() == oobind.Private
	out.Doc = e.doc(s)
	for _, f := range s.AnyFields() {
		out.Fields = append(out.Fields, Field{
			Name:   f.Name.String(),
			Type:   f.Type.TypeName(),
			PassBy: f.Type.PassBy().String(),
			Doc:    e.doc(f.Field),
		})
	}
	for _, init := range s.Initializers() {
		ie := Initializer{Name: init.Name.String(), Type: init.Type.String(), Doc: e.doc(init)}
		for _, iv := range e.lib.InitializedValues(init) {
			ie.Defaults = append(ie.Defaults, Value{Field: iv.Field.String(), Kind: iv.Value.Kind.String(), Value: iv.Value.Describe()})
		}
		out.Initializers = append(out.Initializers, ie)
	}
}

func (e exporter) enum(out *Statement, en *oobind.Enum) {
	out.Name = en.Name().String()
	out.Doc = e.doc(en)
	for _, v := range en.Variants() {
		out.Variants = append(out.Variants, Variant{Name: v.Name.String(), Value: v.Value, Doc: e.doc(v)})
	}
}

func (e exporter) function(out *Statement, f *oobind.Function) {
	out.Name = f.Name().String()
	out.Doc = e.doc(f)
	out.Category = f.Category().String()
	for _, a := range f.Args() {
		out.Args = append(out.Args, e.param(a.Name.String(), a.Type, a))
	}
	if r := f.Return(); r != nil {
		p := e.param("", r.Type, r)
		out.Returns = &p
	}
	if et := f.ErrorType(); et != nil {
		out.Error = et.Name().String()
	}
}

func (e exporter) iface(out *Statement, i *oobind.Interface) {
	out.Name = i.Name().String()
	out.Doc = e.doc(i)
	out.Mode = i.Mode().String()
	for _, cb := range i.Callbacks() {
		c := Callback{Name: cb.Name.String(), Doc: e.doc(cb)}
		for _, a := range cb.Args() {
			c.Args = append(c.Args, e.param(a.Name.String(), a.Type, a))
		}
		if r := cb.Return(); r != nil {
			p := e.param("", r.Type, r)
			c.Returns = &p
		}
		out.Callbacks = append(out.Callbacks, c)
	}
}

func (e exporter) class(out *Statement, c *oobind.Class) {
	out.Name = c.Name().String()
	out.Doc = e.doc(c)
	out.ClassType = classType(c.Declaration().ClassType())
	out.Destruction = destruction(c.DestructionMode())
	if ctor := c.Constructor(); ctor != nil {
		out.Members = append(out.Members, Member{Kind: "constructor", Name: c.Settings().Class.ConstructorName.String(), Function: ctor.Function.Name().String()})
	}
	if dtor := c.Destructor(); dtor != nil {
		out.Members = append(out.Members, Member{Kind: "destructor", Name: c.Settings().Class.DestructorName.String(), Function: dtor.Function.Name().String()})
	}
	for _, m := range c.Methods() {
		out.Members = append(out.Members, Member{Kind: "method", Name: m.Name.String(), Function: m.Function.Name().String()})
	}
	for _, m := range c.StaticMethods() {
		out.Members = append(out.Members, Member{Kind: "static", Name: m.Name.String(), Function: m.Function.Name().String()})
	}
	for _, m := range c.FutureMethods() {
		out.Members = append(out.Members, Member{Kind: "future", Name: m.Name.String(), Function: m.Function.Name().String(), Future: m.Future.Name().String()})
	}
}

func classType(t oobind.ClassType) string {
	switch t {
	case oobind.IteratorClass:
		return "iterator"
	case oobind.CollectionClass:
		return "collection"
	}
	return "normal"
}

func destruction(m oobind.DestructionMode) string {
	switch m.Kind {
	case oobind.DestroyCustom:
		return "custom:" + m.Method.String()
	case oobind.DestroyDispose:
		return "dispose"
	}
	return "automatic"
}
