package oobind

import (
	"regexp"
	"strings"
)

// DocRefKind tells what a documentation reference points at.
type DocRefKind int

const (
	RefArgument DocRefKind = iota
	RefClass
	RefClassMethod
	RefClassConstructor
	RefClassDestructor
	RefStruct
	RefStructField
	RefEnum
	RefEnumVariant
	RefInterface
	RefInterfaceMethod
)

// DocRef is a reference as written in a doc string, not yet resolved.
type DocRef struct {
	Kind   DocRefKind
	Target string
	Member string
}

func (r DocRef) String() string {
	switch r.Kind {
	case RefClassMethod, RefInterfaceMethod:
		return r.Target + "." + r.Member + "()"
	case RefClassConstructor:
		return r.Target + ".[constructor]"
	case RefClassDestructor:
		return r.Target + ".[destructor]"
	case RefStructField, RefEnumVariant:
		return r.Target + "." + r.Member
	}
	return r.Target
}

// ElementKind classifies the pieces of a doc string.
type ElementKind int

const (
	ElemText ElementKind = iota
	ElemNull
	ElemIterator
	ElemReference
)

// DocElement is one piece of a doc string. Ref is set for ElemReference only.
type DocElement[R any] struct {
	Kind ElementKind
	Text string
	Ref  R
}

// DocString is a sequence of text and reference elements.
type DocString[R any] struct {
	elements []DocElement[R]
}

func (s DocString[R]) Elements() []DocElement[R] { return s.elements }

// ParagraphKind distinguishes plain detail paragraphs from warnings.
type ParagraphKind int

const (
	Details ParagraphKind = iota
	Warning
)

// DocParagraph follows the brief line of a doc.
type DocParagraph[R any] struct {
	Kind ParagraphKind
	Text DocString[R]
}

// DocTree is a brief line plus optional paragraphs. R is DocRef before
// validation and ResolvedRef after.
type DocTree[R any] struct {
	brief      DocString[R]
	paragraphs []DocParagraph[R]
}

func (t DocTree[R]) Brief() DocString[R]           { return t.brief }
func (t DocTree[R]) Paragraphs() []DocParagraph[R] { return t.paragraphs }

// ValidatedDoc has every reference bound to a concrete entity.
type ValidatedDoc = DocTree[ResolvedRef]

// Doc is the documentation attached to an entity while building. Parse
// failures are kept and reported by the builder the Doc is handed to.
type Doc struct {
	DocTree[DocRef]
	err error
}

// NewDoc parses brief into a Doc. Recognized elements are {param:x},
// {class:x}, {class:x.m()}, {class:x.[constructor]}, {class:x.[destructor]},
// {struct:x}, {struct:x.f}, {enum:x}, {enum:x.v}, {interface:x},
// {interface:x.m()}, {null} and {iterator}.
func NewDoc(brief string) Doc {
	d := Doc{}
	d.brief, d.err = parseDocString(brief)
	return d
}

// Details appends a details paragraph.
func (d Doc) Details(text string) Doc { return d.paragraph(Details, text) }

// Warning appends a warning paragraph.
func (d Doc) Warning(text string) Doc { return d.paragraph(Warning, text) }

func (d Doc) paragraph(kind ParagraphKind, text string) Doc {
	s, err := parseDocString(text)
	if err != nil && d.err == nil {
		d.err = err
	}
	out := d
	out.paragraphs = append(append([]DocParagraph[DocRef](nil), d.paragraphs...), DocParagraph[DocRef]{Kind: kind, Text: s})
	return out
}

// Err returns the first parse error, if any.
func (d Doc) Err() error { return d.err }

// attach reports a parse error against the symbol the doc belongs to.
func (d Doc) attach(symbol string) error {
	if d.err == nil {
		return nil
	}
	be, ok := AsBindingError(d.err)
	if !ok {
		return d.err
	}
	out := *be
	out.Symbol = symbol
	return &out
}

var (
	reParam             = regexp.MustCompile(`^\{param:([[:word:]]+)\}$`)
	reClass             = regexp.MustCompile(`^\{class:([[:word:]]+)\}$`)
	reClassMethod       = regexp.MustCompile(`^\{class:([[:word:]]+)\.([[:word:]]+)\(\)\}$`)
	reClassConstructor  = regexp.MustCompile(`^\{class:([[:word:]]+)\.\[constructor\]\}$`)
	reClassDestructor   = regexp.MustCompile(`^\{class:([[:word:]]+)\.\[destructor\]\}$`)
	reStruct            = regexp.MustCompile(`^\{struct:([[:word:]]+)\}$`)
	reStructField       = regexp.MustCompile(`^\{struct:([[:word:]]+)\.([[:word:]]+)\}$`)
	reEnum              = regexp.MustCompile(`^\{enum:([[:word:]]+)\}$`)
	reEnumVariant       = regexp.MustCompile(`^\{enum:([[:word:]]+)\.([[:word:]]+)\}$`)
	reInterface         = regexp.MustCompile(`^\{interface:([[:word:]]+)\}$`)
	reInterfaceCallback = regexp.MustCompile(`^\{interface:([[:word:]]+)\.([[:word:]]+)\(\)\}$`)
)

var docPatterns = []struct {
	re   *regexp.Regexp
	kind DocRefKind
}{
	{reParam, RefArgument},
	{reClass, RefClass},
	{reClassMethod, RefClassMethod},
	{reClassConstructor, RefClassConstructor},
	{reClassDestructor, RefClassDestructor},
	{reStruct, RefStruct},
	{reStructField, RefStructField},
	{reEnum, RefEnum},
	{reEnumVariant, RefEnumVariant},
	{reInterface, RefInterface},
	{reInterfaceCallback, RefInterfaceMethod},
}

func parseDocString(s string) (DocString[DocRef], error) {
	out := DocString[DocRef]{}
	for {
		start := strings.IndexByte(s, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			return out, newError(CodeInvalidDocString, "", "text", s[start:])
		}
		raw := s[start : start+end+1]
		el, ok := parseDocElement(raw)
		if !ok {
			return out, newError(CodeInvalidDocString, "", "text", raw)
		}
		if start > 0 {
			out.elements = append(out.elements, DocElement[DocRef]{Kind: ElemText, Text: s[:start]})
		}
		out.elements = append(out.elements, el)
		s = s[start+end+1:]
	}
	if s != "" {
		out.elements = append(out.elements, DocElement[DocRef]{Kind: ElemText, Text: s})
	}
	return out, nil
}

func parseDocElement(raw string) (DocElement[DocRef], bool) {
	switch raw {
	case "{null}":
		return DocElement[DocRef]{Kind: ElemNull}, true
	case "{iterator}":
		return DocElement[DocRef]{Kind: ElemIterator}, true
	}
	for _, p := range docPatterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		ref := DocRef{Kind: p.kind, Target: m[1]}
		if len(m) > 2 {
			ref.Member = m[2]
		}
		return DocElement[DocRef]{Kind: ElemReference, Ref: ref}, true
	}
	return DocElement[DocRef]{}, false
}

// ResolvedRef is a documentation reference bound to an entity.
type ResolvedRef interface {
	String() string
	isResolvedRef()
}

type ArgumentRef struct{ Name Name }
type ClassDocRef struct{ Class *ClassDeclaration }
type ClassMethodRef struct {
	Class    *Class
	Method   Name
	Function *Function
}
type ClassConstructorRef struct {
	Class       *Class
	Constructor *ClassConstructor
}
type ClassDestructorRef struct {
	Class      *Class
	Destructor *ClassDestructor
}
type StructDocRef struct{ Struct StructType }
type StructFieldRef struct {
	Struct StructType
	Field  Name
}
type EnumDocRef struct{ Enum *Enum }
type EnumVariantRef struct {
	Enum    *Enum
	Variant Name
}
type InterfaceDocRef struct{ Interface *Interface }
type InterfaceCallbackRef struct {
	Interface *Interface
	Callback  Name
}

func (r ArgumentRef) String() string { return r.Name.String() }
func (r ClassDocRef) String() string { return r.Class.Name().String() }
func (r ClassMethodRef) String() string {
	return r.Class.Name().String() + "." + r.Method.String() + "()"
}
func (r ClassConstructorRef) String() string { return r.Class.Name().String() + ".[constructor]" }
func (r ClassDestructorRef) String() string  { return r.Class.Name().String() + ".[destructor]" }
func (r StructDocRef) String() string        { return r.Struct.Name().String() }
func (r StructFieldRef) String() string      { return r.Struct.Name().String() + "." + r.Field.String() }
func (r EnumDocRef) String() string          { return r.Enum.Name().String() }
func (r EnumVariantRef) String() string      { return r.Enum.Name().String() + "." + r.Variant.String() }
func (r InterfaceDocRef) String() string     { return r.Interface.Name().String() }
func (r InterfaceCallbackRef) String() string {
	return r.Interface.Name().String() + "." + r.Callback.String() + "()"
}

func (ArgumentRef) isResolvedRef()          {}
func (ClassDocRef) isResolvedRef()          {}
func (ClassMethodRef) isResolvedRef()       {}
func (ClassConstructorRef) isResolvedRef()  {}
func (ClassDestructorRef) isResolvedRef()   {}
func (StructDocRef) isResolvedRef()         {}
func (StructFieldRef) isResolvedRef()       {}
func (EnumDocRef) isResolvedRef()           {}
func (EnumVariantRef) isResolvedRef()       {}
func (InterfaceDocRef) isResolvedRef()      {}
func (InterfaceCallbackRef) isResolvedRef() {}

// Documented is implemented by everything that carries a Doc. The key into
// ValidatedLibrary.Doc.
type Documented interface {
	RawDoc() Doc
}

// PlainText renders a doc string with references printed as written.
func PlainText[R interface{ String() string }](s DocString[R]) string {
	b := &strings.Builder{}
	for _, el := range s.elements {
		switch el.Kind {
		case ElemText:
			b.WriteString(el.Text)
		case ElemNull:
			b.WriteString("null")
		case ElemIterator:
			b.WriteString("iterator")
		case ElemReference:
			b.WriteString(el.Ref.String())
		}
	}
	return b.String()
}
