package oobind

import (
	"strings"
)

// Name is a validated snake_case identifier. Every target naming convention
// is derived from it, so it has to be legal in all of them at once.
//
// Rules: non-empty, starts with a lowercase ASCII letter, only [a-z0-9_],
// no "__", no trailing "_", not a keyword of any target language and not
// containing a phrase reserved for generated code.
type Name struct{ value string }

// reservedPhrases are used by the generated glue code itself.
var reservedPhrases = []string{"oobind", "native_library_loader"}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if reason := checkName(s); reason != "" {
		return Name{}, newError(CodeBadName, s, "name", s, "reason", reason)
	}
	return Name{value: s}, nil
}

// MustName is like NewName but panics on error. Intended for tests and
// package-level declarations.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func checkName(s string) string {
	if s == "" {
		return "empty"
	}
	if c := s[0]; c < 'a' || c > 'z' {
		return "must start with a lowercase letter"
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '_':
			if i+1 < len(s) && s[i+1] == '_' {
				return "contains a double underscore"
			}
		default:
			return "contains '" + string(rune(c)) + "'"
		}
	}
	if strings.HasSuffix(s, "_") {
		return "ends with an underscore"
	}
	if lang, ok := keywordLanguage(s); ok {
		return "'" + s + "' is a " + lang + " keyword"
	}
	for _, p := range reservedPhrases {
		if strings.Contains(s, p) {
			return "contains the reserved phrase '" + p + "'"
		}
	}
	return ""
}

// IsZero reports whether n is the zero Name (never produced by NewName).
func (n Name) IsZero() bool { return n.value == "" }

func (n Name) String() string { return n.value }

// Append joins two names with an underscore. Both parts being valid, the
// result only needs the keyword check, which a two-part name cannot fail.
func (n Name) Append(other Name) Name {
	return Name{value: n.value + "_" + other.value}
}

// AppendString validates suffix and appends it.
func (n Name) AppendString(suffix string) (Name, error) {
	s, err := NewName(suffix)
	if err != nil {
		return Name{}, err
	}
	return n.Append(s), nil
}

// Contains reports whether other appears as a substring of n.
func (n Name) Contains(other Name) bool { return strings.Contains(n.value, other.value) }

func (n Name) words() []string { return strings.Split(n.value, "_") }

// SnakeCase returns the name as written ("foo_bar").
func (n Name) SnakeCase() string { return n.value }

// ShoutySnakeCase returns "FOO_BAR".
func (n Name) ShoutySnakeCase() string { return strings.ToUpper(n.value) }

// KebabCase returns "foo-bar".
func (n Name) KebabCase() string { return strings.ReplaceAll(n.value, "_", "-") }

// PascalCase returns "FooBar".
func (n Name) PascalCase() string {
	b := &strings.Builder{}
	for _, w := range n.words() {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// CamelCase returns "fooBar".
func (n Name) CamelCase() string {
	b := &strings.Builder{}
	for i, w := range n.words() {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	if c := w[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + w[1:]
	}
	return w
}

func keywordLanguage(s string) (string, bool) {
	for _, kw := range keywordTables {
		if _, ok := kw.words[s]; ok {
			return kw.lang, true
		}
	}
	return "", false
}

type keywordTable struct {
	lang  string
	words map[string]struct{}
}

func wordSet(ws ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

// Only lowercase entries matter: a Name can never contain uppercase letters.
var keywordTables = []keywordTable{
	{lang: "Rust", words: wordSet(
		"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum",
		"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "static", "struct", "super", "trait", "true",
		"type", "unsafe", "use", "where", "while", "abstract", "become", "box", "do", "final",
		"macro", "override", "priv", "typeof", "unsized", "virtual", "yield", "try", "union",
	)},
	{lang: "C", words: wordSet(
		"auto", "break", "case", "char", "const", "continue", "default", "do", "double",
		"else", "enum", "extern", "float", "for", "goto", "if", "inline", "int", "long",
		"register", "restrict", "return", "short", "signed", "sizeof", "static", "struct",
		"switch", "typedef", "union", "unsigned", "void", "volatile", "while",
	)},
	{lang: "C++", words: wordSet(
		"alignas", "alignof", "and", "and_eq", "asm", "bitand", "bitor", "bool", "catch",
		"char8_t", "char16_t", "char32_t", "class", "compl", "concept", "consteval",
		"constexpr", "constinit", "const_cast", "co_await", "co_return", "co_yield",
		"decltype", "delete", "dynamic_cast", "explicit", "export", "false", "friend",
		"mutable", "namespace", "new", "noexcept", "not", "not_eq", "nullptr", "operator",
		"or", "or_eq", "private", "protected", "public", "reinterpret_cast", "requires",
		"static_assert", "static_cast", "template", "this", "thread_local", "throw", "true",
		"try", "typeid", "typename", "using", "virtual", "wchar_t", "xor", "xor_eq",
	)},
	{lang: "Java", words: wordSet(
		"abstract", "assert", "boolean", "byte", "catch", "class", "extends", "final",
		"finally", "implements", "import", "instanceof", "interface", "native", "new",
		"null", "package", "private", "protected", "public", "strictfp", "super",
		"synchronized", "this", "throw", "throws", "transient", "try", "var",
	)},
	{lang: "C#", words: wordSet(
		"base", "checked", "decimal", "delegate", "event", "explicit", "fixed", "foreach",
		"implicit", "internal", "is", "lock", "null", "object", "out", "params", "readonly",
		"sbyte", "sealed", "stackalloc", "string", "uint", "ulong", "unchecked", "ushort",
		"checked", "lock", "namespace", "operator", "override",
	)},
}
