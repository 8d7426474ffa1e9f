package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "symbol" or "variant"). Placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

var english = map[string]string{
	"bad_name":                 "invalid name '{name}': {reason}",
	"symbol_already_used":      "symbol '{symbol}' is already used in this library",
	"not_part_of_this_library": "'{symbol}' was created by a different library builder",
	"duplicate_argument_name":  "'{symbol}' already has an argument named '{arg}'",
	"undefined_reference":      "reference to an undefined {type}",

	"doc_already_defined":          "documentation of '{symbol}' is already defined",
	"doc_not_defined":              "documentation of '{symbol}' is not defined",
	"invalid_doc_string":           "invalid doc string '{text}' in '{symbol}'",
	"doc_invalid_reference":        "documentation of '{symbol}' references '{ref}' which does not exist",
	"doc_invalid_argument_context": "documentation of '{symbol}' references argument '{ref}' outside of a function or callback",

	"duplicate_enum_variant_name":  "enum '{symbol}' already has a variant named '{variant}'",
	"duplicate_enum_variant_value": "enum '{symbol}' already has a variant with value {value}",
	"unknown_enum_variant":         "enum '{symbol}' has no variant named '{variant}'",
	"enum_variant_value_overflow":  "enum '{symbol}' cannot assign a value to '{variant}': the previous value is the largest i32",
	"constant_name_already_used":   "constant set '{symbol}' already contains '{constant}'",

	"struct_already_defined":                                      "struct '{symbol}' is already defined",
	"struct_kind_mismatch":                                        "struct '{symbol}' was declared as {declared} but defined as {defined}",
	"struct_field_duplicate_name":                                 "struct '{symbol}' already has a field named '{field}'",
	"struct_initializer_duplicate_name":                           "struct '{symbol}' already has a field or initializer named '{initializer}'",
	"struct_initializer_duplicate_field":                          "initializer of struct '{symbol}' already sets field '{field}'",
	"struct_initializer_unknown_field":                            "struct '{symbol}' has no field named '{field}'",
	"struct_initializer_bad_value_for_type":                       "value {value} is not valid for field '{field}' of type {type}",
	"struct_initializer_struct_field_without_default_initializer": "struct '{symbol}' has no default initializer to use as a field default",
	"struct_duplicate_initializer_args":                           "initializers '{initializer}' and '{other}' of struct '{symbol}' take the same arguments",

	"interface_not_asynchronous":                  "interface '{symbol}' is not asynchronous",
	"interface_duplicate_callback_name":           "interface '{symbol}' already has a callback named '{callback}'",
	"interface_method_with_reserved_name":         "interface '{symbol}' cannot have a callback named '{callback}' (reserved)",
	"callback_method_argument_with_reserved_name": "callback '{callback}' of interface '{symbol}' cannot have an argument named '{arg}' (reserved)",
	"return_type_already_defined":                 "return type of '{symbol}' is already defined",
	"error_type_already_defined":                  "error type of '{symbol}' is already defined",

	"class_already_defined":                    "class '{symbol}' is already defined",
	"constructor_return_type_does_not_match":   "constructor '{function}' does not return class '{symbol}'",
	"constructor_already_defined":              "class '{symbol}' already has a constructor",
	"destructor_already_defined":               "class '{symbol}' already has a destructor",
	"destructor_takes_more_than_one_parameter": "destructor '{function}' of class '{symbol}' must take exactly one class reference",
	"destructor_returns_value":                 "destructor '{function}' of class '{symbol}' must not return a value",
	"destructor_cannot_fail":                   "destructor '{function}' of class '{symbol}' cannot fail",
	"class_member_wrong_associated_class":      "'{function}' belongs to class '{other}', not '{symbol}'",
	"bad_method_name":                          "method '{method}' of class '{symbol}' must not repeat the class name",
	"no_destructor_for_manual_destruction":     "class '{symbol}' uses manual destruction but has no destructor",

	"collection_create_func_invalid_signature": "create function '{symbol}' must take nothing or a u32 reserve hint and return a class reference",
	"collection_delete_func_invalid_signature": "delete function '{symbol}' must take exactly the class reference returned by the create function",
	"collection_add_func_invalid_signature":    "add function '{symbol}' must take (collection, item) and return nothing",
	"collection_functions_cannot_fail":         "collection function '{symbol}' cannot fail",
	"iterator_return_type_not_struct_ref":      "next function '{symbol}' must return a reference to the item struct",
	"iterator_not_single_class_ref_param":      "next function '{symbol}' must take exactly one class reference",
	"iterator_functions_cannot_fail":           "next function '{symbol}' cannot fail",
}

var japanese = map[string]string{
	"bad_name":                 "名前 '{name}' が不正です: {reason}",
	"symbol_already_used":      "シンボル '{symbol}' は既に使用されています",
	"not_part_of_this_library": "'{symbol}' は別のライブラリビルダーで作成されています",
	"duplicate_argument_name":  "'{symbol}' には既に引数 '{arg}' があります",
	"undefined_reference":      "未定義の {type} を参照しています",

	"doc_already_defined":          "'{symbol}' のドキュメントは既に定義されています",
	"doc_not_defined":              "'{symbol}' のドキュメントが定義されていません",
	"invalid_doc_string":           "'{symbol}' のドキュメント文字列 '{text}' が不正です",
	"doc_invalid_reference":        "'{symbol}' のドキュメントが存在しない '{ref}' を参照しています",
	"doc_invalid_argument_context": "'{symbol}' のドキュメントが関数外で引数 '{ref}' を参照しています",

	"duplicate_enum_variant_name":  "列挙型 '{symbol}' には既にバリアント '{variant}' があります",
	"duplicate_enum_variant_value": "列挙型 '{symbol}' には既に値 {value} のバリアントがあります",
	"unknown_enum_variant":         "列挙型 '{symbol}' にバリアント '{variant}' はありません",
	"enum_variant_value_overflow":  "列挙型 '{symbol}' の '{variant}' に値を割り当てられません: 直前の値が i32 の最大値です",
	"constant_name_already_used":   "定数セット '{symbol}' には既に '{constant}' があります",

	"struct_already_defined":                                      "構造体 '{symbol}' は既に定義されています",
	"struct_kind_mismatch":                                        "構造体 '{symbol}' は {declared} として宣言されましたが {defined} として定義されています",
	"struct_field_duplicate_name":                                 "構造体 '{symbol}' には既にフィールド '{field}' があります",
	"struct_initializer_duplicate_name":                           "構造体 '{symbol}' には既に '{initializer}' という名前があります",
	"struct_initializer_duplicate_field":                          "構造体 '{symbol}' のイニシャライザはフィールド '{field}' を重複して設定しています",
	"struct_initializer_unknown_field":                            "構造体 '{symbol}' にフィールド '{field}' はありません",
	"struct_initializer_bad_value_for_type":                       "値 {value} は型 {type} のフィールド '{field}' に使用できません",
	"struct_initializer_struct_field_without_default_initializer": "構造体 '{symbol}' にはデフォルトイニシャライザがありません",
	"struct_duplicate_initializer_args":                           "構造体 '{symbol}' のイニシャライザ '{initializer}' と '{other}' の引数が同一です",

	"interface_not_asynchronous":                  "インターフェース '{symbol}' は非同期ではありません",
	"interface_duplicate_callback_name":           "インターフェース '{symbol}' には既にコールバック '{callback}' があります",
	"interface_method_with_reserved_name":         "インターフェース '{symbol}' のコールバック名 '{callback}' は予約されています",
	"callback_method_argument_with_reserved_name": "インターフェース '{symbol}' のコールバック '{callback}' の引数名 '{arg}' は予約されています",
	"return_type_already_defined":                 "'{symbol}' の戻り値型は既に定義されています",
	"error_type_already_defined":                  "'{symbol}' のエラー型は既に定義されています",

	"class_already_defined":                    "クラス '{symbol}' は既に定義されています",
	"constructor_return_type_does_not_match":   "コンストラクタ '{function}' がクラス '{symbol}' を返しません",
	"constructor_already_defined":              "クラス '{symbol}' には既にコンストラクタがあります",
	"destructor_already_defined":               "クラス '{symbol}' には既にデストラクタがあります",
	"destructor_takes_more_than_one_parameter": "クラス '{symbol}' のデストラクタ '{function}' はクラス参照を1つだけ受け取る必要があります",
	"destructor_returns_value":                 "クラス '{symbol}' のデストラクタ '{function}' は値を返せません",
	"destructor_cannot_fail":                   "クラス '{symbol}' のデストラクタ '{function}' は失敗できません",
	"class_member_wrong_associated_class":      "'{function}' はクラス '{symbol}' ではなく '{other}' に属しています",
	"bad_method_name":                          "クラス '{symbol}' のメソッド '{method}' にクラス名を含めることはできません",
	"no_destructor_for_manual_destruction":     "クラス '{symbol}' は手動破棄ですがデストラクタがありません",

	"collection_create_func_invalid_signature": "生成関数 '{symbol}' のシグネチャが不正です",
	"collection_delete_func_invalid_signature": "削除関数 '{symbol}' のシグネチャが不正です",
	"collection_add_func_invalid_signature":    "追加関数 '{symbol}' のシグネチャが不正です",
	"collection_functions_cannot_fail":         "コレクション関数 '{symbol}' は失敗できません",
	"iterator_return_type_not_struct_ref":      "next関数 '{symbol}' は要素構造体への参照を返す必要があります",
	"iterator_not_single_class_ref_param":      "next関数 '{symbol}' はクラス参照を1つだけ受け取る必要があります",
	"iterator_functions_cannot_fail":           "next関数 '{symbol}' は失敗できません",
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := english
	if t.lang == "ja" {
		dict = japanese
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders; unknown keys are left as written.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
