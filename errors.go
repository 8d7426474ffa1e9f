package oobind

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/oobind/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Names and symbols
	CodeBadName              = "bad_name"
	CodeSymbolAlreadyUsed    = "symbol_already_used"
	CodeNotPartOfThisLibrary = "not_part_of_this_library"
	CodeDuplicateArgName     = "duplicate_argument_name"
	CodeUndefinedReference   = "undefined_reference"

	// Documentation
	CodeDocAlreadyDefined         = "doc_already_defined"
	CodeDocNotDefined             = "doc_not_defined"
	CodeInvalidDocString          = "invalid_doc_string"
	CodeDocInvalidReference       = "doc_invalid_reference"
	CodeDocInvalidArgumentContext = "doc_invalid_argument_context"

	// Enums, error types and constants
	CodeDuplicateEnumVariantName  = "duplicate_enum_variant_name"
	CodeDuplicateEnumVariantValue = "duplicate_enum_variant_value"
	CodeUnknownEnumVariant        = "unknown_enum_variant"
	CodeEnumVariantValueOverflow  = "enum_variant_value_overflow"
	CodeConstantNameAlreadyUsed   = "constant_name_already_used"

	// Structs and initializers
	CodeStructAlreadyDefined                                  = "struct_already_defined"
	CodeStructKindMismatch                                    = "struct_kind_mismatch"
	CodeStructFieldDuplicateName                              = "struct_field_duplicate_name"
	CodeStructInitializerDuplicateName                        = "struct_initializer_duplicate_name"
	CodeStructInitializerDuplicateField                       = "struct_initializer_duplicate_field"
	CodeStructInitializerUnknownField                         = "struct_initializer_unknown_field"
	CodeStructInitializerBadValueForType                      = "struct_initializer_bad_value_for_type"
	CodeStructInitializerStructFieldWithoutDefaultInitializer = "struct_initializer_struct_field_without_default_initializer"
	CodeStructDuplicateInitializerArgs                        = "struct_duplicate_initializer_args"

	// Interfaces
	CodeInterfaceNotAsynchronous               = "interface_not_asynchronous"
	CodeInterfaceDuplicateCallbackName         = "interface_duplicate_callback_name"
	CodeInterfaceMethodWithReservedName        = "interface_method_with_reserved_name"
	CodeCallbackMethodArgumentWithReservedName = "callback_method_argument_with_reserved_name"
	CodeReturnTypeAlreadyDefined               = "return_type_already_defined"
	CodeErrorTypeAlreadyDefined                = "error_type_already_defined"

	// Classes
	CodeClassAlreadyDefined                 = "class_already_defined"
	CodeConstructorReturnTypeDoesNotMatch   = "constructor_return_type_does_not_match"
	CodeConstructorAlreadyDefined           = "constructor_already_defined"
	CodeDestructorAlreadyDefined            = "destructor_already_defined"
	CodeDestructorTakesMoreThanOneParameter = "destructor_takes_more_than_one_parameter"
	CodeDestructorReturnsValue              = "destructor_returns_value"
	CodeDestructorCannotFail                = "destructor_cannot_fail"
	CodeClassMemberWrongAssociatedClass     = "class_member_wrong_associated_class"
	CodeBadMethodName                       = "bad_method_name"
	CodeNoDestructorForManualDestruction    = "no_destructor_for_manual_destruction"

	// Collections and iterators
	CodeCollectionCreateFuncInvalidSignature = "collection_create_func_invalid_signature"
	CodeCollectionDeleteFuncInvalidSignature = "collection_delete_func_invalid_signature"
	CodeCollectionAddFuncInvalidSignature    = "collection_add_func_invalid_signature"
	CodeCollectionFunctionsCannotFail        = "collection_functions_cannot_fail"
	CodeIteratorReturnTypeNotStructRef       = "iterator_return_type_not_struct_ref"
	CodeIteratorNotSingleClassRefParam       = "iterator_not_single_class_ref_param"
	CodeIteratorFunctionsCannotFail          = "iterator_functions_cannot_fail"
)

// BindingError is the error produced by every builder call and by Validate.
// Any BindingError aborts generation; there is no partial output.
type BindingError struct {
	Code   string            // One of the codes listed above.
	Symbol string            // Entity the error is attached to, when known.
	Params map[string]string // Structured parameters for i18n (e.g. {"variant":"low"}).
	Cause  error             // Optional: underlying error.
}

func newError(code, symbol string, kv ...string) *BindingError {
	e := &BindingError{Code: code, Symbol: symbol}
	if len(kv) > 0 {
		e.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			e.Params[kv[i]] = kv[i+1]
		}
	}
	return e
}

// Error renders the code followed by the translated message,
// e.g. "duplicate_enum_variant_name: enum 'level' already has a variant named 'low'".
func (e *BindingError) Error() string {
	data := make(map[string]string, len(e.Params)+1)
	for k, v := range e.Params {
		data[k] = v
	}
	data["symbol"] = e.Symbol
	msg := i18n.T(e.Code, data)
	if msg == e.Code {
		// unknown to the translator: fall back to a stable key=value listing
		b := &strings.Builder{}
		b.WriteString(e.Code)
		if e.Symbol != "" {
			fmt.Fprintf(b, " (%s)", e.Symbol)
		}
		keys := make([]string, 0, len(e.Params))
		for k := range e.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%s", k, e.Params[k])
		}
		if e.Cause != nil {
			b.WriteString(": " + e.Cause.Error())
		}
		return b.String()
	}
	if e.Cause != nil {
		return e.Code + ": " + msg + ": " + e.Cause.Error()
	}
	return e.Code + ": " + msg
}

func (e *BindingError) Unwrap() error { return e.Cause }

// Is reports whether target is a BindingError with the same code. A target
// carrying a Symbol must match it as well.
func (e *BindingError) Is(target error) bool {
	t, ok := target.(*BindingError)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Symbol == "" || t.Symbol == e.Symbol
}

// AsBindingError extracts a BindingError from an error using errors.As internally.
func AsBindingError(err error) (*BindingError, bool) {
	if err == nil {
		return nil, false
	}
	var be *BindingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code string) bool {
	be, ok := AsBindingError(err)
	return ok && be.Code == code
}
