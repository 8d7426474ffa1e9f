package oobind

// The type sets below are closed: membership is granted by unexported marker
// methods, so only types in this package can join and an illegal placement
// (say, a collection inside a callback argument struct) does not compile.
//
//	                     FnArg FnRet CbArg CbRet | FnArgSF FnRetSF CbArgSF UnivSF
//	Primitive/Duration/*Enum  x     x     x     x  |    x       x       x       x
//	StringType                x     x     x        |    x
//	PrimitiveRef                    x              |
//	*ClassDeclaration         x     x              |            x
//	ClassMutRef                           x        |
//	*Iterator                             x        |            x       x
//	*Collection               x                    |
//	StructRef                 x     x              |
//	*FunctionArgStruct        x                    |    x
//	*FunctionReturnStruct           x              |            x
//	*CallbackArgStruct                    x        |                    x
//	*UniversalStruct          x     x     x     x  |    x       x       x       x
//	*Interface                x                    |
//	AsynchronousInterface     x                    |    x

// FunctionArgument is a type a native function can take as a parameter.
type FunctionArgument interface {
	Type
	isFunctionArgument()
}

// FunctionReturnValue is a type a native function can return.
type FunctionReturnValue interface {
	Type
	isFunctionReturnValue()
}

// CallbackArgument is a type handed to user code by a callback.
type CallbackArgument interface {
	Type
	isCallbackArgument()
}

// CallbackReturnValue is a type user code can return from a callback.
type CallbackReturnValue interface {
	Type
	isCallbackReturnValue()
}

// StructFieldType is implemented by every type that may appear as a struct
// field. It knows which initializer defaults it accepts.
type StructFieldType interface {
	Type
	// acceptsDefault is the cheap builder-time check on the kind of a default.
	acceptsDefault(v InitializerDefault) bool
	// resolveDefault is the authoritative check run by Validate.
	resolveDefault(v InitializerDefault) (ValidatedDefault, error)
}

// FunctionArgStructField may appear in a struct passed to native code.
// Borrowed for the duration of the call.
type FunctionArgStructField interface {
	StructFieldType
	isFunctionArgStructField()
}

// FunctionReturnStructField may appear in a struct returned by native code.
type FunctionReturnStructField interface {
	StructFieldType
	isFunctionReturnStructField()
}

// CallbackArgStructField may appear in a struct handed to a callback.
// Borrowed for the duration of the callback only.
type CallbackArgStructField interface {
	StructFieldType
	isCallbackArgStructField()
}

// UniversalStructField may appear in every context.
type UniversalStructField interface {
	FunctionArgStructField
	FunctionReturnStructField
	CallbackArgStructField
	isUniversalStructField()
}

// basic types

func (Primitive) isBasicType()                 {}
func (Primitive) isFunctionArgument()          {}
func (Primitive) isFunctionReturnValue()       {}
func (Primitive) isCallbackArgument()          {}
func (Primitive) isCallbackReturnValue()       {}
func (Primitive) isFunctionArgStructField()    {}
func (Primitive) isFunctionReturnStructField() {}
func (Primitive) isCallbackArgStructField()    {}
func (Primitive) isUniversalStructField()      {}

func (DurationType) isBasicType()                 {}
func (DurationType) isFunctionArgument()          {}
func (DurationType) isFunctionReturnValue()       {}
func (DurationType) isCallbackArgument()          {}
func (DurationType) isCallbackReturnValue()       {}
func (DurationType) isFunctionArgStructField()    {}
func (DurationType) isFunctionReturnStructField() {}
func (DurationType) isCallbackArgStructField()    {}
func (DurationType) isUniversalStructField()      {}

func (*Enum) isBasicType()                 {}
func (*Enum) isFunctionArgument()          {}
func (*Enum) isFunctionReturnValue()       {}
func (*Enum) isCallbackArgument()          {}
func (*Enum) isCallbackReturnValue()       {}
func (*Enum) isFunctionArgStructField()    {}
func (*Enum) isFunctionReturnStructField() {}
func (*Enum) isCallbackArgStructField()    {}
func (*Enum) isUniversalStructField()      {}

// strings and references

func (StringType) isFunctionArgument()       {}
func (StringType) isFunctionReturnValue()    {}
func (StringType) isCallbackArgument()       {}
func (StringType) isFunctionArgStructField() {}

func (PrimitiveRef) isFunctionReturnValue() {}

func (*ClassDeclaration) isFunctionArgument()          {}
func (*ClassDeclaration) isFunctionReturnValue()       {}
func (*ClassDeclaration) isFunctionReturnStructField() {}

func (ClassMutRef) isCallbackArgument() {}

func (*Iterator) isCallbackArgument()          {}
func (*Iterator) isFunctionReturnStructField() {}
func (*Iterator) isCallbackArgStructField()    {}

func (*Collection) isFunctionArgument() {}

func (StructRef) isFunctionArgument()    {}
func (StructRef) isFunctionReturnValue() {}

// structs

func (*FunctionArgStruct) isFunctionArgument()       {}
func (*FunctionArgStruct) isFunctionArgStructField() {}

func (*FunctionReturnStruct) isFunctionReturnValue()       {}
func (*FunctionReturnStruct) isFunctionReturnStructField() {}

func (*CallbackArgStruct) isCallbackArgument()       {}
func (*CallbackArgStruct) isCallbackArgStructField() {}

func (*UniversalStruct) isFunctionArgument()          {}
func (*UniversalStruct) isFunctionReturnValue()       {}
func (*UniversalStruct) isCallbackArgument()          {}
func (*UniversalStruct) isCallbackReturnValue()       {}
func (*UniversalStruct) isFunctionArgStructField()    {}
func (*UniversalStruct) isFunctionReturnStructField() {}
func (*UniversalStruct) isCallbackArgStructField()    {}
func (*UniversalStruct) isUniversalStructField()      {}

// interfaces

func (*Interface) isFunctionArgument() {}

func (AsynchronousInterface) isFunctionArgument()       {}
func (AsynchronousInterface) isFunctionArgStructField() {}
