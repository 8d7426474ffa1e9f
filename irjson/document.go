// Package irjson exports a validated library as JSON for tools that do not
// link against oobind.
package irjson

// Document is the JSON form of a validated library.
// Keep the shape flat; generators only need names, types and docs.
type Document struct {
	Library    string      `json:"library"`
	CFFIPrefix string      `json:"c_ffi_prefix"`
	Version    string      `json:"version"`
	Info       Info        `json:"info"`
	Statements []Statement `json:"statements"`
}

type Info struct {
	Description        string   `json:"description,omitempty"`
	ProjectURL         string   `json:"project_url,omitempty"`
	Repository         string   `json:"repository,omitempty"`
	LicenseName        string   `json:"license_name,omitempty"`
	LicenseDescription []string `json:"license_description,omitempty"`
}

// Doc is a documentation tree with references rendered as plain text.
type Doc struct {
	Brief    string   `json:"brief"`
	Details  []string `json:"details,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Statement is one top-level entity. Only the fields relevant to Kind are set.
type Statement struct {
	ID   uint32 `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Doc  *Doc   `json:"doc,omitempty"`

	// Structs
	StructKind   string        `json:"struct_kind,omitempty"`
	Opaque       bool          `json:"opaque,omitempty"`
	Fields       []Field       `json:"fields,omitempty"`
	Initializers []Initializer `json:"initializers,omitempty"`

	// Enums and error types
	Variants      []Variant `json:"variants,omitempty"`
	ExceptionName string    `json:"exception_name,omitempty"`
	ExceptionType string    `json:"exception_type,omitempty"`

	// Functions
	Category string  `json:"category,omitempty"`
	Args     []Param `json:"args,omitempty"`
	Returns  *Param  `json:"returns,omitempty"`
	Error    string  `json:"error,omitempty"`

	// Interfaces
	Mode      string     `json:"mode,omitempty"`
	Callbacks []Callback `json:"callbacks,omitempty"`

	// Classes
	ClassType   string   `json:"class_type,omitempty"`
	Destruction string   `json:"destruction,omitempty"`
	Members     []Member `json:"members,omitempty"`

	// Iterators and collections
	Class     string   `json:"class,omitempty"`
	Item      string   `json:"item,omitempty"`
	Functions []string `json:"functions,omitempty"`
	Lifetime  bool     `json:"lifetime,omitempty"`
	Reserve   bool     `json:"reserve,omitempty"`

	Constants []Constant `json:"constants,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	PassBy string `json:"pass_by"`
	Doc    *Doc   `json:"doc,omitempty"`
}

type Initializer struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Defaults []Value `json:"defaults,omitempty"`
	Doc      *Doc    `json:"doc,omitempty"`
}

// Value is a defaulted field of an initializer.
type Value struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type Variant struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
	Doc   *Doc   `json:"doc,omitempty"`
}

type Param struct {
	Name   string `json:"name,omitempty"`
	Type   string `json:"type"`
	PassBy string `json:"pass_by"`
	Doc    *Doc   `json:"doc,omitempty"`
}

type Callback struct {
	Name    string  `json:"name"`
	Args    []Param `json:"args,omitempty"`
	Returns *Param  `json:"returns,omitempty"`
	Doc     *Doc    `json:"doc,omitempty"`
}

// Member is a class member bound to its native function.
type Member struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Function string `json:"function"`
	Future   string `json:"future,omitempty"`
}

type Constant struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Doc   *Doc   `json:"doc,omitempty"`
}
