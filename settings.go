package oobind

import (
	"fmt"
	"strconv"
	"strings"
)

// LibrarySettings holds the naming conventions shared by every entity of a
// library. One instance is shared by pointer across the whole graph.
type LibrarySettings struct {
	// Name of the library as seen by users of the bindings.
	Name Name
	// CFFIPrefix prefixes every symbol of the C ABI.
	CFFIPrefix Name

	Class      ClassSettings
	Iterator   IteratorSettings
	Collection CollectionSettings
	Future     FutureSettings
	Interface  InterfaceSettings
}

// ClassSettings names the pieces generated for classes.
type ClassSettings struct {
	MethodInstanceArgumentName Name
	DestructorName             Name
	ConstructorName            Name
}

// IteratorSettings names the pieces generated for iterators.
type IteratorSettings struct {
	NextFunctionSuffix Name
}

// CollectionSettings names the pieces generated for collections.
type CollectionSettings struct {
	CreateFunctionSuffix  Name
	AddFunctionSuffix     Name
	DestroyFunctionSuffix Name
}

// FutureSettings names the callbacks of future interfaces.
type FutureSettings struct {
	SuccessCallbackName        Name
	SuccessParameterName       Name
	FailureCallbackName        Name
	FailureParameterName       Name
	AsyncMethodCallbackArgName Name
}

// InterfaceSettings names the reserved members of every interface.
type InterfaceSettings struct {
	DestroyCallbackName Name
	ContextArgName      Name
}

func DefaultClassSettings() ClassSettings {
	return ClassSettings{
		MethodInstanceArgumentName: MustName("instance"),
		DestructorName:             MustName("destroy"),
		ConstructorName:            MustName("create"),
	}
}

func DefaultIteratorSettings() IteratorSettings {
	return IteratorSettings{NextFunctionSuffix: MustName("next")}
}

func DefaultCollectionSettings() CollectionSettings {
	return CollectionSettings{
		CreateFunctionSuffix:  MustName("create"),
		AddFunctionSuffix:     MustName("add"),
		DestroyFunctionSuffix: MustName("destroy"),
	}
}

func DefaultFutureSettings() FutureSettings {
	return FutureSettings{
		SuccessCallbackName:        MustName("on_complete"),
		SuccessParameterName:       MustName("result"),
		FailureCallbackName:        MustName("on_failure"),
		FailureParameterName:       MustName("error"),
		AsyncMethodCallbackArgName: MustName("callback"),
	}
}

func DefaultInterfaceSettings() InterfaceSettings {
	return InterfaceSettings{
		DestroyCallbackName: MustName("on_destroy"),
		ContextArgName:      MustName("ctx"),
	}
}

// NewLibrarySettings validates the library name and C prefix and fills
// every naming convention with its default.
func NewLibrarySettings(name, cFFIPrefix string) (*LibrarySettings, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := NewName(cFFIPrefix)
	if err != nil {
		return nil, err
	}
	return &LibrarySettings{
		Name:       n,
		CFFIPrefix: p,
		Class:      DefaultClassSettings(),
		Iterator:   DefaultIteratorSettings(),
		Collection: DefaultCollectionSettings(),
		Future:     DefaultFutureSettings(),
		Interface:  DefaultInterfaceSettings(),
	}, nil
}

// Version is a semantic version.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 string
}

// ParseVersion parses "MAJOR.MINOR.PATCH[-PRE]".
func ParseVersion(s string) (Version, error) {
	core, pre, _ := strings.Cut(s, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("version %q: expected MAJOR.MINOR.PATCH", s)
	}
	var nums [3]uint64
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("version %q: %w", s, err)
		}
		nums[i] = v
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre}, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// LibraryInfo is the package metadata carried into generated projects.
type LibraryInfo struct {
	Description        string
	ProjectURL         string
	Repository         string
	LicenseName        string
	LicenseDescription []string
}
