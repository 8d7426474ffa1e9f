// Package config loads library metadata and naming settings from YAML.
//
// A minimal file:
//
//	name: foo
//	c_ffi_prefix: foo
//	version: 1.2.3
//	info:
//	  description: Example library
//	  license_name: MIT
//
// Every naming convention of oobind.LibrarySettings can be overridden under
// class, iterator, collection, future and interface. Omitted entries keep
// their default.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/reoring/oobind"
)

// File is the decoded form of a library configuration file.
type File struct {
	Name       string          `yaml:"name"`
	CFFIPrefix string          `yaml:"c_ffi_prefix"`
	Version    string          `yaml:"version"`
	Info       Info            `yaml:"info"`
	Class      ClassNames      `yaml:"class"`
	Iterator   IteratorNames   `yaml:"iterator"`
	Collection CollectionNames `yaml:"collection"`
	Future     FutureNames     `yaml:"future"`
	Interface  InterfaceNames  `yaml:"interface"`
}

type Info struct {
	Description        string   `yaml:"description"`
	ProjectURL         string   `yaml:"project_url"`
	Repository         string   `yaml:"repository"`
	LicenseName        string   `yaml:"license_name"`
	LicenseDescription []string `yaml:"license_description"`
}

type ClassNames struct {
	MethodInstanceArgumentName string `yaml:"method_instance_argument_name"`
	DestructorName             string `yaml:"destructor_name"`
	ConstructorName            string `yaml:"constructor_name"`
}

type IteratorNames struct {
	NextFunctionSuffix string `yaml:"next_function_suffix"`
}

type CollectionNames struct {
	CreateFunctionSuffix  string `yaml:"create_function_suffix"`
	AddFunctionSuffix     string `yaml:"add_function_suffix"`
	DestroyFunctionSuffix string `yaml:"destroy_function_suffix"`
}

type FutureNames struct {
	SuccessCallbackName        string `yaml:"success_callback_name"`
	SuccessParameterName       string `yaml:"success_parameter_name"`
	FailureCallbackName        string `yaml:"failure_callback_name"`
	FailureParameterName       string `yaml:"failure_parameter_name"`
	AsyncMethodCallbackArgName string `yaml:"async_method_callback_arg_name"`
}

type InterfaceNames struct {
	DestroyCallbackName string `yaml:"destroy_callback_name"`
	ContextArgName      string `yaml:"context_arg_name"`
}

// Load decodes a configuration from r.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f File
	if err := decodeStrict(data, &f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("config: name is required")
	}
	if f.CFFIPrefix == "" {
		f.CFFIPrefix = f.Name
	}
	return &f, nil
}

// LoadFile decodes the configuration stored at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// LibraryVersion parses the version field. An empty version is 0.1.0.
func (f *File) LibraryVersion() (oobind.Version, error) {
	if f.Version == "" {
		return oobind.Version{Minor: 1}, nil
	}
	v, err := oobind.ParseVersion(f.Version)
	if err != nil {
		return oobind.Version{}, fmt.Errorf("config: %w", err)
	}
	return v, nil
}

func (f *File) LibraryInfo() oobind.LibraryInfo {
	return oobind.LibraryInfo{
		Description:        f.Info.Description,
		ProjectURL:         f.Info.ProjectURL,
		Repository:         f.Info.Repository,
		LicenseName:        f.Info.LicenseName,
		LicenseDescription: f.Info.LicenseDescription,
	}
}

// Settings builds the library settings, applying every override on top of
// the defaults. Each override must itself be a valid name.
func (f *File) Settings() (*oobind.LibrarySettings, error) {
	s, err := oobind.NewLibrarySettings(f.Name, f.CFFIPrefix)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	o := overrides{}
	o.set(&s.Class.MethodInstanceArgumentName, "class.method_instance_argument_name", f.Class.MethodInstanceArgumentName)
	o.set(&s.Class.DestructorName, "class.destructor_name", f.Class.DestructorName)
	o.set(&s.Class.ConstructorName, "class.constructor_name", f.Class.ConstructorName)
	o.set(&s.Iterator.NextFunctionSuffix, "iterator.next_function_suffix", f.Iterator.NextFunctionSuffix)
	o.set(&s.Collection.CreateFunctionSuffix, "collection.create_function_suffix", f.Collection.CreateFunctionSuffix)
	o.set(&s.Collection.AddFunctionSuffix, "collection.add_function_suffix", f.Collection.AddFunctionSuffix)
	o.set(&s.Collection.DestroyFunctionSuffix, "collection.destroy_function_suffix", f.Collection.DestroyFunctionSuffix)
	o.set(&s.Future.SuccessCallbackName, "future.success_callback_name", f.Future.SuccessCallbackName)
	o.set(&s.Future.SuccessParameterName, "future.success_parameter_name", f.Future.SuccessParameterName)
	o.set(&s.Future.FailureCallbackName, "future.failure_callback_name", f.Future.FailureCallbackName)
	o.set(&s.Future.FailureParameterName, "future.failure_parameter_name", f.Future.FailureParameterName)
	o.set(&s.Future.AsyncMethodCallbackArgName, "future.async_method_callback_arg_name", f.Future.AsyncMethodCallbackArgName)
	o.set(&s.Interface.DestroyCallbackName, "interface.destroy_callback_name", f.Interface.DestroyCallbackName)
	o.set(&s.Interface.ContextArgName, "interface.context_arg_name", f.Interface.ContextArgName)
	if o.err != nil {
		return nil, o.err
	}
	return s, nil
}

type overrides struct{ err error }

func (o *overrides) set(dst *oobind.Name, key, value string) {
	if o.err != nil || value == "" {
		return
	}
	n, err := oobind.NewName(value)
	if err != nil {
		o.err = fmt.Errorf("config: %s: %w", key, err)
		return
	}
	*dst = n
}
