package oobind

// Package oobind provides:
//
// - A language-neutral model of a native library API (functions, structs, enums, error types, interfaces, classes, collections, iterators, constants)
// - Fluent builders that reject malformed input at the call that introduces it
// - A whole-library Validate pass that binds doc references and checks initializer defaults
// - The conversion contract used by code generators (PassBy, ToNative, ToTarget)
//
// Design policy:
// - Keep the model in the root package; put target dialects under convert/.
// - Only a ValidatedLibrary exposes its statements; backends cannot walk an unchecked graph.
// - Every failure is a *BindingError carrying a stable code.
//
// Typical usage:
//
//  settings, _ := oobind.NewLibrarySettings("foo", "foo")
//  b := oobind.NewLibraryBuilder(version, info, settings)
//  level := b.DefineEnum("level").Push("low", oobind.NewDoc("Low")).Doc(oobind.NewDoc("Level")).MustBuild()
//  lib, err := b.Build()
//  v, err := lib.Validate()
//
//  expr := level.ToNative(convert.Cpp(), "value")
//
