package oobind_test

import (
	"testing"

	"github.com/reoring/oobind"
)

func newBuilder(t *testing.T) *oobind.LibraryBuilder {
	t.Helper()
	settings, err := oobind.NewLibrarySettings("foo", "foo")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	info := oobind.LibraryInfo{Description: "test library", LicenseName: "MIT"}
	return oobind.NewLibraryBuilder(oobind.Version{Major: 1, Minor: 2, Patch: 3}, info, settings)
}

func doc(s string) oobind.Doc { return oobind.NewDoc(s) }

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if !oobind.IsCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func mustValidate(t *testing.T, b *oobind.LibraryBuilder) *oobind.ValidatedLibrary {
	t.Helper()
	lib, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	v, err := lib.Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return v
}
