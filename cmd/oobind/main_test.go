package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/oobind/irjson"
)

func TestValidateCmd_Defaults(t *testing.T) {
	var buf bytes.Buffer
	if err := validateCmd(nil, &buf); err != nil {
		t.Fatalf("validate: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "foo 1.0.0: ok\n") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "class_definition") || !strings.Contains(out, "iterator") {
		t.Fatalf("expected statement counts, got %q", out)
	}
}

func TestValidateCmd_Config(t *testing.T) {
	var buf bytes.Buffer
	if err := validateCmd([]string{"-config", "../../examples/foo/foo.yaml"}, &buf); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "foo 1.0.0: ok") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := validateCmd([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &buf); err == nil {
		t.Fatalf("expected an error for a missing config")
	}
}

func TestDumpCmd_File(t *testing.T) {
	out := filepath.Join(t.TempDir(), "foo.json")
	if err := dumpCmd([]string{"-o", out}, &bytes.Buffer{}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	d, err := irjson.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Library != "foo" || len(d.Statements) == 0 {
		t.Fatalf("unexpected document %+v", d)
	}
}

func TestConvertCmd(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-dialect", "cpp", "-type", "string", "-expr", "x"}, "x.c_str()"},
		{[]string{"-dialect", "cpp", "-type", "logger", "-expr", "x"}, "to_native(std::move(x))"},
		{[]string{"-dialect", "dotnet", "-type", "duration_seconds", "-dir", "target", "-expr", "x"}, "TimeSpan.FromSeconds(x)"},
		{[]string{"-dialect", "c", "-type", "database", "-expr", "x"}, "x"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := convertCmd(c.args, &buf); err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if got := strings.TrimSpace(buf.String()); got != c.want {
			t.Fatalf("%v: got %q want %q", c.args, got, c.want)
		}
	}
}

func TestConvertCmd_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-dialect", "cobol", "-type", "u8"},
		{"-type", "u8", "-dir", "sideways"},
		{"-type", "missing"},
	} {
		if err := convertCmd(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}

func TestDialectsCmd(t *testing.T) {
	var buf bytes.Buffer
	if err := dialectsCmd(&buf); err != nil {
		t.Fatalf("dialects: %v", err)
	}
	if buf.String() != "c\ncpp\ndotnet\n" {
		t.Fatalf("unexpected dialects %q", buf.String())
	}
}
