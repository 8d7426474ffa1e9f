package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reoring/oobind/internal/logging"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: slog.LevelInfo, Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Debug("hidden")
	l.Info("validated", "statements", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %s", out)
	}
	if !strings.Contains(out, "msg=validated") || !strings.Contains(out, "statements=3") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: slog.LevelDebug, Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Debug("loaded", "path", "foo.yaml")
	if !strings.Contains(buf.String(), `"msg":"loaded"`) || !strings.Contains(buf.String(), `"path":"foo.yaml"`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Config{Format: "xml"}); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
	if err := logging.Init(logging.Config{Format: "xml"}); err == nil {
		t.Fatalf("expected Init to fail for an unknown format")
	}
}
