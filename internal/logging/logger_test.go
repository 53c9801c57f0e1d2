package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestZeroValueLoggerIsSilent(t *testing.T) {
	var l Logger
	l.Infof("hello %s", "world")
	l.Warnf("warn")
	l.Verbosef("verbose")
	l.Measure("noop")()
	if l.Zap() == nil {
		t.Fatalf("expected a nop zap logger")
	}
}

func TestVerbosefOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Verbosef("hidden %d", 1)
	l.Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("verbose line leaked: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Fatalf("expected info line, got %q", out)
	}

	buf.Reset()
	l = New(&buf, true)
	l.Verbosef("visible %d", 3)
	if !strings.Contains(buf.String(), "visible 3") {
		t.Fatalf("expected verbose line, got %q", buf.String())
	}
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false).With(zap.String("path", "a.jpg"))
	l.Warnf("inconsistent")

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "a.jpg") {
		t.Fatalf("expected level and field, got %q", out)
	}
}
