package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter_ErrorsAreWritten(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "test")

	_ = logger.Error("greet failed", "err", "boom")

	if !strings.Contains(buf.String(), "greet failed") {
		t.Errorf("log output = %q, want the message", buf.String())
	}
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !NewWithWriter(&bytes.Buffer{}, "test").IsDebug() {
		t.Error("verbose logger should be at debug level")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard() returned nil")
	}
	_ = logger.Error("dropped")
}
