package observability

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestStdLoggerEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0), false)
	l.Warn("spec skipped", String("spec", "1-3"), Int("pages", 4))

	got := buf.String()
	if !strings.Contains(got, "WARN spec skipped") {
		t.Errorf("missing level/message: %q", got)
	}
	if !strings.Contains(got, "spec=1-3") || !strings.Contains(got, "pages=4") {
		t.Errorf("missing fields: %q", got)
	}
}

func TestStdLoggerDebugGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0), false)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug emitted without verbose: %q", buf.String())
	}

	l = NewStdLogger(log.New(&buf, "", 0), true)
	l.Debug("shown")
	if !strings.Contains(buf.String(), "DEBUG shown") {
		t.Errorf("debug not emitted with verbose: %q", buf.String())
	}
}

func TestWithAccumulatesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0), false).With(String("op", "move"))
	l.Info("done", Error("err", errors.New("boom")))

	got := buf.String()
	if !strings.Contains(got, "op=move") || !strings.Contains(got, "err=boom") {
		t.Errorf("fields missing: %q", got)
	}
}

func TestNopLoggerIsSilentLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("nothing")
	if _, ok := l.With(Int("k", 1)).(NopLogger); !ok {
		t.Errorf("With should stay a NopLogger")
	}
}
