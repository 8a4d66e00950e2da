package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_Level(t *testing.T) {
	for _, debug := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "smsshield.log")
		l, err := Open(path, debug)
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		l.Debug("detail", "request_id", "abc")
		l.Info("summary")
		_ = l.Close()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		out := string(data)
		if !strings.Contains(out, "msg=summary") {
			t.Fatalf("debug=%v: info record missing: %q", debug, out)
		}
		hasDebug := strings.Contains(out, "msg=detail") && strings.Contains(out, "request_id=abc")
		if hasDebug != debug {
			t.Fatalf("debug=%v: debug record present = %v: %q", debug, hasDebug, out)
		}
	}
}

func TestOpen_CreatesFileAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "smsshield.log")

	l, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	l.Warn("classification failed", "error", "boom")
	if err := l.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	l, err = Open(path, false)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	l.Info("second run")
	_ = l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "classification failed") || !strings.Contains(out, "second run") {
		t.Fatalf("log file = %q, want both records", out)
	}
	if l.Path() != path {
		t.Fatalf("Path = %q, want %q", l.Path(), path)
	}
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, err := Open("  ", true)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	l.Info("nowhere")
	if l.Path() != "" {
		t.Fatalf("Path = %q, want empty", l.Path())
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
