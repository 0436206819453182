package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info("test info message", "key", "value")
	Debug("test debug message", "count", 42)
	Warn("test warning message", "source", "test")
	Error("test error message", "error", "test error")

	path := Path()
	if filepath.Dir(path) != filepath.Join(dir, "logs") {
		t.Fatalf("unexpected log path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	for _, want := range []string{"test info message", "test debug message", "count=42"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "warn"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info("hidden")
	Warn("shown")

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("unexpected log contents:\n%s", data)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Close()
	Info("dropped")
	if Path() != "" {
		t.Fatal("expected no log path before Init")
	}
	WithPrefix("store").Info("dropped too")
}
