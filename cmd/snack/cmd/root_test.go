package cmd

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/f3rmion/snack/internal/logging"
)

func TestFailingCommandClosesLog(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"history", "no-such-game", "--config", dir})
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected unknown game error")
	}
	if logging.Logger != nil {
		t.Error("log should be closed after a failing command")
	}

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "snack-*.log"))
	if err != nil || len(logs) != 1 {
		t.Errorf("expected one log file, got %v (%v)", logs, err)
	}
}
