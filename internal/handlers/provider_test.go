package handlers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wallycup/stats-engine/internal/store"
)

func TestFileProviderReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	p := NewFileProvider(path)

	if _, err := p.Current(); err == nil {
		t.Fatal("Current before first write = nil error, want error")
	}

	first := testReport()
	if err := store.WriteReport(path, first); err != nil {
		t.Fatal(err)
	}
	got, err := p.Current()
	if err != nil {
		t.Fatal(err)
	}
	if got.RunID != "test-run" {
		t.Errorf("run_id = %s", got.RunID)
	}

	// Cached document is reused while the file is untouched.
	again, err := p.Current()
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Error("Current reparsed an unchanged file")
	}

	second := testReport()
	second.RunID = "second-run"
	second.UpdatedAt = first.UpdatedAt.Add(time.Hour)
	if err := store.WriteReport(path, second); err != nil {
		t.Fatal(err)
	}
	// Nudge the mtime forward in case the two writes land in the same tick.
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	got, err = p.Current()
	if err != nil {
		t.Fatal(err)
	}
	if got.RunID != "second-run" {
		t.Errorf("run_id after rewrite = %s, want second-run", got.RunID)
	}
}
