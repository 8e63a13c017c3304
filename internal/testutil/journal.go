package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"tjournal/internal/journal"
	"tjournal/internal/store"
)

// SeedJournal writes the tasks to a journal file under dir and returns
// its path.
func SeedJournal(t *testing.T, dir string, tasks []store.Task) string {
	t.Helper()

	path := filepath.Join(dir, "journal.json")
	if err := journal.Save(path, store.FromTasks(tasks)); err != nil {
		t.Fatalf("failed to seed journal: %v", err)
	}
	return path
}

// MustTime parses an RFC3339 timestamp or fails the test.
func MustTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return ts
}

// ActiveTask builds an active task with the given text and created time.
func ActiveTask(t *testing.T, text, created string) store.Task {
	t.Helper()

	return store.Task{Text: text, CreatedAt: MustTime(t, created)}
}

// CompletedTask builds a completed task.
func CompletedTask(t *testing.T, text, created, completed string) store.Task {
	t.Helper()

	done := MustTime(t, completed)
	return store.Task{Text: text, CreatedAt: MustTime(t, created), CompletedAt: &done}
}
