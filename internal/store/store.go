// Package store holds the in-memory task sequence and all mutation and
// query logic. It knows nothing about files or the CLI.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyText indicates task text that is empty after trimming.
var ErrEmptyText = errors.New("task text is empty")

// ErrPositionOutOfRange indicates a position outside the current view.
var ErrPositionOutOfRange = errors.New("position out of range")

// Task represents a single journal entry. CompletedAt is nil while the
// task is active; once set it is never cleared. The JSON shape is the
// journal file format: completed_at serializes as null for active tasks.
type Task struct {
	Text        string     `json:"text"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Completed reports whether the task has been completed.
func (t Task) Completed() bool {
	return t.CompletedAt != nil
}

// Entry is a task annotated with its 1-based position in a filtered view.
// Positions are recomputed on every call and shift as tasks complete.
type Entry struct {
	Position int
	Task     Task
}

// Store is an ordered sequence of tasks. Insertion order is the only
// identity mechanism; there are no stable IDs.
type Store struct {
	tasks []Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// FromTasks returns a store hydrated with the given tasks in order.
// The slice is copied; the store owns its sequence exclusively.
func FromTasks(tasks []Task) *Store {
	s := &Store{tasks: make([]Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

// Tasks returns a copy of the full task sequence in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the total number of tasks, active and completed.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a new active task with the trimmed text and CreatedAt set
// to the current time. Returns ErrEmptyText if the text trims to nothing.
func (s *Store) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	s.tasks = append(s.tasks, Task{
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Complete marks the position-th active task as completed and returns it.
// Completing a task shifts the positions of all later active tasks down
// by one; that is the contract, not an accident.
func (s *Store) Complete(position int) (Task, error) {
	i, err := s.resolveActive(position)
	if err != nil {
		return Task{}, err
	}
	now := time.Now().UTC()
	s.tasks[i].CompletedAt = &now
	return s.tasks[i], nil
}

// Edit replaces the text of the position-th active task and returns the
// updated task. Completed tasks cannot be edited.
func (s *Store) Edit(position int, text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	i, err := s.resolveActive(position)
	if err != nil {
		return Task{}, err
	}
	s.tasks[i].Text = text
	return s.tasks[i], nil
}

// Active returns the active tasks in insertion order, numbered from 1.
func (s *Store) Active() []Entry {
	return s.view(false)
}

// Completed returns the completed tasks in insertion order (not
// completion order), numbered from 1.
func (s *Store) Completed() []Entry {
	return s.view(true)
}

// resolveActive maps a 1-based position in the active view to an index
// into the underlying sequence.
func (s *Store) resolveActive(position int) (int, error) {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Completed() {
			continue
		}
		n++
		if n == position {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrPositionOutOfRange, position, n)
}

func (s *Store) view(completed bool) []Entry {
	var entries []Entry
	pos := 1
	for _, t := range s.tasks {
		if t.Completed() != completed {
			continue
		}
		entries = append(entries, Entry{Position: pos, Task: t})
		pos++
	}
	return entries
}
