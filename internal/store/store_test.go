package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tjournal/internal/store"
)

func activeStore(texts ...string) *store.Store {
	s := store.New()
	for _, text := range texts {
		if err := s.Add(text); err != nil {
			panic(err)
		}
	}
	return s
}

func TestAdd(t *testing.T) {
	s := store.New()

	before := len(s.Active())
	require.NoError(t, s.Add("Buy groceries"))

	active := s.Active()
	require.Len(t, active, before+1)
	assert.Equal(t, "Buy groceries", active[0].Task.Text)
	assert.Equal(t, 1, active[0].Position)
	assert.False(t, active[0].Task.Completed())
	assert.False(t, active[0].Task.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), active[0].Task.CreatedAt, 5*time.Second)
}

func TestAddTrimsText(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Add("  Buy milk  "))
	assert.Equal(t, "Buy milk", s.Active()[0].Task.Text)
}

func TestAddEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		s := store.New()
		err := s.Add(text)
		assert.ErrorIs(t, err, store.ErrEmptyText, "text %q", text)
		assert.Zero(t, s.Len(), "store must be unchanged for text %q", text)
	}
}

func TestAddAppendsAfterCompleted(t *testing.T) {
	s := activeStore("A", "B")
	_, err := s.Complete(2)
	require.NoError(t, err)

	require.NoError(t, s.Add("C"))

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "C", tasks[2].Text)
	assert.False(t, tasks[2].Completed())
}

func TestCompleteShiftsPositions(t *testing.T) {
	s := activeStore("A", "B", "C")

	done, err := s.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, "A", done.Text)
	require.True(t, done.Completed())

	active := s.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "B", active[0].Task.Text)
	assert.Equal(t, 1, active[0].Position)
	assert.Equal(t, "C", active[1].Task.Text)
	assert.Equal(t, 2, active[1].Position)

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, "A", completed[0].Task.Text)
	assert.Equal(t, 1, completed[0].Position)

	// Position 1 now resolves to B, not A
	done, err = s.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, "B", done.Text)
}

func TestCompletePositionSkipsCompleted(t *testing.T) {
	s := activeStore("A", "B", "C", "D")
	_, err := s.Complete(1)
	require.NoError(t, err)

	// Active view is [B, C, D]; position 2 is C
	done, err := s.Complete(2)
	require.NoError(t, err)
	assert.Equal(t, "C", done.Text)
}

func TestCompleteOutOfRange(t *testing.T) {
	s := activeStore("A", "B")

	for _, pos := range []int{0, -1, 3, 100} {
		_, err := s.Complete(pos)
		assert.ErrorIs(t, err, store.ErrPositionOutOfRange, "position %d", pos)
	}
	assert.Len(t, s.Active(), 2, "failed completes must not mutate")
	assert.Empty(t, s.Completed())
}

func TestCompletedAtNeverCleared(t *testing.T) {
	s := activeStore("A", "B")
	done, err := s.Complete(1)
	require.NoError(t, err)
	completedAt := *done.CompletedAt

	// Later operations leave A's completion timestamp alone.
	_, err = s.Complete(1)
	require.NoError(t, err)
	require.NoError(t, s.Add("C"))

	tasks := s.Tasks()
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, completedAt, *tasks[0].CompletedAt)
}

func TestEdit(t *testing.T) {
	s := activeStore("A", "B")
	before := s.Tasks()

	updated, err := s.Edit(1, "new text")
	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Text)

	tasks := s.Tasks()
	assert.Equal(t, "new text", tasks[0].Text)
	assert.Equal(t, before[0].CreatedAt, tasks[0].CreatedAt)
	assert.Nil(t, tasks[0].CompletedAt)
	assert.Equal(t, "B", tasks[1].Text, "only the addressed task changes")
}

func TestEditSkipsCompletedTasks(t *testing.T) {
	s := activeStore("A", "B")
	_, err := s.Complete(1)
	require.NoError(t, err)

	// Active view is just [B]; position 1 edits B, position 2 is out of range.
	updated, err := s.Edit(1, "B updated")
	require.NoError(t, err)
	assert.Equal(t, "B updated", updated.Text)

	_, err = s.Edit(2, "whatever")
	assert.ErrorIs(t, err, store.ErrPositionOutOfRange)
	assert.Equal(t, "A", s.Completed()[0].Task.Text, "completed task untouched")
}

func TestEditEmptyText(t *testing.T) {
	s := activeStore("A")
	_, err := s.Edit(1, "   ")
	assert.ErrorIs(t, err, store.ErrEmptyText)
	assert.Equal(t, "A", s.Active()[0].Task.Text)
}

func TestViewsAreCopies(t *testing.T) {
	s := activeStore("A")

	active := s.Active()
	active[0].Task.Text = "mutated"
	assert.Equal(t, "A", s.Active()[0].Task.Text)

	tasks := s.Tasks()
	tasks[0].Text = "mutated"
	assert.Equal(t, "A", s.Tasks()[0].Text)
}

func TestCompletedKeepsInsertionOrder(t *testing.T) {
	s := activeStore("A", "B", "C")

	// Complete C first, then A: completed view stays in insertion order.
	_, err := s.Complete(3)
	require.NoError(t, err)
	_, err = s.Complete(1)
	require.NoError(t, err)

	completed := s.Completed()
	require.Len(t, completed, 2)
	assert.Equal(t, "A", completed[0].Task.Text)
	assert.Equal(t, "C", completed[1].Task.Text)
}

func TestFromTasksCopies(t *testing.T) {
	tasks := []store.Task{{Text: "A", CreatedAt: time.Now().UTC()}}
	s := store.FromTasks(tasks)

	tasks[0].Text = "mutated"
	assert.Equal(t, "A", s.Tasks()[0].Text)
}
