// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"tjournal/internal/store"
)

// textColumn is the display width the task text is padded to, so the
// created-at timestamps line up in a column.
const textColumn = 80

const timeLayout = "2006-01-02 15:04:05"

// FormatEntry formats one numbered task line.
// Format: "{N:>4}  {TEXT padded to 80 cells} [{CREATED}]" with
// " (completed {COMPLETED})" appended for completed tasks.
// Timestamps are rendered in local time.
func FormatEntry(w io.Writer, e store.Entry) {
	text := padText(normalizeText(e.Task.Text))
	created := e.Task.CreatedAt.Local().Format(timeLayout)
	if e.Task.Completed() {
		completed := e.Task.CompletedAt.Local().Format(timeLayout)
		fmt.Fprintf(w, "%4d  %s [%s] (completed %s)\n", e.Position, text, created, completed)
		return
	}
	fmt.Fprintf(w, "%4d  %s [%s]\n", e.Position, text, created)
}

// padText pads text with spaces to textColumn display cells. Padding is
// width-aware so wide runes don't break the timestamp column.
func padText(text string) string {
	width := runewidth.StringWidth(text)
	if width >= textColumn {
		return text
	}
	return text + strings.Repeat(" ", textColumn-width)
}

// normalizeText flattens a task text to a single display line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}
