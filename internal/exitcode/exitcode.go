// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a declined
	// confirmation prompt.
	Success = 0

	// UserError indicates a user error (bad args, empty text, position
	// out of range).
	UserError = 1

	// DataError indicates the journal file exists but does not decode.
	DataError = 2

	// IOError indicates a read/write error other than a missing journal.
	IOError = 3
)
