package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrPositionRequired indicates no position argument was provided.
var ErrPositionRequired = errors.New("position required")

// ParsePosition parses a 1-based position from the first argument.
// Positions are indexes into the numbered list the user was just shown;
// only plain decimal digits are accepted.
func ParsePosition(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrPositionRequired
	}
	arg := args[0]
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid position: %s", arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position: %s", arg)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
