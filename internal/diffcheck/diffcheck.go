// Package diffcheck compares freshly generated output with a committed copy.
package diffcheck

import (
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// ErrDrift is returned when the committed output differs from the
// regenerated one.
var ErrDrift = errors.New("generated output is out of date")

// DriftError carries the unified diff of a drift.
type DriftError struct {
	File string
	Diff string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, ErrDrift)
}

func (e *DriftError) Unwrap() error {
	return ErrDrift
}

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Compare returns nil when got equals want. Otherwise it returns a
// *DriftError holding the unified diff from want (the committed file,
// named fromName) to got (the regenerated output, named toName).
func Compare(want, got []byte, fromName, toName string) error {
	if string(want) == string(got) {
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  contextLines,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to diff %s: %w", fromName, err)
	}
	return &DriftError{File: fromName, Diff: out}
}
