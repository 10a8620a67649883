package models

import "fmt"

// Progress is the bucket a task is filed under. The three values form no
// transition graph: any value may be replaced with any other via the edit
// operation, and all three are valid initial states.
type Progress string

const (
	ProgressNotStarted Progress = "Not Started"
	ProgressInProgress Progress = "In Progress"
	ProgressCompleted  Progress = "Completed"
)

// Progresses lists all valid progress values in board order.
var Progresses = []Progress{ProgressNotStarted, ProgressInProgress, ProgressCompleted}

// ParseProgress converts a raw string into a [Progress] value.
// Returns an error for anything outside the three known buckets.
func ParseProgress(s string) (Progress, error) {
	switch Progress(s) {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted:
		return Progress(s), nil
	default:
		return "", fmt.Errorf("unknown progress value: %q", s)
	}
}

// Valid reports whether p is one of the three known buckets.
func (p Progress) Valid() bool {
	_, err := ParseProgress(string(p))
	return err == nil
}

// String implements [fmt.Stringer].
func (p Progress) String() string {
	return string(p)
}
