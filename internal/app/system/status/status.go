// internal/app/system/status/status.go

// Package status defines the three-value workflow label shared by note
// statuses and group project statuses. The workflow is a label, not a
// state machine: any value may move directly to any other.
package status

const (
	Todo       = "To do"
	InProgress = "In progress"
	Done       = "Done"
)

// Default is the status assigned when none is supplied.
const Default = Todo

// IsValid reports whether s is one of the three workflow values.
func IsValid(s string) bool {
	switch s {
	case Todo, InProgress, Done:
		return true
	}
	return false
}

// All returns the workflow values in board order.
func All() []string {
	return []string{Todo, InProgress, Done}
}
