package status_test

import (
	"testing"

	"github.com/academicpro/academicpro/internal/app/system/status"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"To do", true},
		{"In progress", true},
		{"Done", true},

		// Case and spacing matter; these are stored verbatim.
		{"to do", false},
		{"DONE", false},
		{"In Progress", false},
		{"", false},
		{"Archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := status.IsValid(tt.value); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if status.Default != status.Todo {
		t.Errorf("Default = %q, want %q", status.Default, status.Todo)
	}
}

func TestAll(t *testing.T) {
	all := status.All()
	want := []string{"To do", "In progress", "Done"}
	if len(all) != len(want) {
		t.Fatalf("All() has %d values, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}
