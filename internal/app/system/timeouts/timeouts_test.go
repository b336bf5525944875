// internal/app/system/timeouts/timeouts_test.go

package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, DefaultPing)
	}
	if got := Short(); got != DefaultShort {
		t.Errorf("Short() = %v, want %v", got, DefaultShort)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, DefaultMedium)
	}
	if got := Long(); got != DefaultLong {
		t.Errorf("Long() = %v, want %v", got, DefaultLong)
	}
}

func TestConfigure(t *testing.T) {
	defer Reset()

	Configure(Config{Short: 1 * time.Second, Long: 2 * time.Minute})

	if got := Short(); got != 1*time.Second {
		t.Errorf("Short() = %v, want 1s", got)
	}
	if got := Long(); got != 2*time.Minute {
		t.Errorf("Long() = %v, want 2m", got)
	}
	// Unset fields keep their current values.
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, DefaultMedium)
	}
}

func TestConfigureIgnoresZero(t *testing.T) {
	defer Reset()

	Configure(Config{Ping: 500 * time.Millisecond})
	Configure(Config{})

	if got := Ping(); got != 500*time.Millisecond {
		t.Errorf("Ping() = %v, want 500ms", got)
	}
}
