// paths_test.go tests [DataDir] path construction.

package paths

import (
	"path/filepath"
	"testing"
)

func TestDataDir(t *testing.T) {
	d := DataDir{Root: "/data"}

	if got, want := d.Config(), filepath.Join("/data", ConfigFile); got != want {
		t.Errorf("Config() = %q, want %q", got, want)
	}
	if got, want := d.Log(), filepath.Join("/data", LogFile); got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}
