// output_test.go tests [Render], [WriteLines], and the atomic [WriteFile]
// replacement behavior.

package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, ""},
		{"single line", []string{`"Red" #FF0000`}, "\"Red\" #FF0000\n"},
		{"multiple lines", []string{"a", "b"}, "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Render(tt.lines)); got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestWriteLines(t *testing.T) {
	var sb strings.Builder
	if err := WriteLines(&sb, []string{"one", "two"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if sb.String() != "one\ntwo\n" {
		t.Errorf("wrote %q", sb.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")

	if err := WriteFile(path, []string{"first"}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// Overwrite must fully replace the previous content.
	if err := WriteFile(path, []string{"second", "third"}); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second\nthird\n" {
		t.Errorf("content = %q", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileBadDir(t *testing.T) {
	if err := WriteFile("/nonexistent/dir/colors.txt", []string{"x"}); err == nil {
		t.Error("expected error for missing directory")
	}
}
