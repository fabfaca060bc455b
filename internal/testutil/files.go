// internal/testutil/files.go
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LogPath returns a path to a log file that does not exist yet, inside a per-test temp dir
func LogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "args_output.txt")
}

// WriteFile seeds path with content, as if the log pre-existed
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to seed %s: %v", path, err)
	}
}

// ReadLines returns the newline-terminated lines of path, without the terminators
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	content := string(data)
	if content == "" {
		return nil
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatalf("%s does not end with a newline: %q", path, content)
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Chdir switches the working directory for the duration of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
}
