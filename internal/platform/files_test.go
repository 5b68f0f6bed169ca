package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"video.mp4", "video.mp4"},
		{"my video.mp4", "my video.mp4"},
		{"../../etc/passwd", "passwd"},
		{"dir/video.mp4", "video.mp4"},
		{`dir\video.mp4`, "video.mp4"},
		{"a<b>c.mp4", "abc.mp4"},
		{"", "download"},
		{"..", "download"},
		{"   ", "download"},
	}

	for _, test := range tests {
		result := SanitizeFilename(test.input)
		if result != test.expected {
			t.Errorf("SanitizeFilename(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestEnsureUniquePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")

	// No collision: path returned unchanged
	if got := EnsureUniquePath(path); got != path {
		t.Errorf("Expected %s, got %s", path, got)
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create collision file: %v", err)
	}

	got := EnsureUniquePath(path)
	expected := filepath.Join(dir, "video (1).mp4")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestSaveStream(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveStream(dir, "clip.mp4", strings.NewReader("binary-payload"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if filepath.Base(path) != "clip.mp4" {
		t.Errorf("Expected filename clip.mp4, got %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != "binary-payload" {
		t.Errorf("Unexpected file contents: %q", data)
	}

	assertNoPartFiles(t, dir)
}

func TestSaveStream_CollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveStream(dir, "clip.mp4", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	second, err := SaveStream(dir, "clip.mp4", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	if first == second {
		t.Errorf("Expected distinct paths, both were %s", first)
	}
	if filepath.Base(second) != "clip (1).mp4" {
		t.Errorf("Expected 'clip (1).mp4', got %s", filepath.Base(second))
	}
}

// failingReader errors after yielding some bytes, simulating a connection
// dropped mid-body.
type failingReader struct {
	fed bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.fed {
		r.fed = true
		return copy(p, []byte("partial")), nil
	}
	return 0, errors.New("connection reset")
}

func TestSaveStream_CleansUpOnReadFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveStream(dir, "clip.mp4", &failingReader{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("Failed to list dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty dir after failed save, found %d entries", len(entries))
	}
}

func assertNoPartFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".part") {
			t.Errorf("Leftover temp file: %s", e.Name())
		}
	}
}
