package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Logger.Println("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "[calpick] ") || !strings.Contains(string(data), "hello from test") {
		t.Errorf("unexpected log contents: %q", data)
	}
}

func TestInitialize_IgnoresEmptyDir(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Errorf("expected nil for empty dir, got %v", err)
	}
	if err := Initialize("."); err != nil {
		t.Errorf("expected nil for '.', got %v", err)
	}
}
