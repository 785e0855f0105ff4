package logtail

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLines(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log file: %v", err)
	}
}

func TestLastReturnsTrailingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmstrip.log")
	writeLines(t, path, "one\ntwo\nthree\nfour\n")

	lines, offset, err := Last(path, 2)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(lines) != 2 || lines[0] != "three" || lines[1] != "four" {
		t.Fatalf("lines = %v, want [three four]", lines)
	}
	if offset == 0 {
		t.Fatal("expected non-zero offset")
	}
}

func TestLastFewerLinesThanLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmstrip.log")
	writeLines(t, path, "only\n")

	lines, _, err := Last(path, 10)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(lines) != 1 || lines[0] != "only" {
		t.Fatalf("lines = %v, want [only]", lines)
	}
}

func TestLastMissingFile(t *testing.T) {
	lines, offset, err := Last(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(lines) != 0 || offset != 0 {
		t.Fatalf("lines=%v offset=%d, want empty at zero", lines, offset)
	}
}

func TestSinceReadsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmstrip.log")
	writeLines(t, path, "first\n")

	_, offset, err := Last(path, 10)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("second\nthird\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	lines, newOffset, err := Since(path, offset)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(lines) != 2 || lines[0] != "second" || lines[1] != "third" {
		t.Fatalf("lines = %v, want [second third]", lines)
	}
	if newOffset <= offset {
		t.Fatalf("offset did not advance: %d -> %d", offset, newOffset)
	}
}

func TestSinceHandlesTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmstrip.log")
	writeLines(t, path, "a long line that will be truncated away\n")

	_, offset, err := Last(path, 10)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}

	writeLines(t, path, "fresh\n")

	lines, _, err := Since(path, offset)
	if err != nil {
		t.Fatalf("Since after truncation: %v", err)
	}
	if len(lines) != 1 || lines[0] != "fresh" {
		t.Fatalf("lines = %v, want [fresh]", lines)
	}
}
