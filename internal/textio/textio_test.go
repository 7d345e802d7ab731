package textio_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"concordance/internal/textio"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SimpleTest.txt")
	want := "This is a simple test.\nA two sentence test."
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := textio.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != want {
		t.Fatalf("ReadText = %q, want %q", got, want)
	}
}

func TestReadTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "this_file_should_not_exist.txt")

	_, err := textio.ReadText(path)
	if !errors.Is(err, textio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying cause to be preserved, got %v", err)
	}
	want := fmt.Sprintf("The provided input file -- %s -- does not exist.", path)
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}

	var ioErr *textio.Error
	if !errors.As(err, &ioErr) || ioErr.ErrorKind() != "not_found" {
		t.Fatalf("expected *textio.Error with kind not_found, got %#v", err)
	}
}

func TestReadTextUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	path := filepath.Join(t.TempDir(), "locked.txt")
	if err := os.WriteFile(path, []byte("secret"), 0o000); err != nil {
		t.Fatal(err)
	}

	_, err := textio.ReadText(path)
	if !errors.Is(err, textio.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot be read") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestReadTextDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := textio.ReadText(dir)
	if !errors.Is(err, textio.ErrIsDirectory) {
		t.Fatalf("expected ErrIsDirectory, got %v", err)
	}
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TestWriteFile.txt")

	if err := textio.WriteLines([]string{"Testing", "Testing"}, path); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Testing\nTesting\n" {
		t.Fatalf("content = %q", got)
	}

	// A shorter report must fully replace the previous one.
	if err := textio.WriteLines([]string{"x"}, path); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "x\n" {
		t.Fatalf("content after rewrite = %q", got)
	}
}

func TestWriteLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := textio.WriteLines(nil, path); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteLinesToDirectory(t *testing.T) {
	dir := t.TempDir()

	err := textio.WriteLines([]string{"Testing"}, dir)
	if !errors.Is(err, textio.ErrIsDirectory) {
		t.Fatalf("expected ErrIsDirectory, got %v", err)
	}
	want := fmt.Sprintf("The provided output file -- %s -- is a directory.", dir)
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestWriteLinesPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}

	err := textio.WriteLines([]string{"Testing"}, filepath.Join(dir, "out.txt"))
	if !errors.Is(err, textio.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot be opened for writing") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWriteLinesWriteOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("stale\n"), 0o200); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o200); err != nil {
		t.Fatal(err)
	}

	if err := textio.WriteLines([]string{"a. {1:1} word"}, path); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a. {1:1} word\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestWriteLinesMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := textio.WriteLines([]string{"x"}, path)
	if !errors.Is(err, textio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteLinesConcurrentWritersDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.txt")

	reports := make([][]string, 8)
	for i := range reports {
		lines := make([]string, 200)
		for j := range lines {
			lines[j] = fmt.Sprintf("writer-%d line-%03d", i, j)
		}
		reports[i] = lines
	}

	var wg sync.WaitGroup
	for _, lines := range reports {
		wg.Add(1)
		go func(lines []string) {
			defer wg.Done()
			if err := textio.WriteLines(lines, path); err != nil {
				t.Errorf("WriteLines: %v", err)
			}
		}(lines)
	}
	wg.Wait()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, lines := range reports {
		if string(got) == strings.Join(lines, "\n")+"\n" {
			return
		}
	}
	t.Fatalf("final content is not one complete report (%d bytes)", len(got))
}

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	if err := textio.PrintLines(&buf, []string{"This is a test.", "A second sentence."}); err != nil {
		t.Fatalf("PrintLines: %v", err)
	}
	if got := buf.String(); got != "This is a test.\nA second sentence.\n" {
		t.Fatalf("PrintLines wrote %q", got)
	}
}
