package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
)

// ReadText returns the full contents of the file at path.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(opRead, path, err)
	}
	return string(data), nil
}

// WriteLines replaces the file at path with lines, each followed by a single
// newline. An advisory lock on the file serializes concurrent writers so a
// report is never interleaved with another. The lock handle is opened
// write-only, so files the caller may write but not read are accepted.
func WriteLines(lines []string, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return newError(opWrite, path, err)
	}
	defer file.Close()

	lock := flock.New(path, flock.SetFlag(os.O_WRONLY|os.O_CREATE))
	if err := lock.Lock(); err != nil {
		return newError(opWrite, path, fmt.Errorf("lock output: %w", err))
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := file.Truncate(0); err != nil {
		return newError(opWrite, path, err)
	}
	if err := writeLines(file, lines); err != nil {
		return newError(opWrite, path, err)
	}
	if err := file.Close(); err != nil {
		return newError(opWrite, path, err)
	}
	return nil
}

// PrintLines writes lines to w, one per line.
func PrintLines(w io.Writer, lines []string) error {
	return writeLines(w, lines)
}

func writeLines(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}
