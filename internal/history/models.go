package history

import (
	"errors"
	"time"

	"concordance/internal/concordance"
)

var (
	// ErrNotFound is returned when no run matches an ID or prefix.
	ErrNotFound = errors.New("history run not found")
	// ErrAmbiguous is returned when an ID prefix matches more than one run.
	ErrAmbiguous = errors.New("history run prefix is ambiguous")
)

// OutputStdout is the Output value recorded for reports printed to stdout.
const OutputStdout = "stdout"

// Run is one recorded concordance generation.
type Run struct {
	ID        string            `json:"id"`
	InputPath string            `json:"input_path"`
	Output    string            `json:"output"`
	Tokenizer string            `json:"tokenizer"`
	Stats     concordance.Stats `json:"stats"`
	Lines     []string          `json:"lines,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// ShortID returns the first eight characters of the run ID.
func (r Run) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}
