package concordance

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"concordance/internal/logging"
	"concordance/internal/tokenize"
)

// ErrNotGenerated is returned when report lines are requested before a
// successful Generate call.
var ErrNotGenerated = errors.New("concordance not generated: run Generate before requesting lines")

// asciiPunctuation mirrors the ASCII punctuation set; single-character tokens
// drawn from it are not words.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Stats summarizes the most recent Generate run.
type Stats struct {
	Sentences     int `json:"sentences"`
	Tokens        int `json:"tokens"`
	Words         int `json:"words"`
	DistinctWords int `json:"distinct_words"`
	LongestWord   int `json:"longest_word"`
}

// state is rebuilt from scratch on every Generate call.
type state struct {
	table       map[string]*WordInfo
	longestWord int
	sentences   int
	tokens      int
	words       int
}

func newState() *state {
	return &state{table: make(map[string]*WordInfo)}
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger attaches a logger used for run summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator builds a concordance from text. It is not safe for concurrent use.
type Generator struct {
	tokenizer tokenize.Tokenizer
	lower     cases.Caser
	logger    *slog.Logger

	// nil until Generate succeeds at least once.
	state *state
}

// New constructs a Generator that segments text with tok.
func New(tok tokenize.Tokenizer, opts ...Option) *Generator {
	g := &Generator{
		tokenizer: tok,
		lower:     cases.Lower(language.English),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate replaces any previous result with the concordance of text.
// A tokenizer failure discards the previous result, leaving the generator in
// the not-generated state.
func (g *Generator) Generate(text string) error {
	g.state = nil
	if g.tokenizer == nil {
		return errors.New("generate concordance: no tokenizer configured")
	}

	st := newState()

	// Newlines are not word boundaries for the tokenizer; collapse every
	// whitespace run so words on adjacent lines stay separate.
	normalized := norm.NFC.String(strings.Join(strings.Fields(text), " "))

	sentences, err := g.tokenizer.Tokenize(normalized)
	if err != nil {
		return fmt.Errorf("tokenize text: %w", err)
	}

	for i, sentence := range sentences {
		index := strconv.Itoa(i + 1)
		for _, token := range sentence {
			st.tokens++
			word := g.lower.String(token)
			if isPunctuation(word) {
				continue
			}
			st.words++
			if info, ok := st.table[word]; ok {
				info.record(index)
				continue
			}
			st.table[word] = NewWordInfo(1, index)
			if n := utf8.RuneCountInString(word); n > st.longestWord {
				st.longestWord = n
			}
		}
	}
	st.sentences = len(sentences)

	g.state = st
	g.logger.Debug("concordance generated",
		logging.Args(
			logging.Int("sentences", st.sentences),
			logging.Int("words", st.words),
			logging.Int("distinct_words", len(st.table)),
			logging.Int("longest_word", st.longestWord),
		)...,
	)
	return nil
}

// Generated reports whether Generate has completed successfully.
func (g *Generator) Generated() bool {
	return g.state != nil
}

// LongestWord returns the length, in characters, of the longest word seen by
// the last run. It is 0 before the first run.
func (g *Generator) LongestWord() int {
	if g.state == nil {
		return 0
	}
	return g.state.longestWord
}

// WordToInfo exposes the word table of the last run. It returns nil before
// the first run and an empty map after a run that found no words.
func (g *Generator) WordToInfo() map[string]*WordInfo {
	if g.state == nil {
		return nil
	}
	return g.state.table
}

// Stats returns counters for the last run.
func (g *Generator) Stats() Stats {
	if g.state == nil {
		return Stats{}
	}
	return Stats{
		Sentences:     g.state.sentences,
		Tokens:        g.state.tokens,
		Words:         g.state.words,
		DistinctWords: len(g.state.table),
		LongestWord:   g.state.longestWord,
	}
}

func isPunctuation(token string) bool {
	return len(token) == 1 && strings.IndexByte(asciiPunctuation, token[0]) >= 0
}
