package tokenize

import (
	"fmt"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Punkt segments sentences with the pre-trained English Punkt model and
// splits words with SplitWords.
type Punkt struct {
	sentences *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the bundled English model.
func NewPunkt() (*Punkt, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english punkt model: %w", err)
	}
	return &Punkt{sentences: tokenizer}, nil
}

// Tokenize implements Tokenizer.
func (p *Punkt) Tokenize(text string) ([][]string, error) {
	var out [][]string
	for _, sentence := range p.sentences.Tokenize(text) {
		if words := SplitWords(sentence.Text); len(words) > 0 {
			out = append(out, words)
		}
	}
	return out, nil
}
