package tokenize

import (
	"strings"
	"unicode"
)

// Rules segments sentences on terminal punctuation (. ! ?) followed by
// whitespace. Closing quotes and brackets stay with the sentence they end, and
// a lone period after a known abbreviation or initialism does not end one.
type Rules struct{}

// NewRules returns a rule-based tokenizer.
func NewRules() *Rules {
	return &Rules{}
}

// Tokenize implements Tokenizer.
func (r *Rules) Tokenize(text string) ([][]string, error) {
	var out [][]string
	for _, sentence := range splitSentences(text) {
		if words := SplitWords(sentence); len(words) > 0 {
			out = append(out, words)
		}
	}
	return out, nil
}

func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if runes[i] == '.' && end == i+1 && keepsPeriod(lastChunk(runes[start:i+1])) {
			i = end - 1
			continue
		}
		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		out = append(out, rest)
	}
	return out
}

// lastChunk returns the trailing whitespace-delimited chunk without any
// leading punctuation.
func lastChunk(runes []rune) []rune {
	begin := len(runes)
	for begin > 0 && !unicode.IsSpace(runes[begin-1]) {
		begin--
	}
	for begin < len(runes) && isEdgePunct(runes[begin]) && runes[begin] != '.' {
		begin++
	}
	return runes[begin:]
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}
