package tokenize

import (
	"strings"
	"unicode"
)

// clitics are split from the end of a word the way English treebank
// tokenizers do: "don't" -> "do" "n't", "it's" -> "it" "'s".
var clitics = []string{
	"n't", "n’t",
	"'s", "’s",
	"'re", "’re",
	"'ve", "’ve",
	"'ll", "’ll",
	"'d", "’d",
	"'m", "’m",
}

// abbreviations keep their trailing period when they close a chunk.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "st": {}, "jr": {}, "sr": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {}, "mt": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
	"no": {}, "gov": {}, "sgt": {}, "capt": {}, "col": {}, "gen": {}, "lt": {},
}

// SplitWords tokenizes a single sentence. Leading and trailing punctuation is
// peeled into separate tokens (runs of one character, such as "..." or "--",
// stay together), hyphens between letters or digits are split out, and
// clitics are separated. Punctuation inside a word ("3.14", "a/b") is kept.
// Concatenating the result reproduces the sentence without its whitespace.
func SplitWords(sentence string) []string {
	var tokens []string
	for _, chunk := range strings.Fields(sentence) {
		tokens = appendChunk(tokens, []rune(chunk))
	}
	return tokens
}

func appendChunk(dst []string, runes []rune) []string {
	start := 0
	for start < len(runes) && isEdgePunct(runes[start]) {
		end := sameRunEnd(runes, start, len(runes))
		dst = append(dst, string(runes[start:end]))
		start = end
	}

	stop := len(runes)
	var suffixes []string
	for stop > start && isEdgePunct(runes[stop-1]) {
		begin := sameRunStart(runes, start, stop)
		if runes[stop-1] == '.' && begin == stop-1 && keepsPeriod(runes[start:stop]) {
			break
		}
		suffixes = append(suffixes, string(runes[begin:stop]))
		stop = begin
	}

	if stop > start {
		dst = appendCore(dst, string(runes[start:stop]))
	}
	for i := len(suffixes) - 1; i >= 0; i-- {
		dst = append(dst, suffixes[i])
	}
	return dst
}

func appendCore(dst []string, word string) []string {
	for _, clitic := range clitics {
		if len(word) <= len(clitic) {
			continue
		}
		cut := len(word) - len(clitic)
		if !strings.EqualFold(word[cut:], clitic) {
			continue
		}
		base := word[:cut]
		if !endsWithLetter(base) {
			continue
		}
		return append(appendInfix(dst, base), word[cut:])
	}
	return appendInfix(dst, word)
}

// appendInfix splits hyphen runs that sit between two alphanumerics.
func appendInfix(dst []string, word string) []string {
	runes := []rune(word)
	last := 0
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] != '-' || !isAlnum(runes[i-1]) {
			continue
		}
		end := sameRunEnd(runes, i, len(runes))
		if end >= len(runes) || !isAlnum(runes[end]) {
			i = end - 1
			continue
		}
		dst = append(dst, string(runes[last:i]), string(runes[i:end]))
		last = end
		i = end - 1
	}
	return append(dst, string(runes[last:]))
}

// keepsPeriod reports whether a chunk ending in a single period is an
// abbreviation ("mr.") or a dotted initialism ("e.g.", "U.S.").
func keepsPeriod(chunk []rune) bool {
	if len(chunk) < 2 {
		return false
	}
	body := string(chunk[:len(chunk)-1])
	if _, ok := abbreviations[strings.ToLower(body)]; ok {
		return true
	}
	if !strings.Contains(body, ".") {
		return false
	}
	for _, part := range strings.Split(body, ".") {
		if part == "" || len([]rune(part)) > 2 {
			return false
		}
		for _, r := range part {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func sameRunEnd(runes []rune, from, limit int) int {
	end := from + 1
	for end < limit && runes[end] == runes[from] {
		end++
	}
	return end
}

func sameRunStart(runes []rune, floor, stop int) int {
	begin := stop - 1
	for begin > floor && runes[begin-1] == runes[stop-1] {
		begin--
	}
	return begin
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func endsWithLetter(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && unicode.IsLetter(runes[len(runes)-1])
}
