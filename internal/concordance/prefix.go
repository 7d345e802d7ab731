package concordance

import "strings"

const lettersInAlphabet = 26

// Prefix returns the ordinal label for the word at the zero-based rank: the
// letter for rank%26 repeated rank/26+1 times, followed by a period. Rank 0 is
// "a.", 25 is "z.", 26 is "aa.", 27 is "bb.", 52 is "aaa.".
func Prefix(rank int) string {
	if rank < 0 {
		rank = 0
	}
	length := rank/lettersInAlphabet + 1
	letter := string(rune('a' + rank%lettersInAlphabet))
	return strings.Repeat(letter, length) + "."
}

// prefixColumnWidth is the number of letters in the widest prefix for a
// concordance of the given size.
func prefixColumnWidth(distinctWords int) int {
	return (distinctWords + lettersInAlphabet - 1) / lettersInAlphabet
}
