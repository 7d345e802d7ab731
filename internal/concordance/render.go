package concordance

import (
	"fmt"
	"sort"
	"strings"
)

// Lines renders the concordance produced by the last Generate call, one line
// per distinct word in ascending order:
//
//	{prefix} {word} {frequency:sentence,sentence,...}
//
// The prefix and word columns are left-aligned and padded to the widest
// possible prefix and the longest word. Lines carry no trailing newline.
// ErrNotGenerated is returned if Generate has not succeeded yet; a run that
// found no words yields an empty slice.
func (g *Generator) Lines() ([]string, error) {
	if g.state == nil {
		return nil, ErrNotGenerated
	}

	words := make([]string, 0, len(g.state.table))
	for word := range g.state.table {
		words = append(words, word)
	}
	sort.Strings(words)

	// Letters plus the trailing period.
	prefixWidth := prefixColumnWidth(len(words)) + 1

	lines := make([]string, 0, len(words))
	for rank, word := range words {
		info := g.state.table[word]
		lines = append(lines, fmt.Sprintf("%-*s %-*s {%d:%s}",
			prefixWidth, Prefix(rank),
			g.state.longestWord, word,
			info.Frequency, strings.Join(info.Appearances, ","),
		))
	}
	return lines, nil
}
