package concordance

// WordInfo tracks how often a word appeared and in which sentences.
//
// Appearances holds one 1-based sentence index per occurrence, in the order
// the occurrences were seen, so len(Appearances) always equals Frequency.
type WordInfo struct {
	Frequency   int
	Appearances []string
}

// NewWordInfo returns a WordInfo seeded with its first sentence appearance.
func NewWordInfo(frequency int, firstAppearance string) *WordInfo {
	return &WordInfo{
		Frequency:   frequency,
		Appearances: []string{firstAppearance},
	}
}

// Equal reports whether both records share a frequency and identical
// appearance lists.
func (w *WordInfo) Equal(other *WordInfo) bool {
	if w == nil || other == nil {
		return w == other
	}
	if w.Frequency != other.Frequency || len(w.Appearances) != len(other.Appearances) {
		return false
	}
	for i := range w.Appearances {
		if w.Appearances[i] != other.Appearances[i] {
			return false
		}
	}
	return true
}

func (w *WordInfo) record(sentence string) {
	w.Frequency++
	w.Appearances = append(w.Appearances, sentence)
}
