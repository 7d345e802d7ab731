package concordance

import "testing"

func TestNewWordInfo(t *testing.T) {
	info := NewWordInfo(2, "3")
	if info.Frequency != 2 {
		t.Fatalf("Frequency = %d, want 2", info.Frequency)
	}
	if len(info.Appearances) != 1 || info.Appearances[0] != "3" {
		t.Fatalf("Appearances = %q, want [3]", info.Appearances)
	}
}

func TestWordInfoEqual(t *testing.T) {
	left := NewWordInfo(2, "3")
	right := NewWordInfo(2, "3")
	if !left.Equal(right) {
		t.Fatal("expected identical records to be equal")
	}

	right.record("4")
	if left.Equal(right) {
		t.Fatal("expected records with different appearances to differ")
	}

	reordered := &WordInfo{Frequency: 2, Appearances: []string{"2", "1"}}
	ordered := &WordInfo{Frequency: 2, Appearances: []string{"1", "2"}}
	if ordered.Equal(reordered) {
		t.Fatal("expected appearance order to matter")
	}

	var nilInfo *WordInfo
	if nilInfo.Equal(left) || left.Equal(nil) {
		t.Fatal("expected nil and non-nil records to differ")
	}
	if !nilInfo.Equal(nil) {
		t.Fatal("expected two nil records to be equal")
	}
}

func TestWordInfoRecordKeepsInvariant(t *testing.T) {
	info := NewWordInfo(1, "1")
	for _, idx := range []string{"1", "2", "2", "5"} {
		info.record(idx)
		if len(info.Appearances) != info.Frequency {
			t.Fatalf("len(Appearances)=%d, Frequency=%d", len(info.Appearances), info.Frequency)
		}
	}
	want := []string{"1", "1", "2", "2", "5"}
	for i := range want {
		if info.Appearances[i] != want[i] {
			t.Fatalf("Appearances = %q, want %q", info.Appearances, want)
		}
	}
}
