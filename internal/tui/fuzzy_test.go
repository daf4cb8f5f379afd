package tui

import "testing"

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, target string
		want          bool
	}{
		{"", "anything", true},
		{"kl", "Kuala Lumpur", true},
		{"PENANG", "Pulau Pinang (Penang)", true},
		{"tgn", "Terengganu", true},
		{"sbh", "Sabah", true},
		{"xyz", "Selangor", false},
		{"melakaa", "Melaka", false},
	}
	for _, tt := range tests {
		got, _ := FuzzyMatch(tt.query, tt.target)
		if got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.target, got, tt.want)
		}
	}
}

func TestFuzzyMatch_Scoring(t *testing.T) {
	_, prefix := FuzzyMatch("ku", "Kuala Lumpur")
	_, inner := FuzzyMatch("ku", "Sukau")
	if prefix <= inner {
		t.Errorf("prefix match (%d) should outscore inner match (%d)", prefix, inner)
	}

	_, boundary := FuzzyMatch("p", "(Penang)")
	_, plain := FuzzyMatch("p", "Ipoh")
	if boundary <= plain {
		t.Errorf("word-start match (%d) should outscore plain (%d)", boundary, plain)
	}
}

func TestFuzzyMatch_Unicode(t *testing.T) {
	ok, _ := FuzzyMatch("é", "Café")
	if !ok {
		t.Error("should match multibyte runes")
	}
}
