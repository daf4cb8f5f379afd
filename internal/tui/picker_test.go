package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func stateChoices(names ...string) []Choice {
	out := make([]Choice, len(names))
	for i, n := range names {
		out[i] = Choice{Title: n}
	}
	return out
}

func typeKeys(p *Picker, s string) {
	for _, r := range s {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewPicker_ShowsAll(t *testing.T) {
	p := NewPicker("State", stateChoices("Johor", "Kedah", "Kelantan"))
	if len(p.filtered) != 3 {
		t.Fatalf("all choices should be visible initially, got %d", len(p.filtered))
	}
	if p.chosen != -1 {
		t.Fatal("nothing should be chosen initially")
	}
}

func TestPicker_Filter(t *testing.T) {
	p := NewPicker("State", stateChoices("Johor", "Kedah", "Kelantan", "Perak"))
	typeKeys(p, "ke")

	if len(p.filtered) != 2 {
		t.Fatalf("expected Kedah and Kelantan, got %d matches", len(p.filtered))
	}

	p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(p.filtered) != 4 {
		t.Errorf("clearing the query should show all, got %d", len(p.filtered))
	}
}

func TestPicker_MatchesDetail(t *testing.T) {
	p := NewPicker("State", []Choice{
		{Title: "Pulau Pinang", Detail: "Penang"},
		{Title: "Perlis"},
	})
	typeKeys(p, "penang")
	if len(p.filtered) != 1 || p.filtered[0] != 0 {
		t.Errorf("detail should be searchable, got %v", p.filtered)
	}
}

func TestPicker_NavigateAndSelect(t *testing.T) {
	p := NewPicker("State", stateChoices("Johor", "Kedah", "Kelantan"))

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped
	if p.cursor != 2 {
		t.Fatalf("cursor should clamp at 2, got %d", p.cursor)
	}
	p.Update(tea.KeyMsg{Type: tea.KeyUp})

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if p.chosen != 1 {
		t.Errorf("chosen = %d, want 1 (Kedah)", p.chosen)
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := NewPicker("State", stateChoices("Johor"))
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !p.canceled || p.chosen != -1 || cmd == nil {
		t.Error("esc should cancel with no choice")
	}
}

func TestPicker_EnterWithNoMatches(t *testing.T) {
	p := NewPicker("State", stateChoices("Johor"))
	typeKeys(p, "zzz")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.chosen != -1 {
		t.Errorf("no match should leave chosen at -1, got %d", p.chosen)
	}
	if !strings.Contains(p.View(), "No matches") {
		t.Error("view should say No matches")
	}
}

func TestPicker_Scrolls(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	p := NewPicker("", stateChoices(names...))
	p.Update(tea.WindowSizeMsg{Width: 80, Height: 12}) // visible = 6

	for i := 0; i < 8; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.offset != 3 {
		t.Errorf("offset = %d, want 3", p.offset)
	}
}
