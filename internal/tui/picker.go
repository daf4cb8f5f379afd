package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/sakinahapp/sakinah/internal/ui"
)

// Choice is one row in a Picker.
type Choice struct {
	Title  string
	Detail string
}

// Picker is a fuzzy-search list selector.
type Picker struct {
	title  string
	height int

	choices  []Choice
	filtered []int // indexes into choices
	query    []rune
	cursor   int
	offset   int
	chosen   int
	canceled bool

	termHeight int
}

// NewPicker creates a Picker over choices.
func NewPicker(title string, choices []Choice) *Picker {
	p := &Picker{
		title:      title,
		height:     10,
		choices:    choices,
		chosen:     -1,
		termHeight: 24,
	}
	p.applyFilter()
	return p
}

// Pick shows a picker and returns the chosen index, or -1 if the user canceled.
func Pick(title string, choices []Choice) (int, error) {
	prog := tea.NewProgram(NewPicker(title, choices), tea.WithAltScreen())
	m, err := prog.Run()
	if err != nil {
		return -1, fmt.Errorf("picker: %w", err)
	}
	return m.(*Picker).chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termHeight = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.canceled = true
			p.chosen = -1
			return p, tea.Quit
		case tea.KeyEnter:
			if len(p.filtered) > 0 {
				p.chosen = p.filtered[p.cursor]
			}
			return p, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			p.move(-1)
		case tea.KeyDown, tea.KeyCtrlN:
			p.move(1)
		case tea.KeyBackspace:
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
				p.applyFilter()
			}
		case tea.KeyRunes, tea.KeySpace:
			p.query = append(p.query, msg.Runes...)
			p.applyFilter()
		}
	}
	return p, nil
}

func (p *Picker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}

	prompt := lipgloss.NewStyle().Foreground(ui.Gold).Bold(true).Render("> ")
	b.WriteString("  " + prompt + string(p.query) + ui.Accent.Render("▎") + "\n\n")

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	}
	end := min(p.offset+p.visibleHeight(), len(p.filtered))
	for i := p.offset; i < end; i++ {
		b.WriteString(p.renderChoice(p.choices[p.filtered[i]], i == p.cursor) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(fmt.Sprintf("  %d/%d · ↑↓ navigate · enter select · esc cancel", len(p.filtered), len(p.choices))) + "\n")
	return b.String()
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.filtered) {
		return
	}
	p.cursor = next
	vis := p.visibleHeight()
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+vis {
		p.offset = p.cursor - vis + 1
	}
}

func (p *Picker) visibleHeight() int {
	h := p.height
	if h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	return max(h, 3)
}

func (p *Picker) applyFilter() {
	type hit struct{ idx, score int }
	var hits []hit
	q := string(p.query)
	for i, c := range p.choices {
		if ok, sc := FuzzyMatch(q, c.Title+" "+c.Detail); ok {
			hits = append(hits, hit{i, sc})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	p.filtered = p.filtered[:0]
	for _, h := range hits {
		p.filtered = append(p.filtered, h.idx)
	}
	p.cursor = 0
	p.offset = 0
}

func (p *Picker) renderChoice(c Choice, selected bool) string {
	pointer := "  "
	title := lipgloss.NewStyle()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		title = title.Foreground(ui.Gold).Bold(true)
	}
	line := "  " + pointer + title.Render(c.Title)
	if c.Detail != "" {
		line += "  " + ui.Muted.Render(c.Detail)
	}
	return line
}
