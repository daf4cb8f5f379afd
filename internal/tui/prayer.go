package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sakinahapp/sakinah/internal/prayer"
	"github.com/sakinahapp/sakinah/internal/ui"
)

// PrayerModel is a full-screen countdown to the next prayer.
type PrayerModel struct {
	place   string
	timings prayer.Timings
	now     func() time.Time

	next     prayer.Upcoming
	err      error
	width    int
	height   int
	quitting bool
}

type prayerTickMsg time.Time

// NewPrayerModel creates a PrayerModel for one day's timings.
func NewPrayerModel(place string, timings prayer.Timings) *PrayerModel {
	m := &PrayerModel{
		place:   place,
		timings: timings,
		now:     time.Now,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// RunPrayer launches the live countdown until the user quits.
func RunPrayer(place string, timings prayer.Timings) error {
	prog := tea.NewProgram(NewPrayerModel(place, timings), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("prayer tui: %w", err)
	}
	return nil
}

func prayerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return prayerTickMsg(t)
	})
}

func (m *PrayerModel) refresh() {
	m.next, m.err = prayer.Next(m.timings, m.now())
}

func (m *PrayerModel) Init() tea.Cmd {
	return prayerTick()
}

func (m *PrayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case prayerTickMsg:
		m.refresh()
		return m, prayerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *PrayerModel) View() string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	contentLines := 12 + len(prayer.Order)
	topPad := (m.height - contentLines) / 2
	if topPad < 0 {
		topPad = 0
	}
	b.WriteString(strings.Repeat("\n", topPad))

	title := center.Copy().Bold(true).Foreground(ui.Gold).
		Render(fmt.Sprintf("%s  Waktu Solat · %s", ui.IconPrayer, m.place))
	b.WriteString(title + "\n\n")

	if m.err != nil {
		b.WriteString(ui.Error.Copy().Width(m.width).Align(lipgloss.Center).Render(m.err.Error()) + "\n")
		return b.String()
	}

	name := fmt.Sprintf("%s (%s)", m.next.Prayer, prayer.MalayName(m.next.Prayer))
	b.WriteString(ui.Muted.Copy().Width(m.width).Align(lipgloss.Center).Render("Next: "+name) + "\n\n")

	timer := center.Copy().Bold(true).Foreground(countdownColor(m.next.Remaining))
	b.WriteString(timer.Render(prayer.FormatCountdown(m.next.Remaining)) + "\n\n")

	for _, p := range prayer.Order {
		line := fmt.Sprintf("%-8s %-8s %8s", p, prayer.MalayName(p), prayer.Format12(m.timings[p]))
		style := ui.Muted.Copy()
		if p == m.next.Prayer {
			style = lipgloss.NewStyle().Foreground(ui.Gold).Bold(true)
			line = ui.IconArrow + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Width(m.width).Align(lipgloss.Center).Render(line) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Copy().Width(m.width).Align(lipgloss.Center).Render("q / Ctrl+C to quit") + "\n")
	return b.String()
}

func countdownColor(d time.Duration) lipgloss.Color {
	switch {
	case d <= 5*time.Minute:
		return ui.Rose
	case d <= 30*time.Minute:
		return ui.Amber
	}
	return ui.Mint
}
