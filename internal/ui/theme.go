package ui

import "github.com/charmbracelet/lipgloss"

// sakinah's palette: mosque green, lantern gold, sand and night.
var (
	Gold   = lipgloss.Color("#C9A96E")
	Sand   = lipgloss.Color("#E8D9B5")
	Green  = lipgloss.Color("#2E8B57")
	Mint   = lipgloss.Color("#7FD1AE")
	Night  = lipgloss.Color("#1B2A3A")
	Rose   = lipgloss.Color("#D1495B")
	Amber  = lipgloss.Color("#E0A458")
	Sky    = lipgloss.Color("#5DA9E9")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")
	Subtle = lipgloss.Color("#AAAAAA")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	Subtitle = lipgloss.NewStyle().
			Foreground(Sand)

	Success = lipgloss.NewStyle().
		Foreground(Mint)

	Error = lipgloss.NewStyle().
		Foreground(Rose)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	// Arabic text is set apart so it never blends into translations.
	Arabic = lipgloss.NewStyle().
		Foreground(Sand).
		Bold(true)

	// Component styles
	Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Green).
		Padding(0, 1)

	Tag = lipgloss.NewStyle().
		Foreground(Bright).
		Background(Green).
		Padding(0, 1).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconMoon    = "☪ "
	IconJournal = "📓"
	IconMood    = "🌤 "
	IconChat    = "💬"
	IconQuran   = "📖"
	IconHadith  = "📜"
	IconDua     = "🤲"
	IconPrayer  = "🕌"
	IconClock   = "⏰"
	IconKey     = "🔑"
	IconTip     = "💡"
	IconFire    = "🔥"
	IconStar    = "⭐"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)
