package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Activity statistics and streaks",
	Long: `Show how often you have shown up. A day counts when you wrote a journal
entry, logged a mood or sent a chat message on it. Replies from the
companion never count.

A streak survives one missed day: if you have not been active yet today,
yesterday's streak still stands.`,
	RunE: wrap("stats", runStats),
}

var statsSource string

func init() {
	statsCmd.Flags().StringVarP(&statsSource, "source", "s", "all", "Which activity to count: journal, mood, chat or all")
}

// parseSources maps the --source flag onto activity sources.
func parseSources(s string) ([]activity.Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return []activity.Source{activity.SourceJournal, activity.SourceMood, activity.SourceChat}, nil
	case "journal":
		return []activity.Source{activity.SourceJournal}, nil
	case "mood":
		return []activity.Source{activity.SourceMood}, nil
	case "chat":
		return []activity.Source{activity.SourceChat}, nil
	}
	return nil, fmt.Errorf("unknown source %q (use journal, mood, chat or all)", s)
}

func runStats(_ *cobra.Command, _ []string) error {
	sources, err := parseSources(statsSource)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	recs, err := a.records(sources...)
	if err != nil {
		return err
	}

	t := now()
	sum := activity.Summarize(recs, t)

	ui.Header(ui.IconStar + " Activity")
	if sum.Total == 0 {
		fmt.Println(ui.Muted.Render("  Nothing recorded yet."))
		ui.Tip(`sakinah journal add "Bismillah"`)
		fmt.Println()
		return nil
	}

	streak := fmt.Sprintf("%d", sum.Streak)
	if sum.Streak > 0 {
		streak = ui.IconFire + " " + streak
	}
	ui.Kv("Current streak", streak+" "+plural(sum.Streak, "day"))
	ui.Kv("Longest streak", fmt.Sprintf("%d %s", sum.LongestStreak, plural(sum.LongestStreak, "day")))
	ui.Kv("Days active", fmt.Sprintf("%d", sum.DaysActive))
	ui.Kv("This week", fmt.Sprintf("%d", sum.ThisWeek))
	ui.Kv("This month", fmt.Sprintf("%d", sum.ThisMonth))
	ui.Kv("Total", fmt.Sprintf("%d", sum.Total))
	if sum.First != nil {
		ui.Kv("Since", sum.First.In(t.Location()).Format("2 Jan 2006"))
	}
	fmt.Println()

	buckets := activity.GroupByDay(recs, t, activity.LabelsFor(a.cfg.User.Language))
	if len(buckets) > 7 {
		buckets = buckets[:7]
	}
	for _, b := range buckets {
		fmt.Printf("  %-22s %s %d\n", b.Label, ui.Success.Render(strings.Repeat("▪", min(b.Count(), 30))), b.Count())
	}
	fmt.Println()
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
