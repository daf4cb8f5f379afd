package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/mood"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log how you feel and see your week",
	Long: `Log one mood per day on a 1-5 scale. Logging again the same day replaces it.

Running 'sakinah mood' with no subcommand shows the past seven days.`,
	RunE: wrap("mood.week", runMoodWeek),
}

func init() {
	moodCmd.AddCommand(moodLogCmd)
	moodCmd.AddCommand(moodWeekCmd)
}

var moodLogCmd = &cobra.Command{
	Use:   "log <1-5>",
	Short: "Log today's mood (1 very bad, 5 very good)",
	Args:  cobra.ExactArgs(1),
	RunE:  wrap("mood.log", runMoodLog),
}

var moodWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the past seven days",
	RunE:  wrap("mood.week", runMoodWeek),
}

func runMoodLog(_ *cobra.Command, args []string) error {
	score, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w (got %q)", mood.ErrInvalidScore, args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := a.moods().Log(a.userID(), score, now())
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Logged %s %s for %s", moodEmoji(e.Score), mood.Labels[e.Score], e.Day))
	return nil
}

func runMoodWeek(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	week, err := a.moods().Week(a.userID(), now())
	if err != nil {
		return err
	}

	ui.Header(ui.IconMood + "This week")
	logged := 0
	for _, d := range week {
		day := d.Date.Format("Mon 2 Jan")
		if d.Score == 0 {
			fmt.Printf("  %s  %s\n", ui.Muted.Render(day), ui.Muted.Render("·"))
			continue
		}
		logged++
		bar := strings.Repeat("█", d.Score*2)
		fmt.Printf("  %s  %s %s %s\n", ui.KeyStyle.Render(day), moodEmoji(d.Score), ui.Success.Render(bar), ui.Muted.Render(mood.Labels[d.Score]))
	}
	fmt.Println()

	if logged == 0 {
		fmt.Println(ui.Muted.Render("  Nothing logged this week."))
		ui.Tip("sakinah mood log 4")
		fmt.Println()
		return nil
	}

	avg := mood.Average(week)
	ui.Kv("Average", fmt.Sprintf("%.1f / %d", avg, mood.MaxScore))
	fmt.Println()

	v := mood.VerseFor(avg)
	fmt.Println(ui.Subtitle.Render("  " + ui.IconQuran + " " + localized(a.cfg.User.Language, v.ThemeEN, v.ThemeBM)))
	fmt.Println("  " + ui.Arabic.Render(v.Arabic))
	fmt.Println("  " + localized(a.cfg.User.Language, v.English, v.Malay))
	fmt.Println(ui.Muted.Render("  " + v.Reference))
	fmt.Println()
	return nil
}

// moodEmoji returns the face for a score, or a dot when there is none.
func moodEmoji(score int) string {
	if score < 0 || score >= len(mood.Emoji) {
		return mood.Emoji[0]
	}
	return mood.Emoji[score]
}
