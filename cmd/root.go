package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/fault"
	"github.com/sakinahapp/sakinah/internal/prayer"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "sakinah",
	Short: "A calm companion for journaling, mood, prayer and daily reminders",
	Long:  `sakinah · a quiet place for your journal, your mood, your prayers and a daily reminder.`,
	RunE:  wrap("dashboard", runDashboard),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		if fault.IsUpstream(err) {
			ui.Tip("the service may be busy. Try again in a moment.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Var(&asOf, "date", "View as of a day (YYYY-MM-DD)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(prayerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runDashboard shows the at-a-glance view when you just type `sakinah`.
func runDashboard(_ *cobra.Command, _ []string) error {
	if !config.Initialized() {
		fmt.Println(ui.Greet("", "en", time.Now()))
		fmt.Println()
		fmt.Println("  Looks like this is your first time here.")
		fmt.Println()
		fmt.Printf("  Run %s to get started.\n", ui.Accent.Render("sakinah init"))
		fmt.Println()
		return nil
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	t := now()
	fmt.Println(ui.Greet(a.cfg.User.Name, a.cfg.User.Language, t))
	fmt.Println()

	// Journal streak
	recs, err := a.records(activity.SourceJournal)
	if err != nil {
		return err
	}
	sum := activity.Summarize(recs, t)
	streak := fmt.Sprintf("%d day", sum.Streak)
	if sum.Streak != 1 {
		streak += "s"
	}
	if sum.Streak > 0 {
		streak = ui.IconFire + " " + streak
	}
	ui.Kv(ui.IconJournal+" Streak", streak)
	ui.Kv("   Entries", fmt.Sprintf("%d this week · %d total", sum.ThisWeek, sum.Total))

	// Mood
	if m, err := a.moods().Today(a.userID(), t); err == nil && m != nil {
		ui.Kv(ui.IconMood+"Mood", fmt.Sprintf("%s %d/5", moodEmoji(m.Score), m.Score))
	}

	// Next prayer
	if st, err := a.prayerState(""); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		timings, err := a.prayerTimes(st).Today(ctx, t)
		cancel()
		if err != nil {
			ui.Kv(ui.IconPrayer+" Prayer", ui.Muted.Render("unavailable offline"))
		} else if next, err := prayer.Next(timings, t); err == nil {
			ui.Kv(ui.IconPrayer+" Next", fmt.Sprintf("%s (%s) at %s, in %s",
				next.Prayer, prayer.MalayName(next.Prayer), next.At.Format("15:04"), prayer.FormatCountdown(next.Remaining)))
		}
	}

	// Hadith
	h := daily.HadithOfDay(t)
	fmt.Println()
	fmt.Println(ui.Subtitle.Render("  " + ui.IconHadith + " Hadith of the day"))
	fmt.Println("  " + localized(a.cfg.User.Language, h.English, h.Malay))
	fmt.Println(ui.Muted.Render("  " + h.Source))

	ui.Tip(daily.TipOfDay(t))
	fmt.Println()
	return nil
}

func localized(lang, en, ms string) string {
	if lang == "ms" && ms != "" {
		return ms
	}
	return en
}
