package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/daily"
	"github.com/sakinahapp/sakinah/internal/quran"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var dailyCmd = &cobra.Command{
	Use:     "daily",
	Aliases: []string{"today"},
	Short:   "Today's ayah, hadith and dua",
	Long: `Show today's reminders. The hadith changes every day and the dua every
month. The ayah is fetched once a day and cached, so it also works offline
after the first fetch.`,
	RunE: wrap("daily", runDaily),
}

var dailyWatch bool

func init() {
	dailyCmd.AddCommand(dailyAyahCmd)
	dailyCmd.AddCommand(dailyHadithCmd)
	dailyCmd.AddCommand(dailyDuaCmd)

	dailyCmd.Flags().BoolVarP(&dailyWatch, "watch", "w", false, "Stay running and refresh at midnight")
}

var dailyAyahCmd = &cobra.Command{
	Use:   "ayah",
	Short: "Today's ayah",
	RunE:  wrap("daily.ayah", runDailyAyah),
}

var dailyHadithCmd = &cobra.Command{
	Use:   "hadith",
	Short: "Today's hadith",
	RunE:  wrap("daily.hadith", runDailyHadith),
}

var dailyDuaCmd = &cobra.Command{
	Use:   "dua",
	Short: "This month's dua",
	RunE:  wrap("daily.dua", runDailyDua),
}

func runDaily(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if dailyWatch {
		return watchDaily(a)
	}

	t := now()
	printAyah(a, t)
	printHadith(a.cfg.User.Language, t)
	printDua(a.cfg.User.Language, t)
	return nil
}

func runDailyAyah(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ayah, err := fetchAyah(a, now())
	if err != nil {
		return err
	}
	showAyah(ayah)
	return nil
}

func runDailyHadith(_ *cobra.Command, _ []string) error {
	printHadith(configLang(), now())
	return nil
}

func runDailyDua(_ *cobra.Command, _ []string) error {
	printDua(configLang(), now())
	return nil
}

func fetchAyah(a *app, t time.Time) (quran.Ayah, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.dailyVerse().Today(ctx, t)
}

// printAyah shows the ayah or a muted note when it cannot be fetched.
// The rest of the daily view is built in, so a failed fetch is not fatal.
func printAyah(a *app, t time.Time) {
	ayah, err := fetchAyah(a, t)
	if err != nil {
		ui.Header(ui.IconQuran + " Ayah of the day")
		fmt.Println(ui.Muted.Render("  unavailable right now: " + err.Error()))
		fmt.Println()
		return
	}
	showAyah(ayah)
}

func showAyah(ayah quran.Ayah) {
	ui.Header(ui.IconQuran + " Ayah of the day")
	fmt.Println("  " + ui.Arabic.Render(ayah.Arabic))
	fmt.Println()
	fmt.Println("  " + ayah.Malay)
	fmt.Println(ui.Muted.Render("  " + ayah.Reference()))
	fmt.Println()
}

func printHadith(lang string, t time.Time) {
	h := daily.HadithOfDay(t)
	ui.Header(ui.IconHadith + " Hadith of the day")
	fmt.Println("  " + localized(lang, h.English, h.Malay))
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %s · %s", h.Narrator, h.Source)))
	fmt.Println()
}

func printDua(lang string, t time.Time) {
	d := daily.DuaOfDay(t)
	ui.Header(ui.IconDua + " Dua of the month")
	fmt.Println("  " + ui.Accent.Render(d.Title))
	fmt.Println("  " + ui.Subtitle.Render(d.Transliteration))
	fmt.Println("  " + localized(lang, d.English, d.Malay))
	fmt.Println(ui.Muted.Render("  " + d.Source))
	fmt.Println()
}

// watchDaily keeps the process alive, rolling the cached picks over at
// local midnight and reprinting the reminders.
func watchDaily(a *app) error {
	sched := daily.NewScheduler(time.Local, a.log)
	sched.Register("ayah", a.dailyVerse())
	if st, err := a.prayerState(""); err == nil {
		sched.Register("prayer", a.prayerTimes(st))
	}
	sched.OnRefresh(func(t time.Time) {
		printAyah(a, t)
		printHadith(a.cfg.User.Language, t)
		printDua(a.cfg.User.Language, t)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sched.Refresh(ctx); err != nil {
		ui.Warn(err.Error())
	}
	t := time.Now()
	printAyah(a, t)
	printHadith(a.cfg.User.Language, t)
	printDua(a.cfg.User.Language, t)

	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	ui.Inf("Watching. Refreshes at midnight. Ctrl+C to stop.")
	<-ctx.Done()
	fmt.Println()
	return nil
}

// configLang returns the configured language, English if config is unreadable.
func configLang() string {
	cfg, err := config.Load()
	if err != nil {
		return "en"
	}
	return cfg.User.Language
}
