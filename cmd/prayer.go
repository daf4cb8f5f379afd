package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/prayer"
	"github.com/sakinahapp/sakinah/internal/tui"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var prayerCmd = &cobra.Command{
	Use:     "prayer",
	Aliases: []string{"solat"},
	Short:   "Prayer times and the next prayer",
	Long: `Show today's prayer times for your state, fetched from Aladhan and
cached for the day.

Use --live for a full-screen countdown to the next prayer.`,
	RunE: wrap("prayer", runPrayer),
}

var (
	prayerStateFlag string
	prayerLive      bool
)

func init() {
	prayerCmd.AddCommand(prayerStatesCmd)

	prayerCmd.Flags().StringVarP(&prayerStateFlag, "state", "s", "", "State to show (overrides prayer.state)")
	prayerCmd.Flags().BoolVarP(&prayerLive, "live", "l", false, "Full-screen live countdown")
}

var prayerStatesCmd = &cobra.Command{
	Use:   "states",
	Short: "List supported states",
	RunE:  wrap("prayer.states", runPrayerStates),
}

func runPrayer(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	st, err := a.prayerState(prayerStateFlag)
	if err != nil {
		return err
	}

	t := now()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	timings, err := a.prayerTimes(st).Today(ctx, t)
	cancel()
	if err != nil {
		return fmt.Errorf("prayer times for %s: %w", st.Name, err)
	}

	if prayerLive && tui.IsTTY() {
		return tui.RunPrayer(st.Name, timings)
	}

	next, nextErr := prayer.Next(timings, t)

	ui.Header(fmt.Sprintf("%s Waktu Solat · %s", ui.IconPrayer, st.Name))
	fmt.Println(ui.Muted.Render("  " + t.Format("Monday, 2 January 2006")))
	fmt.Println()
	for _, p := range prayer.Order {
		name := fmt.Sprintf("%-8s %-8s", p, prayer.MalayName(p))
		line := fmt.Sprintf("  %s %s", ui.KeyStyle.Render(name), prayer.Format12(timings[p]))
		if nextErr == nil && next.Prayer == p && sameDay(next.At, t) {
			line += "  " + ui.Success.Render(ui.IconArrow+" in "+prayer.FormatCountdown(next.Remaining))
		}
		fmt.Println(line)
	}
	fmt.Println()
	if nextErr == nil && !sameDay(next.At, t) {
		ui.Inf(fmt.Sprintf("Next: %s tomorrow, in %s", next.Prayer, prayer.FormatCountdown(next.Remaining)))
		fmt.Println()
	}
	return nil
}

func runPrayerStates(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ui.Header("States")
	for _, st := range prayer.States() {
		marker := "  "
		if st.Name == cfg.Prayer.State {
			marker = ui.Success.Render(ui.IconArrow)
		}
		fmt.Printf("  %s %-18s %s\n", marker, st.Name, ui.Muted.Render(fmt.Sprintf("%.4f, %.4f", st.Latitude, st.Longitude)))
	}
	fmt.Println()
	ui.Tip(`sakinah config set prayer.state "Pulau Pinang"`)
	fmt.Println()
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
