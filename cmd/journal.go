package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/journal"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Write and browse your journal",
	Long: `Keep a private journal. Entries stay on this machine.

Running 'sakinah journal' with no subcommand lists recent entries.`,
	RunE: wrap("journal.list", runJournalList),
}

var (
	journalTitle string
	journalMood  int
	journalTags  string
	journalLimit int
	journalYes   bool
)

func init() {
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDaysCmd)
	journalCmd.AddCommand(journalEditCmd)
	journalCmd.AddCommand(journalRmCmd)
	journalCmd.AddCommand(journalSearchCmd)
	journalCmd.AddCommand(journalClearCmd)

	for _, c := range []*cobra.Command{journalAddCmd, journalEditCmd} {
		c.Flags().StringVarP(&journalTitle, "title", "T", "", "Entry title")
		c.Flags().IntVarP(&journalMood, "mood", "m", 0, "Mood 1-5 (0 for none)")
		c.Flags().StringVarP(&journalTags, "tags", "t", "", "Comma-separated tags")
	}
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "Number of entries to show")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "Number of entries to show (0 for all)")
	journalDaysCmd.Flags().IntVarP(&journalLimit, "limit", "n", 7, "Number of days to show (0 for all)")
	journalClearCmd.Flags().BoolVarP(&journalYes, "yes", "y", false, "Skip confirmation")
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Write a new entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  wrap("journal.add", runJournalAdd),
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent entries, newest first",
	RunE:    wrap("journal.list", runJournalList),
}

var journalDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "Show entries grouped by day",
	RunE:  wrap("journal.days", runJournalDays),
}

var journalEditCmd = &cobra.Command{
	Use:   "edit <id> [new text]",
	Short: "Edit an entry's text, title, mood or tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  wrap("journal.edit", runJournalEdit),
}

var journalRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an entry",
	Args:    cobra.ExactArgs(1),
	RunE:    wrap("journal.rm", runJournalRm),
}

var journalSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find entries by title, text or tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  wrap("journal.search", runJournalSearch),
}

var journalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every journal entry",
	RunE:  wrap("journal.clear", runJournalClear),
}

func runJournalAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := a.journal().Add(a.userID(), journalTitle, strings.Join(args, " "), journalMood, journal.ParseTags(journalTags))
	if err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Saved entry %s", ui.Muted.Render(shortID(e.ID))))

	recs, err := a.records(activity.SourceJournal)
	if err == nil {
		if streak := activity.Streak(activity.ActiveDays(recs, nil), now()); streak > 1 {
			fmt.Printf("  %s %d-day streak. Keep going!\n", ui.IconFire, streak)
		}
	}
	return nil
}

func runJournalList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.journal().List(a.userID(), journalLimit, 0)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No entries yet."))
		ui.Tip(`sakinah journal add "Alhamdulillah for..."`)
		fmt.Println()
		return nil
	}

	fmt.Println()
	for _, e := range entries {
		printEntry(e)
	}
	return nil
}

func runJournalDays(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.journal().List(a.userID(), 0, 0)
	if err != nil {
		return err
	}
	byID := make(map[string]journal.Entry, len(entries))
	recs := make([]activity.Record, 0, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
		recs = append(recs, activity.Record{ID: e.ID, Source: activity.SourceJournal, Author: activity.AuthorUser, At: e.CreatedAt})
	}

	buckets := activity.GroupByDay(recs, now(), activity.LabelsFor(a.cfg.User.Language))
	if journalLimit > 0 && len(buckets) > journalLimit {
		buckets = buckets[:journalLimit]
	}
	if len(buckets) == 0 {
		fmt.Println(ui.Muted.Render("  No entries yet."))
		return nil
	}

	for _, b := range buckets {
		ui.Header(fmt.Sprintf("%s · %d", b.Label, b.Count()))
		for _, r := range b.Records {
			e := byID[r.ID]
			fmt.Printf("  %s %s %s\n", ui.Muted.Render(e.CreatedAt.Local().Format("15:04")), moodEmoji(e.Mood), firstLine(entryText(e), 70))
		}
	}
	fmt.Println()
	return nil
}

func runJournalEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	js := a.journal()
	e, err := js.Get(args[0])
	if err != nil {
		return err
	}

	content := e.Content
	if len(args) > 1 {
		content = strings.Join(args[1:], " ")
	}
	title, mood, tags := e.Title, e.Mood, e.Tags
	if cmd.Flags().Changed("title") {
		title = journalTitle
	}
	if cmd.Flags().Changed("mood") {
		mood = journalMood
	}
	if cmd.Flags().Changed("tags") {
		tags = journal.ParseTags(journalTags)
	}

	if err := js.Update(e.ID, title, content, mood, tags); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Updated entry %s", ui.Muted.Render(shortID(e.ID))))
	return nil
}

func runJournalRm(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	js := a.journal()
	e, err := js.Get(args[0])
	if err != nil {
		return err
	}
	if err := js.Delete(e.ID); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted entry %s", ui.Muted.Render(shortID(e.ID))))
	return nil
}

func runJournalSearch(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	q := strings.Join(args, " ")
	entries, err := a.journal().Search(a.userID(), q)
	if err != nil {
		return err
	}
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println(ui.Muted.Render(fmt.Sprintf("  Nothing matches %q.", q)))
		fmt.Println()
		return nil
	}
	for _, e := range entries {
		printEntry(e)
	}
	return nil
}

func runJournalClear(_ *cobra.Command, _ []string) error {
	if !journalYes && !confirm(bufio.NewReader(os.Stdin), "  Delete every journal entry? This cannot be undone.") {
		ui.Inf("Nothing deleted.")
		return nil
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.journal().DeleteAll(a.userID())
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted %d entries", n))
	return nil
}

func printEntry(e journal.Entry) {
	head := ui.Muted.Render(shortID(e.ID)) + "  " + ui.KeyStyle.Render(e.CreatedAt.Local().Format("Mon 2 Jan 15:04"))
	if e.Mood > 0 {
		head += "  " + moodEmoji(e.Mood)
	}
	fmt.Println("  " + head)
	if e.Title != "" {
		fmt.Println("  " + ui.Accent.Render(e.Title))
	}
	fmt.Println("  " + firstLine(e.Content, 100))
	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		for i, t := range e.Tags {
			tags[i] = "#" + t
		}
		fmt.Println("  " + ui.Muted.Render(strings.Join(tags, " ")))
	}
	fmt.Println()
}

func entryText(e journal.Entry) string {
	if e.Title != "" {
		return e.Title
	}
	return e.Content
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// firstLine returns the first line of s, cut to max runes.
func firstLine(s string, max int) string {
	s, _, _ = strings.Cut(s, "\n")
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}

func confirm(reader *bufio.Reader, question string) bool {
	fmt.Printf("%s %s ", question, ui.Muted.Render("(y/N)"))
	input, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	return false
}
