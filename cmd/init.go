package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/prayer"
	"github.com/sakinahapp/sakinah/internal/store"
	"github.com/sakinahapp/sakinah/internal/tui"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up sakinah for the first time",
	Long:  `Set your name, language and state. Creates the config file and the local database.`,
	RunE:  wrap("init", runInit),
}

func runInit(_ *cobra.Command, _ []string) error {
	var pick statePicker
	if tui.IsTTY() {
		pick = pickStateTUI
	}
	return runInitWithReader(bufio.NewReader(os.Stdin), pick)
}

// statePicker chooses a state interactively. nil means prompt by name.
type statePicker func() (prayer.State, bool, error)

func runInitWithReader(reader *bufio.Reader, pick statePicker) error {
	fmt.Println(ui.Title.Render(ui.IconMoon + "Welcome to sakinah"))
	fmt.Println()
	ui.Inf("A few questions and you're set.")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.User.Name = prompt(reader, "  What should I call you?", firstNonEmpty(cfg.User.Name, guessName()))

	lang := strings.ToLower(prompt(reader, "  Language for labels (en/ms)?", cfg.User.Language))
	if lang != "en" && lang != "ms" {
		ui.Warn(fmt.Sprintf("Unknown language %q, using en.", lang))
		lang = "en"
	}
	cfg.User.Language = lang
	fmt.Println()

	st, err := chooseState(reader, pick, cfg.Prayer.State)
	if err != nil {
		return err
	}
	cfg.Prayer.State = st.Name

	if cfg.User.ID == "" {
		cfg.User.ID = uuid.NewString()
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	db.Close()

	paths := config.GetPaths()
	fmt.Println()
	ui.Ok("All set.")
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	ui.Kv("State", cfg.Prayer.State)
	ui.Tip(fmt.Sprintf("write your first entry with %s", ui.Accent.Render(`sakinah journal add "..."`)))
	fmt.Println()
	return nil
}

func chooseState(reader *bufio.Reader, pick statePicker, current string) (prayer.State, error) {
	if pick != nil {
		st, ok, err := pick()
		if err != nil {
			return prayer.State{}, err
		}
		if ok {
			return st, nil
		}
	}

	for {
		name := prompt(reader, "  Which state are you in?", current)
		if st, ok := prayer.Lookup(name); ok {
			return st, nil
		}
		ui.Warn(fmt.Sprintf("Unknown state %q. Try one of: %s", name, stateNames()))
		// On EOF the default is all we can use.
		if _, err := reader.Peek(1); err != nil {
			st, _ := prayer.Lookup(config.Default().Prayer.State)
			return st, nil
		}
	}
}

func pickStateTUI() (prayer.State, bool, error) {
	states := prayer.States()
	choices := make([]tui.Choice, len(states))
	for i, s := range states {
		choices[i] = tui.Choice{Title: s.Name, Detail: fmt.Sprintf("%.2f, %.2f", s.Latitude, s.Longitude)}
	}
	idx, err := tui.Pick("Which state are you in?", choices)
	if err != nil || idx < 0 {
		return prayer.State{}, false, err
	}
	return states[idx], true, nil
}

func stateNames() string {
	states := prayer.States()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// prompt asks a question with a default and returns the trimmed answer.
func prompt(reader *bufio.Reader, question, def string) string {
	if def != "" {
		fmt.Printf("%s %s ", question, ui.Muted.Render("("+def+")"))
	} else {
		fmt.Printf("%s ", question)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return def
	}
	return input
}

func guessName() string {
	if u, err := user.Current(); err == nil {
		if f := strings.Fields(u.Name); len(f) > 0 {
			return f[0]
		}
		return u.Username
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
