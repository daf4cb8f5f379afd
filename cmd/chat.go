package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sakinahapp/sakinah/internal/ai"
	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk with your companion",
	Long: `Send a message to the companion. Past messages are kept locally and
sent back as context so the conversation carries on.

The companion needs a Gemini API key. Set one with 'sakinah chat key set'
or export GEMINI_API_KEY.`,
	RunE: wrap("chat", runChat),
}

var (
	chatRaw     bool
	chatPersona string
	chatLimit   int
	chatYes     bool
)

func init() {
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatClearCmd)
	chatCmd.AddCommand(chatPersonasCmd)
	chatCmd.AddCommand(chatKeyCmd)
	chatKeyCmd.AddCommand(chatKeySetCmd)
	chatKeyCmd.AddCommand(chatKeyRmCmd)

	chatCmd.Flags().BoolVar(&chatRaw, "raw", false, "Print the reply without markdown rendering")
	chatCmd.Flags().StringVarP(&chatPersona, "persona", "p", "", "Persona for this message (overrides chat.persona)")
	chatHistoryCmd.Flags().IntVarP(&chatLimit, "limit", "n", 20, "Number of messages to show (0 for all)")
	chatClearCmd.Flags().BoolVarP(&chatYes, "yes", "y", false, "Skip confirmation")
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent messages",
	RunE:  wrap("chat.history", runChatHistory),
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the conversation",
	RunE:  wrap("chat.clear", runChatClear),
}

var chatPersonasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List companion personas",
	RunE:  wrap("chat.personas", runChatPersonas),
}

var chatKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the encrypted API key",
}

var chatKeySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a Gemini API key (read from the terminal, never echoed)",
	RunE:  wrap("chat.key.set", runChatKeySet),
}

var chatKeyRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove the stored Gemini API key",
	RunE:  wrap("chat.key.rm", runChatKeyRm),
}

func runChat(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return cmd.Help()
		}
		// Piped input: `echo hi | sakinah chat`.
		data, err := readAllStdin()
		if err != nil {
			return err
		}
		text = strings.TrimSpace(data)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.chatSession()
	if err != nil {
		return err
	}
	if chatPersona != "" {
		session.Persona = ai.Persona(chatPersona)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println()
	fmt.Println(ui.Muted.Render("  " + session.Persona.Emoji + " " + localized(a.cfg.User.Language, session.Persona.LabelEN, session.Persona.LabelBM)))
	fmt.Println()

	if !a.cfg.Chat.IsStreaming() {
		reply, err := session.Send(ctx, a.userID(), text, nil)
		if err != nil {
			return err
		}
		if chatRaw {
			fmt.Println(reply.Content)
		} else {
			fmt.Print(ui.RenderMarkdown(reply.Content))
		}
		return nil
	}

	mw := ui.NewMarkdownWriter(os.Stdout, chatRaw)
	if mw.Buffering() {
		fmt.Print(ui.Muted.Render("  thinking…"))
	}
	_, err = session.Send(ctx, a.userID(), text, mw)
	if mw.Buffering() {
		fmt.Print("\r\033[K")
	}
	if err != nil {
		return err
	}
	if err := mw.Flush(); err != nil {
		return err
	}
	if !mw.Buffering() {
		fmt.Println()
	}
	return nil
}

func runChatHistory(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	msgs, err := a.chats().Last(a.userID(), chatLimit)
	if chatLimit <= 0 {
		msgs, err = a.chats().History(a.userID())
	}
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Println(ui.Muted.Render("  No messages yet."))
		ui.Tip(`sakinah chat "Assalamualaikum"`)
		return nil
	}

	fmt.Println()
	for _, m := range msgs {
		who := ui.Accent.Render("you")
		if m.Role == ai.RoleAssistant {
			who = ui.Success.Render("sakinah")
		}
		fmt.Printf("  %s %s\n", who, ui.Muted.Render(m.CreatedAt.Local().Format("Mon 2 Jan 15:04")))
		for _, line := range strings.Split(strings.TrimSpace(m.Content), "\n") {
			fmt.Println("    " + line)
		}
		fmt.Println()
	}
	return nil
}

func runChatClear(_ *cobra.Command, _ []string) error {
	if !chatYes && !confirm(bufio.NewReader(os.Stdin), "  Forget the whole conversation?") {
		ui.Inf("Nothing deleted.")
		return nil
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.chats().Clear(a.userID())
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted %d messages", n))
	return nil
}

func runChatPersonas(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ui.Header("Personas")
	for _, p := range ai.Personas() {
		marker := "  "
		if p.Key == ai.Persona(cfg.Chat.Persona).Key {
			marker = ui.Success.Render(ui.IconArrow)
		}
		fmt.Printf("  %s %s %s  %s\n", marker, p.Emoji, ui.KeyStyle.Render(fmt.Sprintf("%-10s", p.Key)),
			localized(cfg.User.Language, p.LabelEN, p.LabelBM))
	}
	fmt.Println()
	ui.Tip("sakinah config set chat.persona ustaz")
	fmt.Println()
	return nil
}

func runChatKeySet(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdin.Fd())
	var key string
	if term.IsTerminal(fd) {
		fmt.Print("  Gemini API key: ")
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		key = string(b)
	} else {
		data, err := readAllStdin()
		if err != nil {
			return err
		}
		key = data
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("no key given")
	}
	if err := ai.NewKeystore().Set("gemini", key); err != nil {
		return err
	}
	ui.Ok("Key saved " + ui.Muted.Render("(encrypted)"))
	return nil
}

func runChatKeyRm(_ *cobra.Command, _ []string) error {
	if err := ai.NewKeystore().Delete("gemini"); err != nil {
		return err
	}
	ui.Ok("Key removed")
	return nil
}

func readAllStdin() (string, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		sb.WriteString(sc.Text())
		sb.WriteByte('\n')
	}
	return sb.String(), sc.Err()
}
