package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/legalchat/internal"
	"github.com/spf13/cobra"
)

var chatSessionID string

var (
	// Styles for chat rendering
	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true)

	errorBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	chatTimestampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	lawyerCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			PaddingLeft(2)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat turn loop",
	Long: `Chat with the legal-assistance AI.

Continues the current session by default; use --session to pick another.
Type your message and press enter. Type "exit" or "quit" (or press Ctrl-D)
to leave. Assistant replies that embed lawyer referrals are shown with a
suggestions list under the message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if chatSessionID != "" {
			if store.Session(chatSessionID) == nil {
				return fmt.Errorf("unknown session: %s", chatSessionID)
			}
			store.SwitchTo(chatSessionID)
		}

		client := internal.NewHTTPAnswerClient(cfg)
		controller := internal.NewController(store, client, func() {
			time.Sleep(cfg.ResponseDelay)
		})

		out := cmd.OutOrStdout()
		session := store.CurrentSession()
		fmt.Fprintf(out, "%s\n\n", promptStyle.Render(session.Title))
		for _, msg := range session.Messages {
			renderMessage(out, msg)
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		fmt.Fprint(out, promptStyle.Render("> "))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "exit" || line == "quit" {
				break
			}
			if line != "" {
				before := len(store.CurrentSession().Messages)
				controller.SendMessage(context.Background(), line)
				for _, msg := range store.CurrentSession().Messages[before:] {
					renderMessage(out, msg)
				}
			}
			fmt.Fprint(out, promptStyle.Render("> "))
		}
		fmt.Fprintln(out)
		return scanner.Err()
	},
}

// renderMessage prints one chat bubble, including any referral suggestions.
func renderMessage(w io.Writer, msg internal.Message) {
	label := assistantLabelStyle.Render("Assistant")
	if msg.IsUser {
		label = userLabelStyle.Render("You")
	}

	content := msg.Content
	if msg.Error {
		content = errorBubbleStyle.Render(content)
	}

	fmt.Fprintf(w, "%s %s\n%s\n", label, chatTimestampStyle.Render(msg.Timestamp), content)

	if len(msg.Lawyers) > 0 {
		fmt.Fprintln(w, lawyerCardStyle.Render("Suggested lawyers:"))
		for _, lawyer := range msg.Lawyers {
			fmt.Fprintln(w, lawyerCardStyle.Render(
				fmt.Sprintf("%s (%s) %s", lawyer.Name, lawyer.Place, lawyer.Link),
			))
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&chatSessionID, "session", "", "Session ID to continue (defaults to the current session)")
}
