package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/legalchat/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show messages for a session",
	Long:  `Display the messages of a chat session. Without an argument the current session is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		var session *internal.ChatSession
		if len(args) == 1 {
			session = store.Session(args[0])
			if session == nil {
				return fmt.Errorf("unknown session: %s", args[0])
			}
		} else {
			session = store.CurrentSession()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sessionHeaderStyle.Render(session.Title))
		fmt.Fprintln(out, sessionMetaStyle.Render(
			fmt.Sprintf("%s · %d message(s) · updated %s",
				session.ID, len(session.Messages), formatUpdatedAt(session.UpdatedAt)),
		))

		for _, msg := range session.Messages {
			renderMessage(out, msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
