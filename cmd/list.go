package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/legalchat/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	currentMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chat sessions",
	Long:  `List all chat sessions, most recently created first. The current session is marked with an asterisk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		displaySessions(cmd, store.Sessions(), store.CurrentSessionID())
		return nil
	},
}

// displaySessions renders the session table.
func displaySessions(cmd *cobra.Command, sessions []*internal.ChatSession, currentID string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Sessions (%d)", len(sessions))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tTITLE\tID\tMESSAGES\tUPDATED")
	for _, session := range sessions {
		mark := " "
		if session.ID == currentID {
			mark = currentMarkStyle.Render("*")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			mark,
			titleStyle.Render(session.Title),
			idStyle.Render(session.ID),
			countStyle.Render(fmt.Sprintf("%d", len(session.Messages))),
			dateStyle.Render(formatUpdatedAt(session.UpdatedAt)),
		)
	}
	_ = w.Flush()
}

// formatUpdatedAt renders a stored RFC3339 timestamp for display; values
// that fail to parse are shown as-is.
func formatUpdatedAt(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Local().Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(listCmd)
}
