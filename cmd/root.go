package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/legalchat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "legalchat",
	Short: "Chat with a legal-assistance AI from your terminal",
	Long: `A CLI client for a legal-assistance AI service.

legalchat keeps a durable, ordered history of chat sessions on your machine,
talks to the remote answer endpoint for you, and surfaces lawyer referrals
the assistant embeds in its replies.

Quick Start:
  legalchat chat                      # Start (or continue) a conversation
  legalchat list                      # List all sessions
  legalchat show <session-id>         # View a session's messages
  legalchat export --format md        # Export sessions as Markdown

Configuration is read from the environment (and a local .env file):
  LEGALCHAT_ANSWER_URL, LEGALCHAT_TIMEOUT_SECONDS,
  LEGALCHAT_RESPONSE_DELAY_MS, LEGALCHAT_DB`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Custom history database location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the history database and loads the session store.
// The returned cleanup closes the database.
func openStore(cfg internal.Config) (*internal.HistoryStore, func(), error) {
	path := dbPath
	if path == "" {
		path = cfg.DatabasePath
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}

	kv, err := internal.NewSQLiteKV(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	store := internal.NewHistoryStore(kv)
	cleanup := func() { _ = db.Close() }
	return store, cleanup, nil
}
