package cmd

import (
	"fmt"

	"github.com/iksnae/legalchat/internal"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new chat session",
	Long:  `Create a fresh session with a welcome message and make it current.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		id := store.CreateSession()
		fmt.Fprintf(cmd.OutOrStdout(), "Created session %s\n", id)
		return nil
	},
}

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch <session-id>",
	Short: "Make another session current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if store.Session(args[0]) == nil {
			return fmt.Errorf("unknown session: %s", args[0])
		}
		store.SwitchTo(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to session %s\n", args[0])
		return nil
	},
}

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <session-id> <title>",
	Short: "Rename a session",
	Long:  `Overwrite a session's title. A renamed session keeps its title; it will not be auto-titled again.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if store.Session(args[0]) == nil {
			return fmt.Errorf("unknown session: %s", args[0])
		}
		store.RenameSession(args[0], args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed session %s\n", args[0])
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Long:  `Remove a session and its messages. Deleting the last remaining session creates a fresh one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if store.Session(args[0]) == nil {
			return fmt.Errorf("unknown session: %s", args[0])
		}
		store.DeleteSession(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all sessions",
	Long:  `Wipe the entire chat history and start over with a single fresh session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		store.ClearAll()
		fmt.Fprintf(cmd.OutOrStdout(), "History cleared, new session %s\n", store.CurrentSessionID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
