package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/legalchat/internal"
	"github.com/iksnae/legalchat/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	sessionID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

All sessions are exported by default; use --session to export a single one.
Use 'legalchat list' to see available session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := internal.LoadConfig()

		store, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		sessions := store.Sessions()
		if sessionID != "" {
			session := store.Session(sessionID)
			if session == nil {
				return fmt.Errorf("unknown session: %s", sessionID)
			}
			sessions = []*internal.ChatSession{session}
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for _, session := range sessions {
			path := filepath.Join(outputDir, exportFileName(session, exporter.Extension()))
			if err := writeExport(exporter, session, path); err != nil {
				return err
			}
			internal.LogInfo("Exported %s to %s", session.ID, path)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d session(s) to %s\n", len(sessions), outputDir)
		return nil
	},
}

func writeExport(exporter export.Exporter, session *internal.ChatSession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(session, f); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}

// exportFileName builds a filesystem-safe file name from the session title
// and id.
func exportFileName(session *internal.ChatSession, ext string) string {
	slug := strings.ToLower(session.Title)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "session"
	}
	return fmt.Sprintf("%s-%s.%s", slug, session.ID, ext)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	exportCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Export a single session by ID")
}
