package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Its-donkey/ai-directory/logging"
)

// logFile is the name newLogger writes under log_dir.
const logFile = "site.log"

func newLogsCmd(root *rootOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the newest entries from the site log file",
		Long: `Prints the newest entries written to log_dir/site.log by serve and dev,
oldest first. Requires log_dir to be configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cfg.LogDir == "" {
				return fmt.Errorf("log_dir is not configured")
			}
			entries, err := logging.ReadRecent(filepath.Join(cfg.LogDir, logFile), count)
			if err != nil {
				return fmt.Errorf("reading logs: %w", err)
			}
			renderEntries(cmd, entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "lines", "n", 20, "number of entries to show")
	return cmd
}

func renderEntries(cmd *cobra.Command, entries []logging.Entry) {
	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Time"), bold("Level"), bold("Category"), bold("Message"), bold("Detail"))
	for _, e := range entries {
		detail := e.Error
		if path, ok := e.Fields["path"]; ok {
			detail = strings.TrimSpace(fmt.Sprintf("%v %v %s", path, e.Fields["status"], detail))
		}
		tbl.AddRow(e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Category, e.Message, detail)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
}
