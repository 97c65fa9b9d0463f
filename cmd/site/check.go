package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/ai-directory/internal/ui/audit"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check [pages...]",
		Short: "Report which page features each page's markup supports",
		Long: `Parses each page and reports, per feature, whether its controller would
start and which hooks are missing. Without arguments the configured pages
under the site directory are checked. With --strict any missing hook fails
the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			pages := args
			if len(pages) == 0 {
				for _, page := range cfg.Pages {
					pages = append(pages, filepath.Join(cfg.Dir, page))
				}
			}
			if len(pages) == 0 {
				return fmt.Errorf("no pages to check")
			}

			reports := make([]audit.Report, 0, len(pages))
			for _, page := range pages {
				report, err := audit.CheckFile(page, cfg.Hooks)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}
			audit.Render(cmd.OutOrStdout(), reports)

			if strict {
				var incomplete []string
				for _, r := range reports {
					if !r.Complete() {
						incomplete = append(incomplete, r.Page)
					}
				}
				if len(incomplete) > 0 {
					return fmt.Errorf("missing hooks on %d page(s): %v", len(incomplete), incomplete)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any hook is missing")
	return cmd
}
