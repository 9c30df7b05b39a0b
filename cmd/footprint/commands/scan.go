package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"go.trai.ch/footprint/internal/app"
	"go.trai.ch/footprint/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Compute project sizes, split into code and dependencies",
		Long: "Scan sizes the given project directories. Without arguments it " +
			"discovers projects under the configured scan paths.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")

			reports, err := c.app.Scan(cmd.Context(), args, app.ScanOptions{
				ConfigPath: c.configPath(cmd),
				NoCache:    noCache,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := 0
			for _, report := range reports {
				if report.Err != nil {
					failures++
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", report.Path, report.Err)
					continue
				}
				printReport(out, report)
			}
			if failures > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d projects failed\n", failures, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the size cache and force a full scan")
	return cmd
}

func printReport(out io.Writer, report domain.ProjectReport) {
	cached := ""
	if report.FromCache {
		cached = " (cached)"
	}
	_, _ = fmt.Fprintf(out, "%s%s\n", report.Path, cached)
	_, _ = fmt.Fprintf(out, "  total %s in %d files (code %s in %d, dependencies %s in %d)\n",
		humanize.IBytes(report.SizeInfo.TotalSize), report.SizeInfo.TotalFileCount,
		humanize.IBytes(report.SizeInfo.CodeSize), report.SizeInfo.CodeFileCount,
		humanize.IBytes(report.SizeInfo.DependencySize), report.SizeInfo.DependencyFileCount,
	)
}
