package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the size cache",
	}
	cmd.AddCommand(c.newCacheStatsCmd())
	cmd.AddCommand(c.newCacheCleanCmd())
	cmd.AddCommand(c.newCacheStatusCmd())
	cmd.AddCommand(c.newCacheInvalidateCmd())
	return cmd
}

func (c *CLI) newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache entry counts and cached sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.CacheStats(c.configPath(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "entries:   %d (%d expired)\n", stats.TotalEntries, stats.ExpiredEntries)
			_, _ = fmt.Fprintf(out, "total:     %s\n", humanize.IBytes(stats.TotalCachedSize))
			_, _ = fmt.Fprintf(out, "code:      %s\n", humanize.IBytes(stats.TotalCodeSize))
			_, _ = fmt.Fprintf(out, "deps:      %s\n", humanize.IBytes(stats.TotalDependencySize))
			return nil
		},
	}
}

func (c *CLI) newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove expired cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := c.app.CleanupCache(c.configPath(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired entries\n", removed)
			return nil
		},
	}
}

func (c *CLI) newCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <path>",
		Short: "Report whether a project's cached size is still valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.app.CacheStatus(args[0], c.configPath(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], status)
			return nil
		},
	}
}

func (c *CLI) newCacheInvalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate <path>",
		Short: "Drop a project's cache entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.InvalidateProject(args[0], c.configPath(cmd)); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "invalidated %s\n", args[0])
			return nil
		},
	}
}
