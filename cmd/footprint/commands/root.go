// Package commands implements the CLI commands for the footprint tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.trai.ch/footprint/internal/app"
	"go.trai.ch/footprint/internal/build"
	"go.trai.ch/footprint/internal/core/domain"
)

// CLI represents the command line interface for footprint.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Scan(ctx context.Context, paths []string, opts app.ScanOptions) ([]domain.ProjectReport, error)
	CacheStatus(path, configPath string) (domain.CacheStatus, error)
	CacheStats(configPath string) (domain.CacheStats, error)
	CleanupCache(configPath string) (int, error)
	InvalidateProject(path, configPath string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Measure the on-disk footprint of your projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the settings file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetVerboseHook sets up a PersistentPreRun function that retrieves the
// verbose flag and calls the provided callback with it.
func (c *CLI) SetVerboseHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		fn(verbose)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
