// Package main is the entry point for the footprint CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"go.trai.ch/footprint/cmd/footprint/commands"
	"go.trai.ch/footprint/internal/adapters/logger"
	"go.trai.ch/footprint/internal/app"
	_ "go.trai.ch/footprint/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	cli.SetVerboseHook(func(verbose bool) {
		if l, ok := components.Logger.(*logger.Logger); ok {
			l.SetVerbose(verbose)
		}
	})

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with stack trace and metadata via %+v.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
