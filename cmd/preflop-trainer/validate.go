package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lox/preflop-trainer/cmd/preflop-trainer/shared"
	"github.com/lox/preflop-trainer/internal/config"
	"github.com/lox/preflop-trainer/internal/strategy"
	"github.com/lox/preflop-trainer/internal/tui"
)

// ValidateCmd loads ranges files and reports what they configure
type ValidateCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Ranges files to check (defaults to the one play would use)"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(os.Stderr, g.Debug)

	files := c.Files
	if len(files) == 0 {
		path, err := config.DefaultLocator(logger).Locate(g.Config)
		if err != nil {
			return err
		}
		files = []string{path}
	}

	ctx := shared.SetupSignalHandler(logger)
	strategies, err := loadAll(ctx, config.NewLoader(logger), files)
	if err != nil {
		return err
	}
	printValidation(os.Stdout, files, strategies)
	return nil
}

// loadAll loads every file concurrently; the first failure cancels the rest
func loadAll(ctx context.Context, loader *config.Loader, files []string) ([]*strategy.Strategy, error) {
	strategies := make([]*strategy.Strategy, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := loader.Load(path)
			if err != nil {
				return err
			}
			strategies[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return strategies, nil
}

func printValidation(w io.Writer, files []string, strategies []*strategy.Strategy) {
	for i, s := range strategies {
		fmt.Fprintf(w, "%s %s\n", tui.SuccessStyle.Render("OK"), files[i])
		for _, sit := range s.Allowed() {
			fmt.Fprintf(w, "  %-16s %3d classes\n", sit.ID(), len(s.TargetRange(sit)))
		}
		if s.NumAllowed() == 0 {
			fmt.Fprintf(w, "  %s\n", tui.WarningStyle.Render("no situations enabled, play will refuse to start"))
		}
	}
}
