package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/cmd/preflop-trainer/shared"
	"github.com/lox/preflop-trainer/internal/tui"
	"github.com/lox/preflop-trainer/poker"
)

// CheckRangeCmd looks a hand class up in a range string
type CheckRangeCmd struct {
	RangeStr string `short:"r" required:"" help:"Range string, e.g. \"TT+,AKs:0.5\""`
	HandStr  string `short:"s" required:"" help:"Hand class, e.g. \"AKs\""`
	Expand   bool   `help:"Also print the expanded range"`
}

func (c *CheckRangeCmd) Run(g *Globals) error {
	return c.run(os.Stdout, shared.SetupLogger(os.Stderr, g.Debug))
}

func (c *CheckRangeCmd) run(w io.Writer, logger *log.Logger) error {
	r, err := poker.ParseRange(c.RangeStr)
	if err != nil {
		return fmt.Errorf("error parsing range string: %w", err)
	}
	class, err := poker.ParseHandClass(c.HandStr)
	if err != nil {
		return fmt.Errorf("error parsing hand string: %w", err)
	}
	logger.Debug("Parsed range", "range", r.String(), "classes", len(r), "hand", class)

	if c.Expand {
		fmt.Fprintf(w, "%s %s\n", tui.InfoStyle.Render(fmt.Sprintf("Range (%d classes):", len(r))), r)
	}

	if freq, ok := r[class]; ok {
		fmt.Fprintf(w, "Hand %s is in range with frequency: %.2f%%\n", tui.PromptStyle.Render(class.String()), freq*100)
		return nil
	}
	fmt.Fprintf(w, "Hand %s is %s in range.\n", tui.PromptStyle.Render(class.String()), tui.ErrorStyle.Render("NOT"))
	return nil
}
