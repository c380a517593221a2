package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/cmd/preflop-trainer/shared"
	"github.com/lox/preflop-trainer/internal/config"
	"github.com/lox/preflop-trainer/internal/trainer"
	"github.com/lox/preflop-trainer/internal/tui"
)

// PlayCmd runs the quiz until the user quits
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	logFile, err := shared.OpenLogFile(g.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := shared.SetupLogger(logFile, g.Debug)

	path, err := config.DefaultLocator(logger).Locate(g.Config)
	if err != nil {
		return err
	}
	strat, err := config.NewLoader(logger).Load(path)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	gen := trainer.NewGenerator(strat, trainer.WithLogger(logger))
	session := trainer.NewSession(strat, gen, nil, logger)
	logger.Info("Starting quiz", "session", session.ID(), "ranges", path)

	stats, err := tui.Run(session, logger)
	printSummary(stats)
	return err
}

func printSummary(stats trainer.Stats) {
	fmt.Println(tui.HeaderStyle.Render(" Game Over "))
	fmt.Println("Final " + tui.RenderScore(stats))
	if stats.Questions == 0 {
		return
	}
	fmt.Printf("%s %d  %s %d  %s %d\n",
		tui.SuccessStyle.Render("Correct:"), stats.Correct,
		tui.WarningStyle.Render("Frequency mistakes:"), stats.FrequencyMistakes,
		tui.ErrorStyle.Render("Wrong:"), stats.Wrong)
	fmt.Println(tui.InfoStyle.Render(fmt.Sprintf("Average answer time: %s", stats.MeanResponseTime().Round(100*time.Millisecond))))
}
