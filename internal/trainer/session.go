package trainer

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/preflop-trainer/internal/strategy"
	"github.com/lox/preflop-trainer/poker"
)

// ErrNoQuestion is returned by Answer when there is no open question
var ErrNoQuestion = errors.New("no question awaiting an answer")

// Feedback describes a graded answer, for display after the fact
type Feedback struct {
	Spot          Spot
	Class         poker.HandClass
	Action        Action
	Result        Result
	CorrectAction Action
	Frequencies   ActionFrequencies
	ResponseTime  time.Duration
}

// Stats is a running tally for a session
type Stats struct {
	Questions         int
	Score             float64
	Correct           int
	FrequencyMistakes int
	Wrong             int
	TotalResponseTime time.Duration
}

// Percentage returns the score as a percentage of questions answered
func (s Stats) Percentage() float64 {
	if s.Questions == 0 {
		return 0
	}
	return s.Score / float64(s.Questions) * 100
}

// MeanResponseTime returns the average time taken to answer
func (s Stats) MeanResponseTime() time.Duration {
	if s.Questions == 0 {
		return 0
	}
	return s.TotalResponseTime / time.Duration(s.Questions)
}

// Session runs one quiz: it asks questions from a generator, grades the
// answers and keeps score.
type Session struct {
	id        string
	strategy  *strategy.Strategy
	generator *Generator
	clock     quartz.Clock
	logger    *log.Logger

	current  *Spot
	askedAt  time.Time
	previous *Feedback
	stats    Stats
}

// NewSession creates a session. A nil clock uses the real clock and a nil
// logger the default one.
func NewSession(s *strategy.Strategy, g *Generator, clock quartz.Clock, logger *log.Logger) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		strategy:  s,
		generator: g,
		clock:     clock,
		logger:    logger.WithPrefix("session").With("session", id),
	}
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// Current returns the open question, if any
func (s *Session) Current() (Spot, bool) {
	if s.current == nil {
		return Spot{}, false
	}
	return *s.current, true
}

// Next asks a new question, replacing any unanswered one. Questions that are
// never answered do not count towards the score.
func (s *Session) Next() (Spot, error) {
	spot, err := s.generator.Next()
	if err != nil {
		return Spot{}, err
	}
	s.current = &spot
	s.askedAt = s.clock.Now()
	s.logger.Debug("Question asked",
		"number", s.stats.Questions+1,
		"situation", spot.Situation.ID(),
		"hand", spot.Hand,
		"draw", spot.Draw)
	return spot, nil
}

// Answer grades action against the open question and closes it
func (s *Session) Answer(action Action) (Feedback, error) {
	if s.current == nil {
		return Feedback{}, ErrNoQuestion
	}
	spot := *s.current

	fb := Feedback{
		Spot:          spot,
		Class:         poker.Classify(spot.Hand),
		Action:        action,
		Result:        Grade(s.strategy, spot.Situation, spot.Hand, action, spot.Draw),
		CorrectAction: CorrectAction(s.strategy, spot.Situation, spot.Hand, spot.Draw),
		Frequencies:   Frequencies(s.strategy, spot.Situation, spot.Hand),
		ResponseTime:  s.clock.Since(s.askedAt),
	}

	s.stats.Questions++
	s.stats.Score += fb.Result.Score()
	s.stats.TotalResponseTime += fb.ResponseTime
	switch fb.Result {
	case Correct:
		s.stats.Correct++
	case FrequencyMistake:
		s.stats.FrequencyMistakes++
	case Wrong:
		s.stats.Wrong++
	}

	s.current = nil
	s.previous = &fb
	s.logger.Info("Answer graded",
		"situation", spot.Situation.ID(),
		"class", fb.Class,
		"action", action,
		"result", fb.Result,
		"elapsed", fb.ResponseTime)
	return fb, nil
}

// Previous returns feedback for the last graded answer, if any
func (s *Session) Previous() (Feedback, bool) {
	if s.previous == nil {
		return Feedback{}, false
	}
	return *s.previous, true
}

// Stats returns the running tally
func (s *Session) Stats() Stats {
	return s.stats
}
