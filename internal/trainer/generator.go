// Package trainer generates preflop quiz questions from a strategy, grades
// answers against it and keeps score for a session.
package trainer

import (
	"errors"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/strategy"
	"github.com/lox/preflop-trainer/poker"
)

var (
	// ErrUnconfigured is returned when the strategy enables no situations
	ErrUnconfigured = errors.New("no situations configured: set allowed_spot_types or leave it unset for the defaults")

	// ErrExhausted is returned when no question could be dealt within
	// maxAttempts reshuffles.
	ErrExhausted = errors.New("could not deal a question after repeated reshuffles")
)

// maxAttempts bounds the retry loop in Next. The default weights make every
// attempt but a failed deal succeed, so this only trips for weight schemes
// that zero out the whole universe.
const maxAttempts = 10000

// Spot is a single quiz question
type Spot struct {
	Situation strategy.Situation
	Hand      poker.Hand
	// Draw is the question's random value in [0, 100). Grading must use
	// the same value to decide which branch of a mixed strategy is correct.
	Draw uint8
}

// WeightScheme decides how often a class is asked relative to the others,
// keyed on its frequency in the target range.
type WeightScheme struct {
	Absent int // class not in the range, or at frequency 0
	Mixed  int // frequency strictly between 0 and 1
	Pure   int // frequency 1
}

// DefaultWeights favours mixed-frequency hands heavily, in-range hands a
// little, and keeps a baseline of everything else as plausible folds.
var DefaultWeights = WeightScheme{Absent: 20, Mixed: 5000, Pure: 50}

// WeightedClass pairs a hand class with its sampling weight
type WeightedClass struct {
	Class  poker.HandClass
	Weight int
}

// Weight returns the sampling weight for a class played at freq
func (w WeightScheme) Weight(freq float64) int {
	switch {
	case freq > 0 && freq < 1:
		return w.Mixed
	case freq == 1:
		return w.Pure
	default:
		return w.Absent
	}
}

// Weights assigns a weight to every class in universe against target
func (w WeightScheme) Weights(target poker.Range, universe []poker.HandClass) []WeightedClass {
	weighted := make([]WeightedClass, len(universe))
	for i, c := range universe {
		weighted[i] = WeightedClass{Class: c, Weight: w.Weight(target.Frequency(c))}
	}
	return weighted
}

// Generator deals quiz questions. It owns its deck, which shrinks as hands
// are dealt and is replaced with a fresh shuffled deck when it runs low or
// cannot produce the class that was drawn.
type Generator struct {
	strategy *strategy.Strategy
	weights  WeightScheme
	universe []poker.HandClass
	deck     *poker.Deck
	rng      *rand.Rand
	logger   *log.Logger
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithRand sets the random source, for tests that need fixed draws
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = rng }
}

// WithWeights replaces DefaultWeights
func WithWeights(w WeightScheme) GeneratorOption {
	return func(g *Generator) { g.weights = w }
}

// WithLogger sets the logger used for debug output about reshuffles
func WithLogger(logger *log.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger.WithPrefix("generator") }
}

// NewGenerator creates a generator over s with a freshly shuffled deck
func NewGenerator(s *strategy.Strategy, opts ...GeneratorOption) *Generator {
	g := &Generator{
		strategy: s,
		weights:  DefaultWeights,
		universe: poker.AllHandClasses(),
		logger:   log.Default().WithPrefix("generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = randutil.NewUnseeded()
	}
	g.deck = poker.NewShuffledDeck(g.rng)
	return g
}

// CardsRemaining returns how many cards are left in the generator's deck
func (g *Generator) CardsRemaining() int {
	return g.deck.CardsRemaining()
}

// Next deals the next question. It returns ErrUnconfigured when the strategy
// enables no situations.
func (g *Generator) Next() (Spot, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if g.deck.CardsRemaining() < 2 {
			g.logger.Debug("Deck exhausted, reshuffling")
			g.deck.Reset()
		}

		n := g.strategy.NumAllowed()
		if n == 0 {
			return Spot{}, ErrUnconfigured
		}
		sit := g.strategy.AllowedAt(g.rng.IntN(n))

		weighted := g.weights.Weights(g.strategy.TargetRange(sit), g.universe)
		class, ok := g.pick(weighted)
		if !ok {
			g.logger.Debug("Target range has no weight, reshuffling", "situation", sit.ID())
			g.deck.Reset()
			continue
		}

		hand, ok := g.deck.DealMatching(class)
		if !ok {
			g.logger.Debug("Class not dealable from deck, reshuffling",
				"situation", sit.ID(), "class", class, "remaining", g.deck.CardsRemaining())
			g.deck.Reset()
			continue
		}

		return Spot{Situation: sit, Hand: hand, Draw: uint8(g.rng.IntN(100))}, nil
	}
	return Spot{}, ErrExhausted
}

// pick draws a class with probability proportional to its weight. It
// returns false when the total weight is zero.
func (g *Generator) pick(weighted []WeightedClass) (poker.HandClass, bool) {
	total := 0
	for _, wc := range weighted {
		total += wc.Weight
	}
	if total <= 0 {
		return poker.HandClass{}, false
	}

	r := g.rng.IntN(total)
	running := 0
	for _, wc := range weighted {
		running += wc.Weight
		if running > r {
			return wc.Class, true
		}
	}
	return poker.HandClass{}, false
}
