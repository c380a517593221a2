package trainer

import (
	"fmt"
	"math"

	"github.com/lox/preflop-trainer/internal/strategy"
	"github.com/lox/preflop-trainer/poker"
)

// ActionFrequencies is how often a hand raises, calls and folds in a spot
type ActionFrequencies struct {
	Raise float64
	Call  float64
	Fold  float64
}

// Grade compares action against the strategy for hand in sit. draw is the
// question's shared random value in [0, 100) and selects which branch of a
// mixed strategy counts as correct.
func Grade(s *strategy.Strategy, sit strategy.Situation, hand poker.Hand, action Action, draw uint8) Result {
	class := poker.Classify(hand)

	switch sit := sit.(type) {
	case strategy.Open:
		// Nobody calls an unopened pot. Handling Call here means the mixed
		// branch below only ever sees Raise or Fold.
		if action == Call {
			return Wrong
		}
		raiseFreq := s.OpenRange(sit.Position).Frequency(class)
		switch raiseFreq {
		case 1:
			return resultIf(action == Raise)
		case 0:
			return resultIf(action == Fold)
		}
		if action == openAction(raiseFreq, draw) {
			return Correct
		}
		return FrequencyMistake

	case strategy.BBDefense:
		callFreq := s.CallRange(sit.Opener).Frequency(class)
		raiseFreq := s.RaiseRange(sit.Opener).Frequency(class)
		if action == defenseAction(raiseFreq, callFreq, draw) {
			return Correct
		}

		var inStrategy bool
		switch action {
		case Raise:
			inStrategy = raiseFreq > 0
		case Call:
			inStrategy = callFreq > 0
		case Fold:
			inStrategy = raiseFreq+callFreq < 1
		}
		if inStrategy {
			return FrequencyMistake
		}
		return Wrong

	default:
		panic(fmt.Sprintf("trainer: unhandled situation %T", sit))
	}
}

// CorrectAction returns the action the strategy picks for hand in sit at draw
func CorrectAction(s *strategy.Strategy, sit strategy.Situation, hand poker.Hand, draw uint8) Action {
	class := poker.Classify(hand)

	switch sit := sit.(type) {
	case strategy.Open:
		return openAction(s.OpenRange(sit.Position).Frequency(class), draw)
	case strategy.BBDefense:
		return defenseAction(
			s.RaiseRange(sit.Opener).Frequency(class),
			s.CallRange(sit.Opener).Frequency(class),
			draw,
		)
	default:
		panic(fmt.Sprintf("trainer: unhandled situation %T", sit))
	}
}

// Frequencies returns the raise/call/fold split for hand in sit
func Frequencies(s *strategy.Strategy, sit strategy.Situation, hand poker.Hand) ActionFrequencies {
	class := poker.Classify(hand)

	switch sit := sit.(type) {
	case strategy.Open:
		raise := s.OpenRange(sit.Position).Frequency(class)
		return ActionFrequencies{Raise: raise, Fold: 1 - raise}
	case strategy.BBDefense:
		raise := s.RaiseRange(sit.Opener).Frequency(class)
		call := s.CallRange(sit.Opener).Frequency(class)
		return ActionFrequencies{Raise: raise, Call: call, Fold: 1 - math.Min(1, raise+call)}
	default:
		panic(fmt.Sprintf("trainer: unhandled situation %T", sit))
	}
}

func openAction(raiseFreq float64, draw uint8) Action {
	if draw < threshold(raiseFreq) {
		return Raise
	}
	return Fold
}

// defenseAction stacks the raise band below the call band: draws under the
// raise threshold raise, draws under raise+call call, the rest fold.
func defenseAction(raiseFreq, callFreq float64, draw uint8) Action {
	raiseThreshold := threshold(raiseFreq)
	callThreshold := saturatingAdd(raiseThreshold, threshold(callFreq))

	switch {
	case draw < raiseThreshold:
		return Raise
	case draw < callThreshold:
		return Call
	default:
		return Fold
	}
}

// thresholdEpsilon absorbs binary rounding so 0.29*100 floors to 29, not 28
const thresholdEpsilon = 1e-9

// threshold converts a frequency to a whole-percent cut-off, truncating
func threshold(freq float64) uint8 {
	t := math.Floor(freq*100 + thresholdEpsilon)
	switch {
	case t <= 0:
		return 0
	case t >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(t)
	}
}

func saturatingAdd(a, b uint8) uint8 {
	if sum := uint16(a) + uint16(b); sum < math.MaxUint8 {
		return uint8(sum)
	}
	return math.MaxUint8
}

func resultIf(ok bool) Result {
	if ok {
		return Correct
	}
	return Wrong
}
