package trainer

import (
	"fmt"
	"strings"
)

// Action is the player's answer to a question
type Action uint8

const (
	Raise Action = iota
	Call
	Fold
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Raise:
		return "Raise"
	case Call:
		return "Call"
	case Fold:
		return "Fold"
	default:
		return "Unknown"
	}
}

// ParseAction accepts "r", "c", "f" or the full action names, any case
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "raise":
		return Raise, nil
	case "c", "call":
		return Call, nil
	case "f", "fold":
		return Fold, nil
	default:
		return 0, fmt.Errorf("invalid action: %q", s)
	}
}

// Result is the grade given to an answer
type Result uint8

const (
	Correct Result = iota
	Wrong
	// FrequencyMistake means the action is part of the hand's strategy, but
	// not the one this question's draw selected.
	FrequencyMistake
)

// String returns a short description of the result
func (r Result) String() string {
	switch r {
	case Correct:
		return "Correct"
	case Wrong:
		return "Wrong"
	case FrequencyMistake:
		return "Frequency mistake"
	default:
		return "Unknown"
	}
}

// Score returns the credit awarded: 1 for correct, 0.5 for a frequency
// mistake and nothing for a wrong answer.
func (r Result) Score() float64 {
	switch r {
	case Correct:
		return 1
	case FrequencyMistake:
		return 0.5
	default:
		return 0
	}
}
