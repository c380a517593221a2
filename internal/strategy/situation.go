package strategy

import (
	"fmt"
	"strings"
)

// Situation is the preflop spot a question is asked in. The set of
// situations is closed: Open and BBDefense are the only implementations.
type Situation interface {
	// ID returns the configuration identifier, e.g. "Open_UTG"
	ID() string
	// String returns the display text, e.g. "Open from Button"
	String() string

	situation()
}

// Open is an unopened pot with Position first to act
type Open struct {
	Position Position
}

func (Open) situation() {}

func (s Open) ID() string { return "Open_" + s.Position.String() }

func (s Open) String() string { return "Open from " + s.Position.Label() }

// BBDefense is the big blind facing a single raise from Opener
type BBDefense struct {
	Opener Position
}

func (BBDefense) situation() {}

func (s BBDefense) ID() string { return "BBDefense_" + s.Opener.String() }

func (s BBDefense) String() string { return "BB vs " + s.Opener.Label() + " Open" }

// ParseSituation parses an identifier such as "Open_CO" or "BBDefense_btn"
func ParseSituation(s string) (Situation, error) {
	kind, posText, ok := strings.Cut(s, "_")
	if !ok || strings.Contains(posText, "_") {
		return nil, fmt.Errorf("invalid situation format: %q", s)
	}

	pos, err := ParsePosition(posText)
	if err != nil {
		return nil, fmt.Errorf("situation %q: %w", s, err)
	}
	if !pos.IsOpener() {
		return nil, fmt.Errorf("situation %q: %s cannot open", s, pos)
	}

	switch kind {
	case "Open":
		return Open{Position: pos}, nil
	case "BBDefense":
		return BBDefense{Opener: pos}, nil
	default:
		return nil, fmt.Errorf("unknown situation type %q in %q", kind, s)
	}
}

// DefaultSituations returns every Open spot followed by every BB defense spot
func DefaultSituations() []Situation {
	situations := make([]Situation, 0, 2*len(Openers))
	for _, p := range Openers {
		situations = append(situations, Open{Position: p})
	}
	for _, p := range Openers {
		situations = append(situations, BBDefense{Opener: p})
	}
	return situations
}
