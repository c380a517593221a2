package strategy

import (
	"fmt"
	"strings"
)

// Position represents a seat at a six-handed table, in preflop action order
type Position uint8

const (
	UTG Position = iota
	MP
	CO
	BTN
	SB
	BB
)

// Positions lists all six seats in action order
var Positions = [6]Position{UTG, MP, CO, BTN, SB, BB}

// Openers lists the seats that can open an unopened pot (everyone but BB)
var Openers = [5]Position{UTG, MP, CO, BTN, SB}

// String returns the short position code used in configuration ("BTN")
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case MP:
		return "MP"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	default:
		return "Unknown"
	}
}

// Label returns the display name ("Button", "Small Blind")
func (p Position) Label() string {
	switch p {
	case BTN:
		return "Button"
	case SB:
		return "Small Blind"
	case BB:
		return "Big Blind"
	default:
		return p.String()
	}
}

// IsOpener reports whether the position can be first to raise
func (p Position) IsOpener() bool {
	return p <= SB
}

// ParsePosition matches a position code case-insensitively
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid position: %q", s)
}
