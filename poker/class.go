package poker

import (
	"fmt"
)

// HandKind distinguishes pocket pairs from suited and offsuit holdings
type HandKind uint8

const (
	Pair HandKind = iota
	Suited
	Offsuit
)

// String returns the kind name
func (k HandKind) String() string {
	switch k {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// HandClass is the canonical preflop category of a hand, e.g. "AKs".
// High is always >= Low, and Kind is Pair exactly when High == Low.
type HandClass struct {
	High Rank
	Low  Rank
	Kind HandKind
}

// Classify returns the hand class of a concrete hand
func Classify(h Hand) HandClass {
	high, low := h.Card1.Rank, h.Card2.Rank
	if low > high {
		high, low = low, high
	}

	switch {
	case high == low:
		return HandClass{High: high, Low: low, Kind: Pair}
	case h.Card1.Suit == h.Card2.Suit:
		return HandClass{High: high, Low: low, Kind: Suited}
	default:
		return HandClass{High: high, Low: low, Kind: Offsuit}
	}
}

// NewPair returns the pocket pair class of rank r
func NewPair(r Rank) HandClass {
	return HandClass{High: r, Low: r, Kind: Pair}
}

// String returns the standard notation ("AA", "AKs", "T9o")
func (c HandClass) String() string {
	switch c.Kind {
	case Pair:
		return c.High.String() + c.Low.String()
	case Suited:
		return c.High.String() + c.Low.String() + "s"
	default:
		return c.High.String() + c.Low.String() + "o"
	}
}

// Combos returns the number of concrete hands in the class (6, 4 or 12)
func (c HandClass) Combos() int {
	switch c.Kind {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// ParseHandClass parses "AA", "AKs", "KAo" and similar. The order of the two
// ranks in a suited or offsuit class does not matter; the suffix may be
// upper or lower case.
func ParseHandClass(s string) (HandClass, error) {
	if len(s) < 2 || len(s) > 3 {
		return HandClass{}, fmt.Errorf("invalid hand notation length: %q", s)
	}

	r1, err := ParseRank(s[0])
	if err != nil {
		return HandClass{}, err
	}
	r2, err := ParseRank(s[1])
	if err != nil {
		return HandClass{}, err
	}

	if len(s) == 2 {
		if r1 != r2 {
			return HandClass{}, fmt.Errorf("invalid pair notation: %q", s)
		}
		return NewPair(r1), nil
	}

	if r1 == r2 {
		return HandClass{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %q", s)
	}

	var kind HandKind
	switch s[2] {
	case 's', 'S':
		kind = Suited
	case 'o', 'O':
		kind = Offsuit
	default:
		return HandClass{}, fmt.Errorf("invalid modifier %q in %q", s[2], s)
	}

	if r2 > r1 {
		r1, r2 = r2, r1
	}
	return HandClass{High: r1, Low: r2, Kind: kind}, nil
}

// AllHandClasses returns all 169 hand classes in a fixed order: the 13 pairs
// from deuces up, then every unpaired combination from the top down with the
// suited class ahead of the offsuit one.
func AllHandClasses() []HandClass {
	classes := make([]HandClass, 0, 169)
	for _, r := range Ranks {
		classes = append(classes, NewPair(r))
	}
	for high := Ace; high > Two; high-- {
		for low := high - 1; low >= Two; low-- {
			classes = append(classes,
				HandClass{High: high, Low: low, Kind: Suited},
				HandClass{High: high, Low: low, Kind: Offsuit},
			)
		}
	}
	return classes
}
