package poker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range maps hand classes to the frequency (0-1) at which they are played.
// A class missing from the range is played at frequency 0.
type Range map[HandClass]float64

// Frequency returns the frequency of c, or 0 when c is not in the range
func (r Range) Frequency(c HandClass) float64 {
	return r[c]
}

// Contains reports whether c has an entry in the range
func (r Range) Contains(c HandClass) bool {
	_, ok := r[c]
	return ok
}

// Merge returns a new range holding every entry of r overlaid with the
// entries of other. Where both contain a class, other's frequency wins.
func (r Range) Merge(other Range) Range {
	merged := make(Range, len(r)+len(other))
	for c, f := range r {
		merged[c] = f
	}
	for c, f := range other {
		merged[c] = f
	}
	return merged
}

// String renders the range in canonical class order, e.g. "AA,AKs:0.5"
func (r Range) String() string {
	return FormatRange(r)
}

// ParseRange creates a range from standard preflop notation.
// Examples: "AA,KK", "AKs:0.5,AKo", "TT+", "A2s+:0.25", "KTo+".
// An empty string is an empty range.
func ParseRange(notation string) (Range, error) {
	r := make(Range)
	if notation == "" {
		return r, nil
	}

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return r, nil
}

// addRangePart adds a single "<class>[+][:<frequency>]" token to the range.
// Later tokens overwrite earlier ones for the same class.
func (r Range) addRangePart(part string) error {
	if part == "" {
		return fmt.Errorf("empty hand notation")
	}

	notation, freqText, hasFreq := strings.Cut(part, ":")
	frequency := 1.0
	if hasFreq {
		f, err := strconv.ParseFloat(strings.TrimSpace(freqText), 64)
		if err != nil {
			return fmt.Errorf("invalid frequency %q: %w", freqText, err)
		}
		if math.IsNaN(f) || f < 0 || f > 1 {
			return fmt.Errorf("frequency %v out of range [0, 1]", f)
		}
		frequency = f
	}
	notation = strings.TrimSpace(notation)

	if base, ok := strings.CutSuffix(notation, "+"); ok {
		return r.addPlusRange(base, frequency)
	}

	class, err := ParseHandClass(notation)
	if err != nil {
		return err
	}
	r[class] = frequency
	return nil
}

// addPlusRange handles "TT+" (all pairs TT and higher) and "KTs+"/"KTo+"
// (the high card fixed, the kicker walking up to one below it).
func (r Range) addPlusRange(base string, frequency float64) error {
	class, err := ParseHandClass(base)
	if err != nil {
		return err
	}

	if class.Kind == Pair {
		for rank := class.High; rank <= Ace; rank++ {
			r[NewPair(rank)] = frequency
		}
		return nil
	}

	for low := class.Low; low < class.High; low++ {
		r[HandClass{High: class.High, Low: low, Kind: class.Kind}] = frequency
	}
	return nil
}

// FormatRange renders a range as a notation string that ParseRange accepts.
// Classes are listed in AllHandClasses order; frequency 1 is left implicit.
func FormatRange(r Range) string {
	var parts []string
	for _, c := range AllHandClasses() {
		f, ok := r[c]
		if !ok {
			continue
		}
		if f == 1 {
			parts = append(parts, c.String())
			continue
		}
		parts = append(parts, c.String()+":"+strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}
