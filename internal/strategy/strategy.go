// Package strategy holds the configured preflop ranges the trainer quizzes
// against: open-raise ranges per position, big blind call and 3-bet ranges
// per opener, and the situations enabled for quizzing.
package strategy

import (
	"fmt"
	"slices"
	"sort"

	"github.com/lox/preflop-trainer/poker"
)

// Strategy is the parsed, read-only set of ranges for a session
type Strategy struct {
	openRaise map[Position]poker.Range
	bbCall    map[Position]poker.Range
	bbRaise   map[Position]poker.Range
	allowed   []Situation
}

// DefenseRanges are the big blind's raw range strings against one opener
type DefenseRanges struct {
	Call  string
	Raise string
}

// Raw is the unparsed strategy as read from a ranges file. Keys are position
// codes. A nil Allowed selects DefaultSituations; an empty non-nil Allowed is
// kept empty.
type Raw struct {
	OpenRaise map[string]string
	BBDefense map[string]DefenseRanges
	Allowed   []string
}

// New assembles a strategy from already parsed ranges. A nil allowed list
// selects DefaultSituations.
func New(openRaise, bbCall, bbRaise map[Position]poker.Range, allowed []Situation) *Strategy {
	if allowed == nil {
		allowed = DefaultSituations()
	}
	return &Strategy{
		openRaise: orEmpty(openRaise),
		bbCall:    orEmpty(bbCall),
		bbRaise:   orEmpty(bbRaise),
		allowed:   slices.Clone(allowed),
	}
}

func orEmpty(m map[Position]poker.Range) map[Position]poker.Range {
	if m == nil {
		return map[Position]poker.Range{}
	}
	return m
}

// Build parses every position key, range string and situation identifier in
// raw. The first parse failure is returned with the section it came from.
func Build(raw Raw) (*Strategy, error) {
	openRaise := make(map[Position]poker.Range, len(raw.OpenRaise))
	for _, key := range sortedKeys(raw.OpenRaise) {
		pos, err := ParsePosition(key)
		if err != nil {
			return nil, fmt.Errorf("open-raise ranges: %w", err)
		}
		if _, dup := openRaise[pos]; dup {
			return nil, fmt.Errorf("open-raise ranges: duplicate position %s (key %q)", pos, key)
		}
		r, err := poker.ParseRange(raw.OpenRaise[key])
		if err != nil {
			return nil, fmt.Errorf("open-raise range for %q: %w", key, err)
		}
		openRaise[pos] = r
	}

	bbCall := make(map[Position]poker.Range, len(raw.BBDefense))
	bbRaise := make(map[Position]poker.Range, len(raw.BBDefense))
	for _, key := range sortedKeys(raw.BBDefense) {
		pos, err := ParsePosition(key)
		if err != nil {
			return nil, fmt.Errorf("bb defense ranges: %w", err)
		}
		if !pos.IsOpener() {
			return nil, fmt.Errorf("bb defense ranges: %s cannot be the opener", pos)
		}
		if _, dup := bbCall[pos]; dup {
			return nil, fmt.Errorf("bb defense ranges: duplicate position %s (key %q)", pos, key)
		}
		detail := raw.BBDefense[key]
		call, err := poker.ParseRange(detail.Call)
		if err != nil {
			return nil, fmt.Errorf("bb defense call range vs %q: %w", key, err)
		}
		raise, err := poker.ParseRange(detail.Raise)
		if err != nil {
			return nil, fmt.Errorf("bb defense raise range vs %q: %w", key, err)
		}
		bbCall[pos] = call
		bbRaise[pos] = raise
	}

	var allowed []Situation
	if raw.Allowed != nil {
		allowed = make([]Situation, 0, len(raw.Allowed))
		for _, id := range raw.Allowed {
			sit, err := ParseSituation(id)
			if err != nil {
				return nil, fmt.Errorf("allowed situations: %w", err)
			}
			allowed = append(allowed, sit)
		}
	}

	return New(openRaise, bbCall, bbRaise, allowed), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OpenRange returns the open-raise range for pos; nil when unconfigured
func (s *Strategy) OpenRange(pos Position) poker.Range {
	return s.openRaise[pos]
}

// CallRange returns the big blind's flat-call range against opener
func (s *Strategy) CallRange(opener Position) poker.Range {
	return s.bbCall[opener]
}

// RaiseRange returns the big blind's 3-bet range against opener
func (s *Strategy) RaiseRange(opener Position) poker.Range {
	return s.bbRaise[opener]
}

// Allowed returns a copy of the situations enabled for quizzing
func (s *Strategy) Allowed() []Situation {
	return slices.Clone(s.allowed)
}

// NumAllowed returns how many situations are enabled
func (s *Strategy) NumAllowed() int {
	return len(s.allowed)
}

// AllowedAt returns the i-th enabled situation
func (s *Strategy) AllowedAt(i int) Situation {
	return s.allowed[i]
}

// TargetRange returns the range whose classes a question in sit is drawn
// against. For BB defense that is the call range overlaid with the raise
// range, so a class in both carries its raise frequency.
func (s *Strategy) TargetRange(sit Situation) poker.Range {
	switch sit := sit.(type) {
	case Open:
		return s.OpenRange(sit.Position)
	case BBDefense:
		return s.CallRange(sit.Opener).Merge(s.RaiseRange(sit.Opener))
	default:
		panic(fmt.Sprintf("strategy: unhandled situation %T", sit))
	}
}
