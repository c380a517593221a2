// Package poker provides the card primitives, the 169 preflop hand classes,
// range parsing and a dealer that can deal a hand of a requested class.
package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single-letter suit ("s", "h", "d", "c")
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol used for display
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a suit letter, either case
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit character: %q", c)
	}
}

// Rank represents a card rank. Ranks are ordered so that Ace is highest.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const rankChars = "23456789TJQKA"

// Valid reports whether r is one of the 13 ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank character ("2".."9", "T", "J", "Q", "K", "A")
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// ParseRank parses a rank character. Rank characters are upper case only.
func ParseRank(c byte) (Rank, error) {
	idx := strings.IndexByte(rankChars, c)
	if idx < 0 {
		return 0, fmt.Errorf("invalid rank character: %q", c)
	}
	return Two + Rank(idx), nil
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "As")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Valid reports whether the card has a real rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit <= Clubs
}

// ParseCard parses a string like "As" or "Td" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests and fixtures)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", s, err))
	}
	return c
}

// Hand is a pair of hole cards
type Hand struct {
	Card1 Card
	Card2 Card
}

// NewHand creates a hand from two cards
func NewHand(c1, c2 Card) Hand {
	return Hand{Card1: c1, Card2: c2}
}

// ParseHand parses two cards, with or without a separating space ("AsKd", "As Kd")
func ParseHand(s string) (Hand, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != 4 {
		return Hand{}, fmt.Errorf("invalid hand string: %q", s)
	}
	c1, err := ParseCard(s[:2])
	if err != nil {
		return Hand{}, err
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return Hand{}, err
	}
	h := NewHand(c1, c2)
	if !h.Valid() {
		return Hand{}, fmt.Errorf("hand %q repeats a card", s)
	}
	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests and fixtures)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return h
}

// Valid reports whether both cards are valid and distinct
func (h Hand) Valid() bool {
	return h.Card1.Valid() && h.Card2.Valid() && h.Card1 != h.Card2
}

// String returns both cards separated by a space (e.g., "As Kd")
func (h Hand) String() string {
	return h.Card1.String() + " " + h.Card2.String()
}
