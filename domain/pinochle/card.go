package pinochle

import (
	"errors"
	"fmt"
	"strings"
)

// Suit is one of the four French suits, in the order the deck is built.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// Rank is the pinochle rank of a card. The ordering 9 < J < Q < K < 10 < A is the
// trick-taking order of the game, which is why the ten sits between king and ace.
type Rank uint8

const (
	Nine Rank = iota + 1
	Jack
	Queen
	King
	Ten
	Ace
)

// Ranks lists every rank from lowest to highest.
var Ranks = [...]Rank{Nine, Jack, Queen, King, Ten, Ace}

// ErrInvalidCard is returned when a suit, rank or textual card cannot be recognised.
var ErrInvalidCard = errors.New("invalid card")

// Card represents one physical pinochle card. Two distinct cards in a double
// deck compare equal when they share suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Hearts, Diamonds, Clubs or Spades
//   - rank: Nine (1) through Ace (6)
//
// Returns the Card or an error wrapping ErrInvalidCard if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Counted reports whether the card is a counter. Every rank but the nine counts.
func (c Card) Counted() bool {
	return c.rank >= Jack
}

// String returns the rank followed by the suit glyph, e.g. "J♦".
func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// Short returns the ASCII form accepted by ParseCard, e.g. "JD" or "10H".
func (c Card) Short() string {
	return c.rank.String() + c.suit.Letter()
}

// Less orders cards by suit first and rank second.
func (c Card) Less(o Card) bool {
	if c.suit != o.suit {
		return c.suit < o.suit
	}
	return c.rank < o.rank
}

func (s Suit) Valid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph (♥, ♦, ♣, ♠).
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the one-letter suit abbreviation used in the short card form.
func (s Suit) Letter() string {
	return s.String()[:1]
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (r Rank) Valid() bool {
	return r >= Nine && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Nine:
		return "9"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseCard parses a card written as rank followed by suit. The suit may be a
// letter (H, D, C, S) or a glyph (♥, ♦, ♣, ♠); matching is case insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	var suit Suit
	var rankStr string
	found := false
	for _, candidate := range Suits {
		for _, marker := range []string{candidate.Letter(), candidate.Symbol()} {
			if strings.HasSuffix(s, marker) {
				suit = candidate
				rankStr = strings.TrimSuffix(s, marker)
				found = true
			}
		}
	}
	if !found || rankStr == "" {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	for _, r := range Ranks {
		if r.String() == rankStr {
			return NewCard(suit, r)
		}
	}
	return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. It is meant for
// fixtures whose contents are known at compile time.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
