package pinochle

import (
	"errors"
	"testing"
)

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Spades, Ace); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCard(Suit(4), Ace); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for suit 4, got %v", err)
	}
	if _, err := NewCard(Hearts, Rank(0)); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for rank 0, got %v", err)
	}
	if _, err := NewCard(Hearts, Rank(7)); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for rank 7, got %v", err)
	}
}

func TestCardStringFaces(t *testing.T) {
	c := Card{suit: Hearts, rank: Ace}
	if c.String() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.String())
	}
	c = Card{suit: Diamonds, rank: Jack}
	if c.String() != "J♦" {
		t.Fatalf("expected J♦, got %s", c.String())
	}
	c = Card{suit: Clubs, rank: Ten}
	if c.Short() != "10C" {
		t.Fatalf("expected 10C, got %s", c.Short())
	}
}

func TestCounted(t *testing.T) {
	for _, r := range Ranks {
		c := Card{suit: Spades, rank: r}
		if c.Counted() != (r != Nine) {
			t.Fatalf("counted flag wrong for %s", c)
		}
	}
}

func TestRankOrder(t *testing.T) {
	if !(Nine < Jack && Jack < Queen && Queen < King && King < Ten && Ten < Ace) {
		t.Fatal("ranks out of pinochle order")
	}
	if Nine != 1 || Ace != 6 {
		t.Fatalf("expected ranks 1..6, got %d..%d", Nine, Ace)
	}
}

func TestParseCard(t *testing.T) {
	cases := map[string]Card{
		"JD":  {suit: Diamonds, rank: Jack},
		"qs":  {suit: Spades, rank: Queen},
		"10H": {suit: Hearts, rank: Ten},
		"9c":  {suit: Clubs, rank: Nine},
		"A♠":  {suit: Spades, rank: Ace},
		"K♦":  {suit: Diamonds, rank: King},
	}
	for in, expected := range cases {
		c, err := ParseCard(in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if c != expected {
			t.Fatalf("%s: expected %v, got %v", in, expected, c)
		}
	}
	for _, in := range []string{"", "D", "8H", "JX", "11S"} {
		if _, err := ParseCard(in); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("%q: expected ErrInvalidCard, got %v", in, err)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("JD, QS 10H\tA♣")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	if cards[3] != (Card{suit: Clubs, rank: Ace}) {
		t.Fatalf("expected A♣, got %s", cards[3])
	}
	if _, err := ParseCards("JD ZZ"); err == nil {
		t.Fatal("expected error for ZZ")
	}
}

func TestShortRoundTrip(t *testing.T) {
	for _, s := range Suits {
		for _, r := range Ranks {
			c := Card{suit: s, rank: r}
			parsed, err := ParseCard(c.Short())
			if err != nil {
				t.Fatal(err)
			}
			if parsed != c {
				t.Fatalf("expected %v, got %v", c, parsed)
			}
		}
	}
}
