package deck

import (
	"errors"
	"fmt"
	"slices"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// Size is the number of cards of a pinochle deck: two copies of each of the
// 24 distinct cards.
const Size = pinochle.MaxCopies * len(pinochle.Suits) * len(pinochle.Ranks)

var ErrNotEnoughCards = errors.New("not enough cards left in the deck")

// Deck is a pile of pinochle cards dealt from the top. It is not safe for
// concurrent use: one dealer owns it.
type Deck struct {
	cards []pinochle.Card
}

// New returns an unshuffled full deck, suit by suit, each card twice in a row.
func New() *Deck {
	cards := make([]pinochle.Card, 0, Size)
	for _, s := range pinochle.Suits {
		for _, r := range pinochle.Ranks {
			c, err := pinochle.NewCard(s, r)
			if err != nil {
				panic(err)
			}
			for range pinochle.MaxCopies {
				cards = append(cards, c)
			}
		}
	}
	return &Deck{cards: cards}
}

// Deal removes n cards from the top of the deck and returns them.
// The deck is left untouched if it holds fewer than n cards.
func (d *Deck) Deal(n int) ([]pinochle.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("dealing %d of %d: %w", n, len(d.cards), ErrNotEnoughCards)
	}
	top := len(d.cards) - n
	dealt := slices.Clone(d.cards[top:])
	slices.Reverse(dealt)
	d.cards = d.cards[:top]
	return dealt, nil
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []pinochle.Card {
	return slices.Clone(d.cards)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck of %d cards", len(d.cards))
}
