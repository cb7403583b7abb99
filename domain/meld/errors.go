package meld

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// ErrInvalidHand matches every *InvalidHandError through errors.Is.
var ErrInvalidHand = errors.New("invalid hand")

// InvalidHandError reports a hand that cannot come from a pinochle deck:
// either a card appears more than pinochle.MaxCopies times or the card
// itself is not a pinochle card. Nothing is scored for such a hand.
type InvalidHandError struct {
	Card  pinochle.Card
	Count int
}

func (e *InvalidHandError) Error() string {
	if e.Count > pinochle.MaxCopies {
		return fmt.Sprintf("invalid hand: %d copies of %s, at most %d allowed", e.Count, e.Card, pinochle.MaxCopies)
	}
	return fmt.Sprintf("invalid hand: %v is not a pinochle card", e.Card)
}

func (e *InvalidHandError) Is(target error) bool {
	return target == ErrInvalidHand
}
