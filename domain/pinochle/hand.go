package pinochle

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// MaxCopies is the number of copies of every (suit, rank) in a pinochle deck.
const MaxCopies = 2

// ErrCopyLimit is returned by Hand.Add when a card would exceed MaxCopies.
var ErrCopyLimit = errors.New("hand already holds every copy of this card")

// CardNotFoundError is returned by Hand.Remove when the card is not held.
type CardNotFoundError struct {
	Card Card
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("card %s not in hand", e.Card)
}

// Hand is the multiset of cards owned by one player. It is safe for
// concurrent use; evaluation must work on a Snapshot so that a deal in
// progress never changes the cards under an evaluator.
type Hand struct {
	mu    sync.RWMutex
	cards []Card
}

// NewHand returns a hand holding the given cards.
func NewHand(cards ...Card) (*Hand, error) {
	h := &Hand{}
	if err := h.Add(cards...); err != nil {
		return nil, err
	}
	return h, nil
}

// Add puts cards into the hand. Either every card is added or, if one of
// them would be a third copy, none is.
func (h *Hand) Add(cards ...Card) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	counts := make(map[Card]int, len(cards))
	for _, c := range cards {
		if !c.suit.Valid() || !c.rank.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		counts[c]++
	}
	for c, n := range counts {
		if h.countLocked(c)+n > MaxCopies {
			return fmt.Errorf("adding %s: %w", c, ErrCopyLimit)
		}
	}
	h.cards = append(h.cards, cards...)
	slices.SortStableFunc(h.cards, compareCards)
	return nil
}

// Remove takes one copy of card out of the hand.
func (h *Hand) Remove(card Card) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := slices.Index(h.cards, card)
	if i == -1 {
		return &CardNotFoundError{Card: card}
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return nil
}

// Snapshot returns a copy of the cards, sorted by suit then rank.
func (h *Hand) Snapshot() []Card {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.cards)
}

// Count returns how many copies of card the hand holds.
func (h *Hand) Count(card Card) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked(card)
}

func (h *Hand) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cards)
}

func (h *Hand) String() string {
	return fmt.Sprintf("Hand with %d cards", h.Len())
}

func (h *Hand) countLocked(card Card) int {
	n := 0
	for _, c := range h.cards {
		if c == card {
			n++
		}
	}
	return n
}

func compareCards(a, b Card) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
