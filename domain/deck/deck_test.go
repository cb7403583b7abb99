package deck

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

func TestNewDeckHoldsTwoOfEach(t *testing.T) {
	d := New()
	if d.Len() != 48 {
		t.Fatalf("expected 48 cards, got %d", d.Len())
	}
	counts := map[pinochle.Card]int{}
	for _, c := range d.Cards() {
		counts[c]++
	}
	if len(counts) != 24 {
		t.Fatalf("expected 24 distinct cards, got %d", len(counts))
	}
	for c, n := range counts {
		if n != 2 {
			t.Fatalf("expected 2 copies of %s, got %d", c, n)
		}
	}
}

func TestDeal(t *testing.T) {
	d := New()
	all := d.Cards()
	dealt, err := d.Deal(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(dealt) != 3 || d.Len() != 45 {
		t.Fatalf("expected 3 dealt and 45 left, got %d and %d", len(dealt), d.Len())
	}
	if dealt[0] != all[len(all)-1] {
		t.Fatalf("expected the top card %s first, got %s", all[len(all)-1], dealt[0])
	}
	if _, err := d.Deal(46); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
	if d.Len() != 45 {
		t.Fatalf("a failed deal must not change the deck, got %d", d.Len())
	}
	if _, err := d.Deal(-1); err == nil {
		t.Fatal("expected error for a negative deal")
	}
	rest, err := d.Deal(45)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 45 || d.Len() != 0 {
		t.Fatalf("expected the whole deck dealt, got %d left", d.Len())
	}
}
