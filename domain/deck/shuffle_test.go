package deck

import (
	"slices"
	"testing"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

func TestShuffleKeepsCards(t *testing.T) {
	d := New()
	before := d.Cards()
	d.Shuffle(RandomStream())
	after := d.Cards()
	if len(after) != len(before) {
		t.Fatalf("expected %d cards, got %d", len(before), len(after))
	}
	sortCards := func(cs []pinochle.Card) {
		slices.SortFunc(cs, func(a, b pinochle.Card) int {
			switch {
			case a.Less(b):
				return -1
			case b.Less(a):
				return 1
			}
			return 0
		})
	}
	sortCards(before)
	sortCards(after)
	if !slices.Equal(before, after) {
		t.Fatal("shuffle changed the multiset of cards")
	}
}

func TestSeededShuffleIsReproducible(t *testing.T) {
	a, b, c := New(), New(), New()
	a.Shuffle(SeededStream([]byte("round-1")))
	b.Shuffle(SeededStream([]byte("round-1")))
	c.Shuffle(SeededStream([]byte("round-2")))
	if !slices.Equal(a.Cards(), b.Cards()) {
		t.Fatal("same seed produced different decks")
	}
	if slices.Equal(a.Cards(), c.Cards()) {
		t.Fatal("different seeds produced the same deck")
	}
	if slices.Equal(a.Cards(), New().Cards()) {
		t.Fatal("seeded shuffle left the deck in order")
	}
}

func TestPermutation(t *testing.T) {
	perm := permutation(Size, RandomStream())
	seen := make([]bool, Size)
	for _, p := range perm {
		if p < 0 || p >= Size || seen[p] {
			t.Fatalf("not a permutation: %v", perm)
		}
		seen[p] = true
	}
	if len(permutation(0, RandomStream())) != 0 {
		t.Fatal("expected an empty permutation")
	}
}
