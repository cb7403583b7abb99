package meld

import (
	"fmt"
	"slices"
	"strings"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// Entry is the outcome of one category instance, e.g. "marriage of Hearts".
//
// Complete entries hold every card of the pattern. Among complete entries of
// the same exclusivity group only the most valuable is Scored; the others
// keep Points at zero and name the winner in SupersededBy. Incomplete entries
// list the cards already held and the fraction of the pattern they cover.
type Entry struct {
	Category     CategoryID
	Name         string
	Family       Family
	Form         Form
	// Suit is meaningful only when Suited is set. Unsuited entries hold the zero Suit.
	Suit         pinochle.Suit
	Suited       bool
	Cards        []pinochle.Card
	Points       int
	Completion   float64
	Complete     bool
	Scored       bool
	SupersededBy string
}

func (e Entry) String() string {
	cards := make([]string, len(e.Cards))
	for i, c := range e.Cards {
		cards[i] = c.String()
	}
	var status string
	switch {
	case e.Scored:
		status = fmt.Sprintf("%d points", e.Points)
	case e.SupersededBy != "":
		status = "superseded by " + e.SupersededBy
	default:
		status = fmt.Sprintf("%.0f%%", e.Completion*100)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Name, strings.Join(cards, " "), status)
}

func (e Entry) clone() Entry {
	e.Cards = slices.Clone(e.Cards)
	return e
}

// Result is the meld of one hand. It holds one entry per category instance
// of the catalog, in catalog order, and is never modified once built.
type Result struct {
	entries []Entry
	total   int
	legs    int
}

func newResult(entries []Entry, legs int) Result {
	total := 0
	for _, e := range entries {
		if e.Scored {
			total += e.Points
		}
	}
	return Result{entries: entries, total: total, legs: legs}
}

// Entries returns a copy of every entry.
func (r Result) Entries() []Entry {
	return r.filter(func(Entry) bool { return true })
}

// Scored returns the entries that award points.
func (r Result) Scored() []Entry {
	return r.filter(func(e Entry) bool { return e.Scored })
}

// Partial returns the incomplete entries for which at least one card is held.
func (r Result) Partial() []Entry {
	return r.filter(func(e Entry) bool { return !e.Complete && e.Completion > 0 })
}

// Lookup returns the entry of category id. The suit is ignored for
// categories that are not evaluated per suit.
func (r Result) Lookup(id CategoryID, suit pinochle.Suit) (Entry, bool) {
	for _, e := range r.entries {
		if e.Category == id && (!e.Suited || e.Suit == suit) {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// ByName returns the entry with the given name, e.g. "double run of Spades".
func (r Result) ByName(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// Total is the meld value of the hand: the sum of the scored entries.
func (r Result) Total() int {
	return r.total
}

// Legs is the number of pinochle cards (J♦ and Q♠) held, from 0 to 4.
func (r Result) Legs() int {
	return r.legs
}

func (r Result) Len() int {
	return len(r.entries)
}

func (r Result) filter(keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}
