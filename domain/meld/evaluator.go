package meld

import (
	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// Option configures an Evaluator.
type Option func(Evaluator) Evaluator

// Evaluator classifies hands against the meld catalog. It holds no state
// between calls, so one Evaluator may serve many goroutines.
type Evaluator struct {
	rules Rules
	trace TraceFunc
	err   error
}

// NewEvaluator returns an Evaluator using StandardRules unless overridden.
func NewEvaluator(opts ...Option) Evaluator {
	e := Evaluator{rules: StandardRules()}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// WithRules replaces the point table. Invalid rules make every evaluation fail.
func WithRules(r Rules) Option {
	return func(e Evaluator) Evaluator {
		e.rules = r
		e.err = r.Validate()
		return e
	}
}

// WithTracer installs a hook called once per entry after a successful evaluation.
func WithTracer(t TraceFunc) Option {
	return func(e Evaluator) Evaluator {
		e.trace = t
		return e
	}
}

// Rules returns the point table in use.
func (e Evaluator) Rules() Rules {
	return e.rules
}

// EvaluateHand evaluates a snapshot of h. Later changes to h do not affect
// the returned Result.
func (e Evaluator) EvaluateHand(h *pinochle.Hand) (Result, error) {
	return e.Evaluate(h.Snapshot())
}

// Evaluate computes the meld of cards. The slice is only read.
//
// Every category instance of the catalog appears in the result, scored or
// not. Returns an *InvalidHandError if a card is not a pinochle card or
// appears more than pinochle.MaxCopies times, and the Rules.Validate error if
// the evaluator was built with invalid rules.
func (e Evaluator) Evaluate(cards []pinochle.Card) (Result, error) {
	if e.err != nil {
		return Result{}, e.err
	}
	t, err := newTally(cards)
	if err != nil {
		return Result{}, err
	}

	entries := make([]Entry, 0, 2*len(catalog))
	for _, c := range catalog {
		for _, suit := range c.instances() {
			entries = append(entries, e.match(c, suit, t))
		}
	}
	resolveGroups(entries)

	legs := 0
	for _, c := range catalog[Pinochle].Cards {
		legs += t.count(c)
	}

	res := newResult(entries, legs)
	if e.trace != nil {
		for _, en := range res.entries {
			e.trace(en.clone())
		}
	}
	return res, nil
}

// match measures how much of one category instance the hand holds.
func (e Evaluator) match(c Category, suit pinochle.Suit, t tally) Entry {
	slots := c.slots(suit)
	need := c.Copies()

	var held []pinochle.Card
	complete := true
	for _, card := range slots {
		n := min(t.count(card), need)
		if n < need {
			complete = false
		}
		for range n {
			held = append(held, card)
		}
	}

	en := Entry{
		Category:   c.ID,
		Name:       c.instanceName(suit),
		Family:     c.Family,
		Form:       c.Form,
		Suit:       suit,
		Suited:     c.Suited(),
		Cards:      held,
		Completion: float64(len(held)) / float64(need*len(slots)),
		Complete:   complete,
	}
	if complete {
		en.Completion = 1
		en.Points = e.rules.Points(c.ID)
		en.Scored = true
	}
	return en
}

type groupKey struct {
	group  string
	suited bool
	suit   pinochle.Suit
}

// resolveGroups keeps, for every exclusivity group instance, only the most
// valuable complete entry scored. Ties go to the double form.
func resolveGroups(entries []Entry) {
	winners := map[groupKey]int{}
	for i, en := range entries {
		if !en.Complete {
			continue
		}
		k := keyOf(en)
		w, ok := winners[k]
		if !ok || beats(en, entries[w]) {
			winners[k] = i
		}
	}
	for i := range entries {
		en := &entries[i]
		if !en.Complete {
			continue
		}
		w := winners[keyOf(*en)]
		if w == i {
			continue
		}
		en.Points = 0
		en.Scored = false
		en.SupersededBy = entries[w].Name
	}
}

func keyOf(en Entry) groupKey {
	return groupKey{group: catalog[en.Category].Group, suited: en.Suited, suit: en.Suit}
}

func beats(a, b Entry) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	return a.Form > b.Form
}

// tally counts the copies of every card, indexed by suit and rank.
type tally [len(pinochle.Suits)][pinochle.Ace + 1]int

func newTally(cards []pinochle.Card) (tally, error) {
	var t tally
	for _, c := range cards {
		if !c.Suit().Valid() || !c.Rank().Valid() {
			return tally{}, &InvalidHandError{Card: c, Count: 1}
		}
		t[c.Suit()][c.Rank()]++
	}
	for _, s := range pinochle.Suits {
		for _, r := range pinochle.Ranks {
			if n := t[s][r]; n > pinochle.MaxCopies {
				return tally{}, &InvalidHandError{Card: mustCard(s, r), Count: n}
			}
		}
	}
	return t, nil
}

func (t tally) count(c pinochle.Card) int {
	return t[c.Suit()][c.Rank()]
}
