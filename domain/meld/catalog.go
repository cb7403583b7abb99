package meld

import (
	"slices"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// Family groups categories that are detected the same way.
type Family uint8

const (
	FamilyAround Family = iota
	FamilyMarriage
	FamilyRun
	FamilyPinochle
)

func (f Family) String() string {
	switch f {
	case FamilyAround:
		return "around"
	case FamilyMarriage:
		return "marriage"
	case FamilyRun:
		return "run"
	case FamilyPinochle:
		return "pinochle"
	default:
		return "?"
	}
}

// Form tells whether a category needs one or both copies of its cards.
type Form uint8

const (
	Single Form = iota + 1
	Double
)

// SuitMode tells how the pattern of a category is laid over the suits.
type SuitMode uint8

const (
	// EachSuit requires the pattern ranks in every one of the four suits.
	EachSuit SuitMode = iota
	// PerSuit evaluates the pattern ranks once per suit, one instance each.
	PerSuit
	// FixedCards requires exactly the listed cards.
	FixedCards
)

// Category describes one row of the meld table. Categories sharing a Group
// compete for the same cards: on any instance only one of them scores.
type Category struct {
	ID     CategoryID
	Name   string
	Family Family
	Form   Form
	Group  string
	Mode   SuitMode
	Ranks  []pinochle.Rank
	Cards  []pinochle.Card
}

// Copies is the number of copies of every pattern card the category needs.
func (c Category) Copies() int {
	if c.Form == Double {
		return pinochle.MaxCopies
	}
	return 1
}

// Suited reports whether the category is evaluated separately for each suit.
func (c Category) Suited() bool {
	return c.Mode == PerSuit
}

// slots returns the distinct cards the pattern is made of for one instance.
func (c Category) slots(suit pinochle.Suit) []pinochle.Card {
	var out []pinochle.Card
	switch c.Mode {
	case EachSuit:
		for _, s := range pinochle.Suits {
			for _, r := range c.Ranks {
				out = append(out, mustCard(s, r))
			}
		}
	case PerSuit:
		for _, r := range c.Ranks {
			out = append(out, mustCard(suit, r))
		}
	case FixedCards:
		out = append(out, c.Cards...)
	}
	return out
}

// instances returns the suits the category is evaluated for. Unsuited
// categories have a single instance under the zero Suit.
func (c Category) instances() []pinochle.Suit {
	if c.Suited() {
		return pinochle.Suits[:]
	}
	return []pinochle.Suit{0}
}

func (c Category) instanceName(suit pinochle.Suit) string {
	if c.Suited() {
		return c.Name + " of " + suit.String()
	}
	return c.Name
}

var (
	runRanks      = []pinochle.Rank{pinochle.Jack, pinochle.Queen, pinochle.King, pinochle.Ten, pinochle.Ace}
	marriageRanks = []pinochle.Rank{pinochle.King, pinochle.Queen}
	pinochleCards = []pinochle.Card{
		mustCard(pinochle.Diamonds, pinochle.Jack),
		mustCard(pinochle.Spades, pinochle.Queen),
	}
)

// catalog is indexed by CategoryID.
var catalog = [numCategories]Category{
	AcesAround:         around(AcesAround, "aces around", pinochle.Ace, Single),
	DoubleAcesAround:   around(DoubleAcesAround, "double aces around", pinochle.Ace, Double),
	KingsAround:        around(KingsAround, "kings around", pinochle.King, Single),
	DoubleKingsAround:  around(DoubleKingsAround, "double kings around", pinochle.King, Double),
	QueensAround:       around(QueensAround, "queens around", pinochle.Queen, Single),
	DoubleQueensAround: around(DoubleQueensAround, "double queens around", pinochle.Queen, Double),
	JacksAround:        around(JacksAround, "jacks around", pinochle.Jack, Single),
	DoubleJacksAround:  around(DoubleJacksAround, "double jacks around", pinochle.Jack, Double),
	Marriage:           {ID: Marriage, Name: "marriage", Family: FamilyMarriage, Form: Single, Group: "marriage", Mode: PerSuit, Ranks: marriageRanks},
	DoubleMarriage:     {ID: DoubleMarriage, Name: "double marriage", Family: FamilyMarriage, Form: Double, Group: "marriage", Mode: PerSuit, Ranks: marriageRanks},
	Run:                {ID: Run, Name: "run", Family: FamilyRun, Form: Single, Group: "run", Mode: PerSuit, Ranks: runRanks},
	DoubleRun:          {ID: DoubleRun, Name: "double run", Family: FamilyRun, Form: Double, Group: "run", Mode: PerSuit, Ranks: runRanks},
	Pinochle:           {ID: Pinochle, Name: "pinochle", Family: FamilyPinochle, Form: Single, Group: "pinochle", Mode: FixedCards, Cards: pinochleCards},
	DoublePinochle:     {ID: DoublePinochle, Name: "double pinochle", Family: FamilyPinochle, Form: Double, Group: "pinochle", Mode: FixedCards, Cards: pinochleCards},
}

func around(id CategoryID, name string, rank pinochle.Rank, form Form) Category {
	return Category{
		ID:     id,
		Name:   name,
		Family: FamilyAround,
		Form:   form,
		Group:  rank.String() + " around",
		Mode:   EachSuit,
		Ranks:  []pinochle.Rank{rank},
	}
}

// Catalog returns a copy of the meld table in evaluation order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		c.Ranks = slices.Clone(c.Ranks)
		c.Cards = slices.Clone(c.Cards)
		out[i] = c
	}
	return out
}

func mustCard(s pinochle.Suit, r pinochle.Rank) pinochle.Card {
	c, err := pinochle.NewCard(s, r)
	if err != nil {
		panic(err)
	}
	return c
}
