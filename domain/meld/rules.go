package meld

import (
	"fmt"
	"strings"
)

// CategoryID identifies a meld category of the catalog.
type CategoryID uint8

const (
	AcesAround CategoryID = iota
	DoubleAcesAround
	KingsAround
	DoubleKingsAround
	QueensAround
	DoubleQueensAround
	JacksAround
	DoubleJacksAround
	Marriage
	DoubleMarriage
	Run
	DoubleRun
	Pinochle
	DoublePinochle
	numCategories
)

// Point values of the standard meld table.
const (
	AcesAroundPoints         = 100
	DoubleAcesAroundPoints   = 1000
	KingsAroundPoints        = 80
	DoubleKingsAroundPoints  = 800
	QueensAroundPoints       = 60
	DoubleQueensAroundPoints = 600
	JacksAroundPoints        = 40
	DoubleJacksAroundPoints  = 400
	MarriagePoints           = 40
	DoubleMarriagePoints     = 80
	RunPoints                = 150
	DoubleRunPoints          = 300
	PinochlePoints           = 40
	DoublePinochlePoints     = 300

	// TrumpAgnosticMarriagePoints is the marriage value when no suit is trump.
	TrumpAgnosticMarriagePoints = 20
)

const (
	StandardRulesName      = "standard"
	TrumpAgnosticRulesName = "trump-agnostic"
)

// Rules is the point table used by an Evaluator. The zero value awards
// nothing; start from StandardRules and override single entries with With.
type Rules struct {
	Name   string
	points [numCategories]int
}

// StandardRules returns the published pinochle meld table.
func StandardRules() Rules {
	return Rules{
		Name: StandardRulesName,
		points: [numCategories]int{
			AcesAround:         AcesAroundPoints,
			DoubleAcesAround:   DoubleAcesAroundPoints,
			KingsAround:        KingsAroundPoints,
			DoubleKingsAround:  DoubleKingsAroundPoints,
			QueensAround:       QueensAroundPoints,
			DoubleQueensAround: DoubleQueensAroundPoints,
			JacksAround:        JacksAroundPoints,
			DoubleJacksAround:  DoubleJacksAroundPoints,
			Marriage:           MarriagePoints,
			DoubleMarriage:     DoubleMarriagePoints,
			Run:                RunPoints,
			DoubleRun:          DoubleRunPoints,
			Pinochle:           PinochlePoints,
			DoublePinochle:     DoublePinochlePoints,
		},
	}
}

// TrumpAgnosticRules is the standard table with marriages worth
// TrumpAgnosticMarriagePoints.
func TrumpAgnosticRules() Rules {
	r := StandardRules().With(Marriage, TrumpAgnosticMarriagePoints)
	r.Name = TrumpAgnosticRulesName
	return r
}

// RulesByName returns the rule variant registered under name.
func RulesByName(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StandardRulesName, "":
		return StandardRules(), nil
	case TrumpAgnosticRulesName:
		return TrumpAgnosticRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown rule variant %q", name)
	}
}

// Points returns the value awarded for a scored instance of the category.
func (r Rules) Points(id CategoryID) int {
	if id >= numCategories {
		return 0
	}
	return r.points[id]
}

// With returns a copy of r where category id is worth points.
func (r Rules) With(id CategoryID, points int) Rules {
	if id < numCategories {
		r.points[id] = points
	}
	return r
}

// Validate checks that every category has a non-negative value.
func (r Rules) Validate() error {
	for id, p := range r.points {
		if p < 0 {
			return fmt.Errorf("rules %q: negative points %d for %s", r.Name, p, CategoryID(id))
		}
	}
	return nil
}

func (id CategoryID) String() string {
	if id >= numCategories {
		return fmt.Sprintf("category(%d)", id)
	}
	return catalog[id].Name
}
