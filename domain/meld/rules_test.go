package meld

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

func TestStandardRules(t *testing.T) {
	r := StandardRules()
	expected := map[CategoryID]int{
		AcesAround:       100,
		DoubleAcesAround: 1000,
		KingsAround:      80,
		QueensAround:     60,
		JacksAround:      40,
		Marriage:         40,
		DoubleMarriage:   80,
		Run:              150,
		DoubleRun:        300,
		Pinochle:         40,
		DoublePinochle:   300,
	}
	for id, p := range expected {
		if r.Points(id) != p {
			t.Fatalf("%s: expected %d, got %d", id, p, r.Points(id))
		}
	}
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestRulesWithDoesNotAlias(t *testing.T) {
	std := StandardRules()
	changed := std.With(Run, 250)
	if std.Points(Run) != RunPoints {
		t.Fatalf("With modified the receiver: %d", std.Points(Run))
	}
	if changed.Points(Run) != 250 {
		t.Fatalf("expected 250, got %d", changed.Points(Run))
	}
	if changed.Points(numCategories) != 0 {
		t.Fatal("unknown category must be worth nothing")
	}
}

func TestRulesValidate(t *testing.T) {
	if err := StandardRules().With(Pinochle, -1).Validate(); err == nil {
		t.Fatal("expected error for negative points")
	}
}

func TestRulesByName(t *testing.T) {
	r, err := RulesByName("Trump-Agnostic")
	if err != nil {
		t.Fatal(err)
	}
	if r.Points(Marriage) != TrumpAgnosticMarriagePoints {
		t.Fatalf("expected %d, got %d", TrumpAgnosticMarriagePoints, r.Points(Marriage))
	}
	if r, err := RulesByName(""); err != nil || r.Name != StandardRulesName {
		t.Fatalf("expected standard rules by default, got %q, %v", r.Name, err)
	}
	if _, err := RulesByName("bezique"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestCatalogShape(t *testing.T) {
	cats := Catalog()
	if len(cats) != int(numCategories) {
		t.Fatalf("expected %d categories, got %d", numCategories, len(cats))
	}
	groups := map[string][]Form{}
	for i, c := range cats {
		if c.ID != CategoryID(i) {
			t.Fatalf("category %s at position %d", c.Name, i)
		}
		if c.ID.String() != c.Name {
			t.Fatalf("expected %s, got %s", c.Name, c.ID)
		}
		groups[c.Group] = append(groups[c.Group], c.Form)
	}
	for g, forms := range groups {
		if len(forms) != 2 || forms[0] != Single || forms[1] != Double {
			t.Fatalf("group %s must hold a single and a double form, got %v", g, forms)
		}
	}
	cats[Pinochle].Cards[0] = pinochle.Card{}
	if catalog[Pinochle].Cards[0].Short() != "JD" {
		t.Fatal("Catalog exposed the internal table")
	}
}

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEvaluator(WithTracer(LogTracer(logger)))
	if _, err := e.Evaluate(pinochle.MustParseCards("JD JD QS QS")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `meld="double pinochle" points=300`) {
		t.Fatalf("missing double pinochle record in %s", out)
	}
	if !strings.Contains(out, `superseded_by="double pinochle"`) {
		t.Fatalf("missing superseded record in %s", out)
	}

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	e = NewEvaluator(WithTracer(LogTracer(quiet)))
	if _, err := e.Evaluate(pinochle.MustParseCards("JD QS")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output above debug level, got %s", buf.String())
	}
}
