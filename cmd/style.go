package main

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/pinochle/domain/meld"
	"github.com/luca-patrignani/pinochle/domain/pinochle"
	"github.com/luca-patrignani/pinochle/domain/table"
	"github.com/pterm/pterm"
)

// styledCard colours the suit glyph the way it is printed on the card.
func styledCard(c pinochle.Card) string {
	if c.Suit().Red() {
		return c.Rank().String() + pterm.LightRed(c.Suit().Symbol())
	}
	return c.Rank().String() + pterm.Black(c.Suit().Symbol())
}

func styledCards(cards []pinochle.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = styledCard(c)
	}
	return strings.Join(parts, " ")
}

// meldRows lists the scored melds first, then the lesser forms they
// superseded, then every meld the hand is at least halfway to.
func meldRows(res meld.Result) [][]string {
	rows := [][]string{{"Meld", "Cards", "Points", "Progress"}}
	for _, e := range res.Scored() {
		rows = append(rows, []string{e.Name, styledCards(e.Cards), fmt.Sprint(e.Points), "100%"})
	}
	for _, e := range res.Entries() {
		if e.SupersededBy != "" {
			rows = append(rows, []string{e.Name, styledCards(e.Cards), "0", "in " + e.SupersededBy})
		}
	}
	for _, e := range res.Partial() {
		if e.Completion >= 0.5 {
			rows = append(rows, []string{e.Name, styledCards(e.Cards), "0", fmt.Sprintf("%.0f%%", e.Completion*100)})
		}
	}
	return rows
}

func getMeldPanel(title string, hand []pinochle.Card, res meld.Result, main bool) (pterm.Panel, error) {
	hpadding := 2
	if main {
		hpadding = 6
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	tbl, err := pterm.DefaultTable.WithHasHeader().WithData(meldRows(res)).Srender()
	if err != nil {
		return pterm.Panel{}, err
	}
	summary := pterm.Sprintf("Meld: %s   Legs of pinochle: %d", pterm.LightGreen(res.Total()), res.Legs())
	content := pterm.BgGreen.Sprint(" "+styledCards(hand)+" ") + "\n\n" + tbl + "\n" + summary
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprint(content)}, nil
}

func getTeamPanel(tb *table.Table, credited [2]int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for i, team := range tb.Teams {
		names := make([]string, len(team.Players))
		for j, p := range team.Players {
			names[j] = p.Name
		}
		info += pterm.Sprintfln("%s (%s): meld %d, score %d",
			pterm.LightCyan(team.Name), strings.Join(names, " & "), credited[i], team.Score)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TEAMS|")).WithTitleTopCenter().Sprint(info)}
}

func printTable(tb *table.Table, melds []table.PlayerMeld, credited [2]int) error {
	var rows [][]pterm.Panel
	for i := 0; i < len(melds); i += 2 {
		var row []pterm.Panel
		for _, m := range melds[i:min(i+2, len(melds))] {
			panel, err := getMeldPanel(m.Player.Name, m.Player.Hand.Snapshot(), m.Meld, false)
			if err != nil {
				return err
			}
			row = append(row, panel)
		}
		rows = append(rows, row)
	}
	rows = append(rows, []pterm.Panel{getTeamPanel(tb, credited)})
	return pterm.DefaultPanel.WithPanels(rows).Render()
}
