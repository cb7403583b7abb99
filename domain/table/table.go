package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/luca-patrignani/pinochle/domain/deck"
	"github.com/luca-patrignani/pinochle/domain/meld"
	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

const (
	// Seats is the number of players of partnership pinochle.
	Seats = 4
	// PacketSize is the number of cards handed to a player at a time.
	PacketSize = 3
)

// Table seats four players in two partnerships: partners sit across from
// each other, so seats 0 and 2 play against seats 1 and 3.
type Table struct {
	Players []*Player
	Teams   [2]*Team
	Dealer  int
}

// New seats the named players in order.
func New(names []string) (*Table, error) {
	if len(names) != Seats {
		return nil, fmt.Errorf("a table needs %d players, got %d", Seats, len(names))
	}
	t := &Table{
		Teams: [2]*Team{{Name: "Team 1"}, {Name: "Team 2"}},
	}
	for i, name := range names {
		p := NewPlayer(name)
		t.Players = append(t.Players, p)
		if err := t.Teams[i%2].AddPlayer(p); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Deal empties every hand and deals the whole deck in packets, starting
// from the player left of the dealer.
func (t *Table) Deal(d *deck.Deck, packet int) error {
	if packet <= 0 {
		return fmt.Errorf("invalid packet size %d", packet)
	}
	if d.Len()%len(t.Players) != 0 {
		return fmt.Errorf("%d cards cannot be split evenly among %d players", d.Len(), len(t.Players))
	}
	for _, p := range t.Players {
		p.Hand = &pinochle.Hand{}
	}
	seat := (t.Dealer + 1) % len(t.Players)
	for d.Len() > 0 {
		if err := t.Players[seat].Draw(d, min(packet, d.Len())); err != nil {
			return err
		}
		seat = (seat + 1) % len(t.Players)
	}
	return nil
}

// NextDealer passes the deal to the left.
func (t *Table) NextDealer() {
	t.Dealer = (t.Dealer + 1) % len(t.Players)
}

// FindPlayerIndex returns the seat of the player with the given ID, or -1 if not found.
func (t *Table) FindPlayerIndex(id uuid.UUID) int {
	for i, p := range t.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// TeamOf returns the partnership p belongs to, or nil.
func (t *Table) TeamOf(p *Player) *Team {
	for _, team := range t.Teams {
		if team.Has(p) {
			return team
		}
	}
	return nil
}

// PlayerMeld pairs a player with the meld of their hand.
type PlayerMeld struct {
	Player *Player
	Meld   meld.Result
}

// EvaluateMeld evaluates every hand concurrently, one goroutine per player.
// Snapshots are taken before any evaluation starts, so the results describe
// the hands as they were when EvaluateMeld was called.
func (t *Table) EvaluateMeld(ev meld.Evaluator) ([]PlayerMeld, error) {
	snapshots := make([][]pinochle.Card, len(t.Players))
	for i, p := range t.Players {
		snapshots[i] = p.Hand.Snapshot()
	}

	melds := make([]PlayerMeld, len(t.Players))
	errs := make([]error, len(t.Players))
	var wg sync.WaitGroup
	for i, p := range t.Players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ev.Evaluate(snapshots[i])
			if err != nil {
				errs[i] = fmt.Errorf("evaluating %s: %w", p.Name, err)
				return
			}
			melds[i] = PlayerMeld{Player: p, Meld: res}
		}()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return melds, nil
}

// TeamMeld sums the meld of the partners of team.
func TeamMeld(melds []PlayerMeld, team *Team) int {
	total := 0
	for _, m := range melds {
		if team.Has(m.Player) {
			total += m.Meld.Total()
		}
	}
	return total
}

// ScoreMeld credits every team with the meld of its partners and returns
// the points credited, indexed like Teams.
func (t *Table) ScoreMeld(melds []PlayerMeld) [2]int {
	var credited [2]int
	for i, team := range t.Teams {
		credited[i] = TeamMeld(melds, team)
		team.AddScore(credited[i])
	}
	return credited
}
