package table

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/luca-patrignani/pinochle/domain/deck"
	"github.com/luca-patrignani/pinochle/domain/pinochle"
)

// TeamSize is the number of partners in a team.
const TeamSize = 2

var (
	ErrTeamFull        = errors.New("team is full")
	ErrPlayerNotInTeam = errors.New("player not in team")
)

type Player struct {
	ID   uuid.UUID
	Name string
	Hand *pinochle.Hand
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
		Hand: &pinochle.Hand{},
	}
}

// Draw moves n cards from the top of d into the player's hand.
func (p *Player) Draw(d *deck.Deck, n int) error {
	cards, err := d.Deal(n)
	if err != nil {
		return err
	}
	if err := p.Hand.Add(cards...); err != nil {
		return fmt.Errorf("player %s: %w", p.Name, err)
	}
	return nil
}

func (p *Player) String() string {
	return "Player " + p.Name
}

// Team is a partnership whose meld and tricks are scored together.
type Team struct {
	Name    string
	Score   int
	Players []*Player
}

func (t *Team) AddPlayer(p *Player) error {
	if len(t.Players) == TeamSize {
		return fmt.Errorf("adding %s to %s: %w", p.Name, t.Name, ErrTeamFull)
	}
	t.Players = append(t.Players, p)
	return nil
}

func (t *Team) RemovePlayer(p *Player) error {
	i := slices.Index(t.Players, p)
	if i == -1 {
		return fmt.Errorf("removing %s from %s: %w", p.Name, t.Name, ErrPlayerNotInTeam)
	}
	t.Players = slices.Delete(t.Players, i, i+1)
	return nil
}

func (t *Team) AddScore(points int) {
	t.Score += points
}

// Has reports whether p plays for the team.
func (t *Team) Has(p *Player) bool {
	return slices.Contains(t.Players, p)
}

func (t *Team) String() string {
	return fmt.Sprintf("%s with score of %d", t.Name, t.Score)
}
