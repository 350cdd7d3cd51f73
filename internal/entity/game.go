package entity

import (
	"fmt"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
)

// Game phases. The transition is one-way: setup -> playing -> finished.
const (
	PhaseSetup    = "setup"
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// Pending action kinds. At most one pending action exists per game; the
// current player must resolve it before rolling or ending the turn.
const (
	PendingPurchase      = "purchase"
	PendingTugPurchase   = "tug_purchase"
	PendingDocking       = "docking"
	PendingEventChoice   = "event_choice"
	PendingTrainingOffer = "training_offer"
	PendingExam          = "exam"
)

// Option is one labeled choice of a pending action. ID is the value the
// client sends back to resolve it.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Exam is a certification question awaiting an answer.
type Exam struct {
	Certificate string   `json:"certificate"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
}

// Pending describes a prompt the presentation layer must render and resolve
// through an explicit follow-up call. It replaces the original free-form
// callback wiring with a tagged variant.
type Pending struct {
	Kind     string   `json:"kind"`
	SpacePos int      `json:"space_pos"`
	EventID  int      `json:"event_id,omitempty"`
	Options  []Option `json:"options,omitempty"`
	Exam     *Exam    `json:"exam,omitempty"`
}

type Game struct {
	ID                 string    `json:"id"`
	Players            []*Player `json:"players"`
	Board              []*Space  `json:"board"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	CurrentRound       int       `json:"current_round"`
	DiceRolled         bool      `json:"dice_rolled"`
	Phase              string    `json:"phase"`
	WinnerID           int       `json:"winner_id,omitempty"`
	Pending            *Pending  `json:"pending,omitempty"`

	// NextPlayerID is the next id to assign during setup; ids are stable and
	// never reused even after a removal.
	NextPlayerID int `json:"next_player_id"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:           id,
		Players:      []*Player{},
		Board:        DefaultBoard(),
		CurrentRound: 1,
		Phase:        PhaseSetup,
		NextPlayerID: 1,
	}
}

func (that *Game) BoardSize() int {
	return len(that.Board)
}

func (that *Game) SpaceAt(pos int) *Space {
	return that.Board[pos]
}

func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.CurrentPlayerIndex]
}

func (that *Game) PlayerByID(id int) (*Player, error) {
	for _, player := range that.Players {
		if player.ID == id {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", apperror.ErrPlayerNotFound, id)
}

// ActivePlayers returns players still in the game.
func (that *Game) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if !player.IsEliminated {
			active = append(active, player)
		}
	}
	return active
}

func (that *Game) IsSetup() bool {
	return that.Phase == PhaseSetup
}

func (that *Game) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *Game) IsFinished() bool {
	return that.Phase == PhaseFinished
}

func (that *Game) ConfirmPlaying() error {
	switch {
	case that.IsSetup():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}
