package engine

import (
	"fmt"
	"sort"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// AddPlayer registers a new player during setup. IDs are assigned once and
// never reused, even after removals.
func (that *Engine) AddPlayer(name string) (*entity.Player, error) {
	if !that.game.IsSetup() {
		return nil, apperror.ErrGameInProgress
	}

	if len(that.game.Players) >= that.rules.MaxPlayers {
		return nil, apperror.ErrTooManyPlayers
	}

	id := that.game.NextPlayerID
	that.game.NextPlayerID++

	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}

	player := entity.NewPlayer(id, name, that.rules.StartingMoney)
	that.game.Players = append(that.game.Players, player)

	return player, nil
}

func (that *Engine) RenamePlayer(id int, name string) error {
	if !that.game.IsSetup() {
		return apperror.ErrGameInProgress
	}

	player, err := that.game.PlayerByID(id)
	if err != nil {
		return err
	}

	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}
	player.Name = name

	return nil
}

func (that *Engine) RemovePlayer(id int) error {
	if !that.game.IsSetup() {
		return apperror.ErrGameInProgress
	}

	if _, err := that.game.PlayerByID(id); err != nil {
		return err
	}

	kept := that.game.Players[:0]
	for _, player := range that.game.Players {
		if player.ID != id {
			kept = append(kept, player)
		}
	}
	that.game.Players = kept

	return nil
}

// StartGame rolls 2d6 per player, freezes the descending-roll play order and
// moves the game into the playing phase. One-way transition.
func (that *Engine) StartGame() (*Result, error) {
	if !that.game.IsSetup() {
		return nil, apperror.ErrGameInProgress
	}

	if len(that.game.Players) < that.rules.MinPlayers {
		return nil, apperror.ErrNotEnoughPlayers
	}

	result := &Result{}

	for _, player := range that.game.Players {
		player.OrderRoll = that.rollDie() + that.rollDie()
		result.noticef("%s rolled %d for turn order", player.Name, player.OrderRoll)
	}

	sort.SliceStable(that.game.Players, func(i, j int) bool {
		return that.game.Players[i].OrderRoll > that.game.Players[j].OrderRoll
	})

	that.game.Phase = entity.PhasePlaying
	that.game.CurrentPlayerIndex = 0
	that.game.CurrentRound = 1
	that.game.DiceRolled = false

	result.noticef("%s starts!", that.game.CurrentPlayer().Name)

	return result, nil
}
