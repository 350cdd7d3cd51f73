// Package engine implements the turn and economic-state rules of Harborlord:
// turn rotation, movement, space actions, rent tiers, loans, stocks and the
// debt/insolvency resolver. All functions mutate the entity.Game they are
// given synchronously and return a Result describing what happened; nothing
// here depends on timers or presentation.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/config"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

type Engine struct {
	game  *entity.Game
	rules config.Rules
	rng   *rand.Rand
}

// New builds an engine over a game. The rng is injected so tests can pin the
// dice and card draws.
func New(game *entity.Game, rules config.Rules, rng *rand.Rand) *Engine {
	return &Engine{
		game:  game,
		rules: rules,
		rng:   rng,
	}
}

func (that *Engine) Game() *entity.Game {
	return that.game
}

// Move describes one resolved player movement for presentation pacing: the
// client may animate the path, but the state change is already final.
type Move struct {
	PlayerID    int   `json:"player_id"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	Path        []int `json:"path"`
	StartPasses int   `json:"start_passes"`
}

// Result collects everything a single operation produced: dice values,
// notices for the notification sink and any movement that happened.
type Result struct {
	Dice    [2]int   `json:"dice,omitempty"`
	Notices []string `json:"notices,omitempty"`
	Moves   []Move   `json:"moves,omitempty"`
}

func (that *Result) noticef(format string, args ...any) {
	that.Notices = append(that.Notices, fmt.Sprintf(format, args...))
}

// ensureActionable - guards every per-turn operation: the game must be in
// play and any pending prompt must be resolved first.
func (that *Engine) ensureActionable() error {
	if err := that.game.ConfirmPlaying(); err != nil {
		return err
	}

	if that.game.Pending != nil {
		return apperror.ErrPendingAction
	}

	return nil
}

// requireCurrentOn - checks the current player is standing on a space of the
// given type, for operations tied to a board location (bank, exchange).
func (that *Engine) requireCurrentOn(spaceType string) error {
	space := that.game.SpaceAt(that.game.CurrentPlayer().Position)
	if space.Type != spaceType {
		return fmt.Errorf("%w: need %s, standing on %s", apperror.ErrWrongSpace, spaceType, space.Type)
	}

	return nil
}

func (that *Engine) rollDie() int {
	return that.rng.Intn(6) + 1
}
