package engine

import "github.com/seaportlabs/harborlord-backend/internal/entity"

// movePlayer steps the current player spaces forward (or backward for event
// effects), one space at a time so that every intermediate pass over the
// start space awards the bonus, then dispatches the landed space's action.
// Eliminated players never move.
func (that *Engine) movePlayer(spaces int, result *Result) {
	current := that.game.CurrentPlayer()
	if current.IsEliminated || spaces == 0 {
		return
	}

	size := that.game.BoardSize()

	step := 1
	count := spaces
	if spaces < 0 {
		step = -1
		count = -spaces
	}

	move := Move{
		PlayerID: current.ID,
		From:     current.Position,
		Path:     make([]int, 0, count),
	}

	for i := 1; i <= count; i++ {
		current.Position = (current.Position + step + size) % size
		move.Path = append(move.Path, current.Position)

		if current.Position == 0 && i < count && step > 0 {
			current.Money += that.rules.PassStartBonus
			move.StartPasses++
			result.noticef("%s passed Home Harbor: +%d", current.Name, that.rules.PassStartBonus)
		}
	}

	move.To = current.Position
	result.Moves = append(result.Moves, move)
	result.noticef("%s arrived at %s", current.Name, that.game.SpaceAt(current.Position).Name)

	that.resolveLanding(result)
}

// advanceToNextProperty scans forward up to one full loop for the first port
// space and moves there; no port within a loop makes the effect a no-op.
func (that *Engine) advanceToNextProperty(skipRent bool, result *Result) {
	current := that.game.CurrentPlayer()
	size := that.game.BoardSize()

	for i := 1; i <= size; i++ {
		pos := (current.Position + i) % size
		if that.game.SpaceAt(pos).Type == entity.SpacePort {
			if skipRent {
				current.SkipNextRent = true
			}
			that.movePlayer(i, result)
			return
		}
	}
}

// returnToLastProperty is the backward counterpart of advanceToNextProperty.
func (that *Engine) returnToLastProperty(result *Result) {
	current := that.game.CurrentPlayer()
	size := that.game.BoardSize()

	for i := 1; i <= size; i++ {
		pos := (current.Position - i + size) % size
		if that.game.SpaceAt(pos).Type == entity.SpacePort {
			that.movePlayer(-i, result)
			return
		}
	}
}
