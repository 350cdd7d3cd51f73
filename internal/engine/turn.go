package engine

import (
	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// RollDice resolves the current player's roll: two independent dice, movement
// with pass-start bonuses, and the landed space's action. Rolling twice in
// one turn is rejected.
func (that *Engine) RollDice() (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if that.game.DiceRolled {
		return nil, apperror.ErrDiceAlreadyRolled
	}

	result := &Result{}
	result.Dice[0] = that.rollDie()
	result.Dice[1] = that.rollDie()

	that.game.DiceRolled = true

	that.movePlayer(result.Dice[0]+result.Dice[1], result)

	return result, nil
}

// EndTurn hands play to the next active player. It runs the new player's
// start-of-turn obligations in order: loan maturity, stockholder dividends,
// docking decay. A player under a skip-turn effect gets a pre-resolved ghost
// turn which must still be ended explicitly.
func (that *Engine) EndTurn() (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if !that.game.DiceRolled {
		return nil, apperror.ErrDiceNotRolled
	}

	result := &Result{}

	that.advanceToNextPlayer(result)
	that.game.DiceRolled = false

	current := that.game.CurrentPlayer()

	if current.SkipNextTurn {
		current.SkipNextTurn = false
		that.game.DiceRolled = true
		result.noticef("%s loses the turn", current.Name)
		return result, nil
	}

	that.collectMaturedLoans(current, result)

	if !current.IsEliminated {
		that.payDividends(current, result)
	}

	if !current.IsEliminated {
		that.checkDockingStatus(current, result)
	}

	// Start-of-turn obligations can eliminate the player; the resulting
	// ghost turn still has to be ended explicitly.
	if current.IsEliminated && !that.game.IsFinished() {
		that.game.DiceRolled = true
	}

	return result, nil
}

// advanceToNextPlayer moves the index past eliminated players, bumping the
// round counter every time the rotation wraps through index 0.
func (that *Engine) advanceToNextPlayer(result *Result) {
	for {
		that.game.CurrentPlayerIndex = (that.game.CurrentPlayerIndex + 1) % len(that.game.Players)

		if that.game.CurrentPlayerIndex == 0 {
			that.game.CurrentRound++
		}

		if !that.game.CurrentPlayer().IsEliminated {
			return
		}
	}
}

// collectMaturedLoans decrements every loan once per full round, when the
// borrower's own turn comes back around. A loan reaching zero turns is
// force-collected by the bank through the mandatory-payment path.
func (that *Engine) collectMaturedLoans(player *entity.Player, result *Result) {
	var due []entity.Loan
	remaining := player.Loans[:0]

	for _, loan := range player.Loans {
		loan.TurnsRemaining--
		if loan.TurnsRemaining <= 0 {
			due = append(due, loan)
			continue
		}
		remaining = append(remaining, loan)
	}
	player.Loans = remaining

	for _, loan := range due {
		if player.IsEliminated {
			return
		}
		result.noticef("%s: loan of %d matured, bank collects %d", player.Name, loan.Principal, loan.TotalDue)
		that.handleMandatoryPayment(player, loan.TotalDue, "loan maturity", nil, result)
	}
}

// payDividends pays every stockholder of the current player's properties
// their per-share cut before the owner acts. The obligation is mandatory:
// a shortfall escalates into liquidation or bankruptcy.
func (that *Engine) payDividends(owner *entity.Player, result *Result) {
	properties := make([]int, len(owner.Properties))
	copy(properties, owner.Properties)

	for _, holder := range that.game.Players {
		if holder.ID == owner.ID || holder.IsEliminated {
			continue
		}

		for _, pos := range properties {
			if owner.IsEliminated {
				break
			}

			// An earlier escalation in this same pass may have stripped
			// this holding; later-listed ones can still be owned.
			if !owner.OwnsSpace(pos) {
				continue
			}

			shares := holder.Stocks[pos]
			if shares == 0 {
				continue
			}

			space := that.game.SpaceAt(pos)
			payout := space.Rent[0] * that.rules.DividendPct / 100 * shares
			if payout == 0 {
				continue
			}

			result.noticef("%s pays %s %d in dividends (%s)", owner.Name, holder.Name, payout, space.Name)
			that.handleMandatoryPayment(owner, payout, "dividends", holder, result)
		}
	}
}

// checkDockingStatus runs the per-turn docking decay for the current player
// only; at exactly zero all docked units become operative again.
func (that *Engine) checkDockingStatus(player *entity.Player, result *Result) {
	if player.DockedTugs.TurnsRemaining <= 0 {
		return
	}

	player.DockedTugs.TurnsRemaining--

	if player.DockedTugs.TurnsRemaining == 0 {
		player.DockedTugs.Port = 0
		player.DockedTugs.Ocean = false
		player.DockedTugs.Tuglord = false
		result.noticef("%s: tugs released from docking", player.Name)
		return
	}

	result.noticef("%s: tugs docked for %d more turns", player.Name, player.DockedTugs.TurnsRemaining)
}
