package engine

import (
	"fmt"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// TakeLoan opens a loan at the bank space. The amount due is the principal
// plus the fixed markup; the term counts down once per full round.
func (that *Engine) TakeLoan(amount int) (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if err := that.requireCurrentOn(entity.SpaceBank); err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperror.ErrInvalidChoice)
	}

	current := that.game.CurrentPlayer()

	loan := entity.Loan{
		Principal:      amount,
		TotalDue:       amount * (100 + that.rules.LoanMarkupPct) / 100,
		TurnsRemaining: that.rules.LoanTermRounds,
	}
	current.Loans = append(current.Loans, loan)
	current.Money += amount

	result := &Result{}
	result.noticef("%s took a loan of %d, %d due in %d rounds", current.Name, amount, loan.TotalDue, loan.TurnsRemaining)

	return result, nil
}

// PayLoan repays one loan in full at the bank. Loans are never partially
// repaid; short funds are a recoverable error with no mutation.
func (that *Engine) PayLoan(index int) (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if err := that.requireCurrentOn(entity.SpaceBank); err != nil {
		return nil, err
	}

	current := that.game.CurrentPlayer()

	if index < 0 || index >= len(current.Loans) {
		return nil, apperror.ErrLoanNotFound
	}

	loan := current.Loans[index]
	if current.Money < loan.TotalDue {
		return nil, apperror.ErrInsufficientFunds
	}

	current.Money -= loan.TotalDue
	current.Loans = append(current.Loans[:index], current.Loans[index+1:]...)

	result := &Result{}
	result.noticef("%s repaid a loan: -%d", current.Name, loan.TotalDue)

	return result, nil
}

// LiquidateAsset sells one of the current player's assets voluntarily at the
// bank: a property at the liquidation percentage of its price, or a fleet
// unit at its fixed value.
func (that *Engine) LiquidateAsset(kind string, spacePos int) (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if err := that.requireCurrentOn(entity.SpaceBank); err != nil {
		return nil, err
	}

	current := that.game.CurrentPlayer()
	result := &Result{}

	switch kind {
	case "property":
		if !current.OwnsSpace(spacePos) {
			return nil, apperror.ErrNotOwner
		}

		space := that.game.SpaceAt(spacePos)
		value := space.Price * that.rules.LiquidationPct / 100
		that.releaseProperty(current, spacePos)
		current.Money += value
		result.noticef("%s sold %s for %d", current.Name, space.Name, value)

	case entity.TugPort:
		if current.PortTugs == 0 {
			return nil, apperror.ErrNotOwner
		}

		current.PortTugs--
		if current.DockedTugs.Port > current.PortTugs {
			current.DockedTugs.Port = current.PortTugs
		}
		current.Money += that.rules.PortTugValue
		result.noticef("%s sold a harbor tug for %d", current.Name, that.rules.PortTugValue)

	case entity.TugOcean:
		if !current.HasOceanTug {
			return nil, apperror.ErrNotOwner
		}

		current.HasOceanTug = false
		current.DockedTugs.Ocean = false
		current.Money += that.rules.OceanTugValue
		result.noticef("%s sold the ocean tug for %d", current.Name, that.rules.OceanTugValue)

	default:
		return nil, fmt.Errorf("%w: unknown asset %q", apperror.ErrInvalidChoice, kind)
	}

	return result, nil
}

// CommissionTuglord builds the tuglord at a shipyard the current player owns
// and is standing on.
func (that *Engine) CommissionTuglord() (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	current := that.game.CurrentPlayer()
	space := that.game.SpaceAt(current.Position)

	if space.TuglordBuildCost == 0 {
		return nil, apperror.ErrWrongSpace
	}

	if space.Owner != current.ID {
		return nil, apperror.ErrNotOwner
	}

	if current.HasTuglord {
		return nil, fmt.Errorf("%w: tuglord already commissioned", apperror.ErrAlreadyOwned)
	}

	if current.Money < space.TuglordBuildCost {
		return nil, apperror.ErrInsufficientFunds
	}

	current.Money -= space.TuglordBuildCost
	current.HasTuglord = true

	result := &Result{}
	result.noticef("%s commissioned the tuglord!", current.Name)

	return result, nil
}
