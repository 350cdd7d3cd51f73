package engine

import (
	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// BuyStock buys one share in another active player's property at the stock
// exchange. The share price goes to the property's owner, not the bank; the
// global cap per property is enforced before any mutation.
func (that *Engine) BuyStock(spacePos int) (*Result, error) {
	if err := that.ensureActionable(); err != nil {
		return nil, err
	}

	if err := that.requireCurrentOn(entity.SpaceStockExchange); err != nil {
		return nil, err
	}

	// spacePos comes straight off the wire; reject it before indexing.
	if spacePos < 0 || spacePos >= that.game.BoardSize() {
		return nil, apperror.ErrNotForSale
	}

	current := that.game.CurrentPlayer()
	space := that.game.SpaceAt(spacePos)

	if !space.IsOwnable() || !space.IsOwned() {
		return nil, apperror.ErrNotForSale
	}

	if space.Owner == current.ID {
		return nil, apperror.ErrOwnProperty
	}

	owner, err := that.game.PlayerByID(space.Owner)
	if err != nil {
		return nil, err
	}

	if owner.IsEliminated {
		return nil, apperror.ErrPlayerEliminated
	}

	if space.Stocks >= that.rules.MaxStocksPerLot {
		return nil, apperror.ErrStockLimitReached
	}

	price := space.Price * that.rules.StockPricePct / 100
	if current.Money < price {
		return nil, apperror.ErrInsufficientFunds
	}

	current.Money -= price
	owner.Money += price
	current.Stocks[spacePos]++
	space.Stocks++

	result := &Result{}
	result.noticef("%s bought a share of %s for %d (owner %s)", current.Name, space.Name, price, owner.Name)

	return result, nil
}
