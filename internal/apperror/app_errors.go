package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameInProgress   = errors.New("game is already in progress")

	ErrDiceAlreadyRolled = errors.New("dice already rolled this turn")
	ErrDiceNotRolled     = errors.New("roll the dice first")

	ErrTooManyPlayers   = errors.New("player limit reached")
	ErrNotEnoughPlayers = errors.New("at least two players required")
	ErrPlayerNotFound   = errors.New("player not found in game")
	ErrPlayerEliminated = errors.New("player is eliminated")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStockLimitReached = errors.New("stock limit reached for this property")
	ErrOwnProperty       = errors.New("cannot buy stock in your own property")
	ErrNotForSale        = errors.New("space is not for sale")
	ErrAlreadyOwned      = errors.New("space already has an owner")
	ErrNotOwner          = errors.New("player does not own this space")
	ErrLoanNotFound      = errors.New("loan not found")
	ErrWrongSpace        = errors.New("action not available on this space")

	ErrNoPendingAction = errors.New("no pending action to resolve")
	ErrPendingAction   = errors.New("resolve the pending action first")
	ErrInvalidChoice   = errors.New("invalid choice for pending action")
)
