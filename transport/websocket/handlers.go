package websocket

import (
	"context"

	"github.com/seaportlabs/harborlord-backend/internal/engine"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, _ *Payload) (*entity.Game, *engine.Result, error) {
	game, err := that.gameUseCase.CreateGame(ctx)
	return game, nil, err
}

func (that *Server) handleGameState(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	game, err := that.gameUseCase.GetGame(ctx, payload.GameID)
	return game, nil, err
}

func (that *Server) handleAddPlayer(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.AddPlayer(ctx, payload.GameID, payload.Name)
}

func (that *Server) handleRenamePlayer(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.RenamePlayer(ctx, payload.GameID, payload.PlayerID, payload.Name)
}

func (that *Server) handleRemovePlayer(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.RemovePlayer(ctx, payload.GameID, payload.PlayerID)
}

func (that *Server) handleStartGame(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.StartGame(ctx, payload.GameID)
}

func (that *Server) handleRollDice(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.RollDice(ctx, payload.GameID)
}

func (that *Server) handleEndTurn(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.EndTurn(ctx, payload.GameID)
}

func (that *Server) handleAcceptPending(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.AcceptPending(ctx, payload.GameID)
}

func (that *Server) handleDeclinePending(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.DeclinePending(ctx, payload.GameID)
}

func (that *Server) handleResolveChoice(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.ResolveChoice(ctx, payload.GameID, payload.Option)
}

func (that *Server) handleAnswerExam(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.AnswerExam(ctx, payload.GameID, payload.Answer)
}

func (that *Server) handleTakeLoan(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.TakeLoan(ctx, payload.GameID, payload.Amount)
}

func (that *Server) handlePayLoan(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.PayLoan(ctx, payload.GameID, payload.Index)
}

func (that *Server) handleLiquidateAsset(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.LiquidateAsset(ctx, payload.GameID, payload.Kind, payload.SpacePos)
}

func (that *Server) handleBuyStock(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.BuyStock(ctx, payload.GameID, payload.SpacePos)
}

func (that *Server) handleCommissionTuglord(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error) {
	return that.gameUseCase.CommissionTuglord(ctx, payload.GameID)
}
