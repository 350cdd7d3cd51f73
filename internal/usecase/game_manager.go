package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/seaportlabs/harborlord-backend/internal/config"
	"github.com/seaportlabs/harborlord-backend/internal/engine"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchRepo interface {
	Record(ctx context.Context, gameID, winner string, rounds int) error
}

// GameManager orchestrates engine operations over persisted game sessions:
// load, apply exactly one operation, save, archive finished matches. The
// mutex serializes operations; within one game all turns are user-driven and
// sequential anyway.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	matchRepo matchRepo
	rules     config.Rules

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, matchRepo matchRepo, rules config.Rules, rng *rand.Rand) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo:  gameRepo,
		matchRepo: matchRepo,
		rules:     rules,
		rng:       rng,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// apply runs one engine operation against a loaded game and persists the
// outcome. Operations failing with a rule error leave the game unchanged and
// nothing is saved.
func (that *GameManager) apply(ctx context.Context, gameID string, op func(*engine.Engine) (*engine.Result, error)) (*entity.Game, *engine.Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	wasFinished := game.IsFinished()

	result, err := op(engine.New(game, that.rules, that.rng))
	if err != nil {
		return game, nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to save game: %w", err)
	}

	if game.IsFinished() && !wasFinished {
		that.archiveMatch(ctx, game)
	}

	return game, result, nil
}

func (that *GameManager) archiveMatch(ctx context.Context, game *entity.Game) {
	log := that.logger.With("component", "game_manager", "gameID", game.ID)

	winner, err := game.PlayerByID(game.WinnerID)
	if err != nil {
		log.Error("finished game has no winner", "error", err)
		return
	}

	if err = that.matchRepo.Record(ctx, game.ID, winner.Name, game.CurrentRound); err != nil {
		log.Error("failed to archive match", "error", err)
		return
	}

	log.Info("match archived", "winner", winner.Name, "rounds", game.CurrentRound)
}

func (that *GameManager) AddPlayer(ctx context.Context, gameID, name string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		player, err := eng.AddPlayer(name)
		if err != nil {
			return nil, err
		}

		result := &engine.Result{}
		result.Notices = append(result.Notices, fmt.Sprintf("%s joined the table", player.Name))
		return result, nil
	})
}

func (that *GameManager) RenamePlayer(ctx context.Context, gameID string, playerID int, name string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return &engine.Result{}, eng.RenamePlayer(playerID, name)
	})
}

func (that *GameManager) RemovePlayer(ctx context.Context, gameID string, playerID int) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return &engine.Result{}, eng.RemovePlayer(playerID)
	})
}

func (that *GameManager) StartGame(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.StartGame()
	})
}

func (that *GameManager) RollDice(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.RollDice()
	})
}

func (that *GameManager) EndTurn(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.EndTurn()
	})
}

func (that *GameManager) AcceptPending(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.AcceptPending()
	})
}

func (that *GameManager) DeclinePending(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.DeclinePending()
	})
}

func (that *GameManager) ResolveChoice(ctx context.Context, gameID, optionID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.ResolveChoice(optionID)
	})
}

func (that *GameManager) AnswerExam(ctx context.Context, gameID, answer string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.AnswerExam(answer)
	})
}

func (that *GameManager) TakeLoan(ctx context.Context, gameID string, amount int) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.TakeLoan(amount)
	})
}

func (that *GameManager) PayLoan(ctx context.Context, gameID string, index int) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.PayLoan(index)
	})
}

func (that *GameManager) LiquidateAsset(ctx context.Context, gameID, kind string, spacePos int) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.LiquidateAsset(kind, spacePos)
	})
}

func (that *GameManager) BuyStock(ctx context.Context, gameID string, spacePos int) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.BuyStock(spacePos)
	})
}

func (that *GameManager) CommissionTuglord(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error) {
	return that.apply(ctx, gameID, func(eng *engine.Engine) (*engine.Result, error) {
		return eng.CommissionTuglord()
	})
}
