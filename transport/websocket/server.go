package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/seaportlabs/harborlord-backend/internal/engine"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	AddPlayer(ctx context.Context, gameID, name string) (*entity.Game, *engine.Result, error)
	RenamePlayer(ctx context.Context, gameID string, playerID int, name string) (*entity.Game, *engine.Result, error)
	RemovePlayer(ctx context.Context, gameID string, playerID int) (*entity.Game, *engine.Result, error)
	StartGame(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)

	RollDice(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)
	EndTurn(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)

	AcceptPending(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)
	DeclinePending(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)
	ResolveChoice(ctx context.Context, gameID, optionID string) (*entity.Game, *engine.Result, error)
	AnswerExam(ctx context.Context, gameID, answer string) (*entity.Game, *engine.Result, error)

	TakeLoan(ctx context.Context, gameID string, amount int) (*entity.Game, *engine.Result, error)
	PayLoan(ctx context.Context, gameID string, index int) (*entity.Game, *engine.Result, error)
	LiquidateAsset(ctx context.Context, gameID, kind string, spacePos int) (*entity.Game, *engine.Result, error)
	BuyStock(ctx context.Context, gameID string, spacePos int) (*entity.Game, *engine.Result, error)
	CommissionTuglord(ctx context.Context, gameID string) (*entity.Game, *engine.Result, error)
}

type handlerFunc func(ctx context.Context, payload *Payload) (*entity.Game, *engine.Result, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger,
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The trusted local client is the only consumer.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		"game:new":         server.handleNewGame,
		"game:state":       server.handleGameState,
		"player:add":       server.handleAddPlayer,
		"player:rename":    server.handleRenamePlayer,
		"player:remove":    server.handleRemovePlayer,
		"game:start":       server.handleStartGame,
		"game:roll":        server.handleRollDice,
		"game:end_turn":    server.handleEndTurn,
		"game:buy":         server.handleAcceptPending,
		"game:pass":        server.handleDeclinePending,
		"game:choice":      server.handleResolveChoice,
		"game:exam":        server.handleAnswerExam,
		"bank:loan":        server.handleTakeLoan,
		"bank:repay":       server.handlePayLoan,
		"bank:liquidate":   server.handleLiquidateAsset,
		"stock:buy":        server.handleBuyStock,
		"shipyard:tuglord": server.handleCommissionTuglord,
	}

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("component", "websocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		if err = that.processMessage(ctx, conn, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			return
		}
	}
}

// processMessage dispatches one request through the handler table and writes
// the response. Rule violations come back to the client as recoverable error
// payloads; only transport failures terminate the connection.
func (that *Server) processMessage(ctx context.Context, conn *websocket.Conn, message *Message) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.writeResponse(conn, &Response{Action: message.Action, Error: "unknown action"})
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return that.writeResponse(conn, &Response{Action: message.Action, Error: "malformed payload"})
		}
	}

	game, result, err := handler(ctx, &payload)
	if err != nil {
		return that.writeResponse(conn, &Response{Action: message.Action, Game: game, Error: err.Error()})
	}

	return that.writeResponse(conn, &Response{Action: message.Action, Game: game, Result: result})
}

func (that *Server) writeResponse(conn *websocket.Conn, response *Response) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
