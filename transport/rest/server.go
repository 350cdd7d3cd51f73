package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/seaportlabs/harborlord-backend/internal/repository"
)

type matchRepo interface {
	Recent(ctx context.Context, limit int) ([]repository.MatchRecord, error)
}

type Server struct {
	logger    *slog.Logger
	matchRepo matchRepo
}

func New(logger *slog.Logger, matchRepo matchRepo) *Server {
	return &Server{
		logger:    logger,
		matchRepo: matchRepo,
	}
}

func (that *Server) Start(port string) error {
	router := mux.NewRouter()
	router.HandleFunc("/ping", that.pingHandler).Methods(http.MethodGet)
	router.HandleFunc("/matches", that.matchesHandler).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
