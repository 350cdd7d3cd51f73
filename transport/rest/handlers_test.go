package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seaportlabs/harborlord-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMatchRepo struct {
	records []repository.MatchRecord
	err     error

	gotLimit int
}

func (that *stubMatchRepo) Recent(_ context.Context, limit int) ([]repository.MatchRecord, error) {
	that.gotLimit = limit
	if that.err != nil {
		return nil, that.err
	}
	if limit < len(that.records) {
		return that.records[:limit], nil
	}
	return that.records, nil
}

func newTestServer(repo *stubMatchRepo) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, repo)
}

func TestServer_PingHandler(t *testing.T) {
	// Given: a server
	server := newTestServer(&stubMatchRepo{})

	// When: GET /ping
	recorder := httptest.NewRecorder()
	server.pingHandler(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestServer_MatchesHandler(t *testing.T) {
	t.Run("Returns the archived matches as JSON", func(t *testing.T) {
		// Given: a repository holding one archived match
		repo := &stubMatchRepo{records: []repository.MatchRecord{
			{ID: 1, GameID: "game-1", Winner: "Ana", Rounds: 12, FinishedAt: time.Now()},
		}}
		server := newTestServer(repo)

		// When: GET /matches
		recorder := httptest.NewRecorder()
		server.matchesHandler(recorder, httptest.NewRequest(http.MethodGet, "/matches", nil))

		// Then: the record comes back with the default limit applied
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, defaultMatchLimit, repo.gotLimit)

		var records []repository.MatchRecord
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "Ana", records[0].Winner)
	})

	t.Run("Honors an explicit limit", func(t *testing.T) {
		repo := &stubMatchRepo{}
		server := newTestServer(repo)

		recorder := httptest.NewRecorder()
		server.matchesHandler(recorder, httptest.NewRequest(http.MethodGet, "/matches?limit=5", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 5, repo.gotLimit)
	})

	t.Run("Rejects a malformed limit", func(t *testing.T) {
		server := newTestServer(&stubMatchRepo{})

		recorder := httptest.NewRecorder()
		server.matchesHandler(recorder, httptest.NewRequest(http.MethodGet, "/matches?limit=zero", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Repository failures become a 500", func(t *testing.T) {
		server := newTestServer(&stubMatchRepo{err: errors.New("sqlite down")})

		recorder := httptest.NewRecorder()
		server.matchesHandler(recorder, httptest.NewRequest(http.MethodGet, "/matches", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
