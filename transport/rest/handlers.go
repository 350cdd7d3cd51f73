package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const defaultMatchLimit = 20

func (that *Server) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) matchesHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "matchesHandler")

	limit := defaultMatchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := that.matchRepo.Recent(r.Context(), limit)
	if err != nil {
		log.Error("failed to load matches", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(records); err != nil {
		log.Error("failed to encode matches", "error", err)
	}
}
