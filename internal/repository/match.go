package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MatchRecord is one archived game outcome.
type MatchRecord struct {
	ID         int64     `json:"id"`
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Rounds     int       `json:"rounds"`
	FinishedAt time.Time `json:"finished_at"`
}

type MatchRepository interface {
	Record(ctx context.Context, gameID, winner string, rounds int) error
	Recent(ctx context.Context, limit int) ([]MatchRecord, error)
}

type dbMatch struct {
	conn *sql.DB
}

func NewMatchRepository(conn *sql.DB) MatchRepository {
	return &dbMatch{
		conn: conn,
	}
}

func (that *dbMatch) Record(ctx context.Context, gameID, winner string, rounds int) error {
	query := `INSERT INTO matches (game_id, winner, rounds) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, gameID, winner, rounds)
	if err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

func (that *dbMatch) Recent(ctx context.Context, limit int) ([]MatchRecord, error) {
	query := `SELECT id, game_id, winner, rounds, finished_at FROM matches ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var record MatchRecord
		if err = rows.Scan(&record.ID, &record.GameID, &record.Winner, &record.Rounds, &record.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return records, nil
}
