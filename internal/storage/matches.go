package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-battleship/internal/multiplayer"
)

// MatchRecord is one row of match history.
type MatchRecord struct {
	ID            int64
	MatchID       string
	GameID        string
	SessionID     string
	Mode          string
	Winner        string
	EndReason     string
	TurnRule      string
	PlayerShots   int
	PlayerHits    int
	ComputerShots int
	ComputerHits  int
	PlayerShips   int
	ComputerShips int
	Score         int
	Duration      int // Seconds
	CreatedAt     time.Time
}

// Accuracy returns the player's hit ratio in [0, 1].
func (r MatchRecord) Accuracy() float64 {
	if r.PlayerShots == 0 {
		return 0
	}
	return float64(r.PlayerHits) / float64(r.PlayerShots)
}

const matchColumns = `id, match_id, game_id, session_id, mode, winner, end_reason, turn_rule,
	player_shots, player_hits, computer_shots, computer_hits,
	player_ships, computer_ships, score, duration_secs, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var r MatchRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.MatchID, &r.GameID, &r.SessionID, &r.Mode, &r.Winner, &r.EndReason, &r.TurnRule,
		&r.PlayerShots, &r.PlayerHits, &r.ComputerShots, &r.ComputerHits,
		&r.PlayerShips, &r.ComputerShips, &r.Score, &r.Duration, &createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// SaveMatch records a finished or abandoned match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, session_id, mode, winner, end_reason, turn_rule,
		  player_shots, player_hits, computer_shots, computer_hits,
		  player_ships, computer_ships, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.SessionID, r.Mode, r.Winner, r.EndReason, r.TurnRule,
		r.PlayerShots, r.PlayerHits, r.ComputerShots, r.ComputerHits,
		r.PlayerShips, r.ComputerShips, r.Score, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// MatchByID retrieves a match by its match ID. It returns nil, nil when
// there is no such match.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	r, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty gameID matches every game. A non-positive limit selects 20.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+` FROM matches
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// SessionMatches retrieves match history for one session, newest first.
func (s *Store) SessionMatches(sessionID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+` FROM matches
		 WHERE session_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
}

func (s *Store) queryMatches(query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// MatchStats aggregates match history for a game.
type MatchStats struct {
	GameID      string
	Played      int
	PlayerWins  int
	CPUWins     int
	Abandoned   int
	BestScore   int
	AvgAccuracy float64 // Mean player hit ratio over completed matches
}

// GetMatchStats aggregates the match history of one game.
func (s *Store) GetMatchStats(gameID string) (*MatchStats, error) {
	stats := &MatchStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'computer' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'abandoned' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(CASE WHEN end_reason = 'completed' AND player_shots > 0
		                     THEN CAST(player_hits AS REAL) / player_shots END), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.PlayerWins, &stats.CPUWins, &stats.Abandoned, &stats.BestScore, &stats.AvgAccuracy)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	return stats, nil
}

// SaveMatchResult implements multiplayer.MatchResultSaver.
func (s *Store) SaveMatchResult(data multiplayer.MatchResultData) error {
	_, err := s.SaveMatch(MatchRecord{
		MatchID:       data.MatchID,
		GameID:        data.GameID,
		SessionID:     data.SessionID,
		Mode:          data.Mode,
		Winner:        data.Winner,
		EndReason:     data.EndReason,
		TurnRule:      data.TurnRule,
		PlayerShots:   data.PlayerShots,
		PlayerHits:    data.PlayerHits,
		ComputerShots: data.ComputerShots,
		ComputerHits:  data.ComputerHits,
		PlayerShips:   data.PlayerShips,
		ComputerShips: data.ComputerShips,
		Score:         data.Score,
		Duration:      data.DurationSecs,
	})
	return err
}

var _ multiplayer.MatchResultSaver = (*Store)(nil)
