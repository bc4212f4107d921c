package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Replay is a recorded game: everything needed to re-simulate it tick by
// tick.
type Replay struct {
	ID         string
	Variant    string
	Seed       int64
	Speed      int
	Players    int
	StartLevel int    // 1-based, 0 for the first level
	Ticks      int    // len(Frames) once loaded
	FieldHash  uint64 // field hash after the last frame
	Config     string // YAML of the game configuration in effect
	Frames     []Frame
	CreatedAt  time.Time
}

// SaveReplay stores a replay, assigning a new ID when r.ID is empty.
// Returns the ID.
func (s *Store) SaveReplay(r Replay) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	data, err := encodeFrames(r.Frames)
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(
		`INSERT INTO replays
		 (id, variant, seed, speed, players, start_level, ticks, field_hash, config, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Seed, r.Speed, r.Players, r.StartLevel,
		len(r.Frames), int64(r.FieldHash), r.Config, data,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return r.ID, nil
}

// Replay loads a replay with its frames. IDs may be abbreviated to any
// unique prefix.
func (s *Store) Replay(id string) (*Replay, error) {
	rows, err := s.db.Query(
		`SELECT id, variant, seed, speed, players, start_level, ticks, field_hash, config, frames, created_at
		 FROM replays
		 WHERE id LIKE ? || '%'
		 LIMIT 2`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	defer rows.Close()

	var found []Replay
	for rows.Next() {
		var r Replay
		var hash int64
		var data []byte
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Speed, &r.Players, &r.StartLevel,
			&r.Ticks, &hash, &r.Config, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FieldHash = uint64(hash)
		r.CreatedAt = parseTime(createdAt)
		if r.Frames, err = decodeFrames(data); err != nil {
			return nil, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("storage: replay id %q is ambiguous", id)
	}
}

// RecentReplays lists the newest replays without their frames.
func (s *Store) RecentReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, speed, players, start_level, ticks, field_hash, config, created_at
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var results []Replay
	for rows.Next() {
		var r Replay
		var hash int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Speed, &r.Players, &r.StartLevel,
			&r.Ticks, &hash, &r.Config, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FieldHash = uint64(hash)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// DeleteReplay removes a replay by its full ID.
func (s *Store) DeleteReplay(id string) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	return nil
}
