package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve query.
type Solve struct {
	SolveID       string
	Layout        string
	Configuration uint32
	Solution      string
	MoveCount     int
	SolvedAt      time.Time
}

// SolveRepository provides access to the solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record stores a completed solve and returns its ID.
func (r *SolveRepository) Record(layout string, configuration uint32, solution string, moveCount int) (string, error) {
	id := uuid.New().String()
	solvedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, layout, configuration, solution, move_count, solved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, layout, configuration, solution, moveCount, solvedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, layout, configuration, solution, move_count, solved_at
		FROM solves
		ORDER BY rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var solvedAt string
		if err := rows.Scan(&s.SolveID, &s.Layout, &s.Configuration, &s.Solution, &s.MoveCount, &solvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.SolvedAt, err = time.Parse(time.RFC3339, solvedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve time: %w", err)
		}
		solves = append(solves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate solves: %w", err)
	}

	return solves, nil
}
