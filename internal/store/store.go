// Package store provides PostgreSQL persistence for finished evaluation
// reports.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/resume-evaluator/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveReport stores one finished combined report together with hashes of
// its inputs and returns the run id for later lookup. The raw texts are
// not stored; the hashes are enough to spot repeat evaluations of the
// same pair.
func (s *Store) SaveReport(ctx context.Context, vacancyText, resumeText string, report *types.CombinedReport) (uuid.UUID, error) {
	content, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	runID := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO evaluation_runs (id, vacancy_hash, resume_hash, total_score, max_score, report)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		runID, textHash(vacancyText), textHash(resumeText),
		report.TotalScore(), report.TotalMaxScore(), content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return runID, nil
}

// GetReport retrieves a stored report by run id. Returns nil without error
// when the run does not exist.
func (s *Store) GetReport(ctx context.Context, runID uuid.UUID) (*types.CombinedReport, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT report FROM evaluation_runs WHERE id = $1`, runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.CombinedReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
