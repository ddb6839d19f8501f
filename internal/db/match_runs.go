package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-match/internal/types"
)

// MatchRun is one recorded invocation of the matching engine: the
// candidate snapshot it scored against and summary counts.
type MatchRun struct {
	ID          uuid.UUID  `json:"id"`
	Candidate   []byte     `json:"-"`
	JobCount    int        `json:"job_count"`
	ResultCount int        `json:"result_count"`
	TopScore    int        `json:"top_score"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// MatchResultRow is one persisted ranked result within a run.
type MatchResultRow struct {
	RunID        uuid.UUID `json:"run_id"`
	Rank         int       `json:"rank"`
	JobID        string    `json:"job_id"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	OverallScore int       `json:"overall_score"`
	FactorScores []byte    `json:"-"`
}

// CreateMatchRun records a new run with its candidate snapshot and
// returns the run ID.
func (db *DB) CreateMatchRun(ctx context.Context, candidate *types.CandidateProfile, jobCount int) (uuid.UUID, error) {
	snapshot, err := json.Marshal(candidate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal candidate snapshot: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (candidate, job_count)
		 VALUES ($1, $2)
		 RETURNING id`,
		snapshot, jobCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}
	return id, nil
}

// SaveMatchResults stores a run's ranked results and marks the run
// complete. Rank is 1-based in ranking order.
func (db *DB) SaveMatchResults(ctx context.Context, runID uuid.UUID, ranked *types.RankedMatches) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	topScore := 0
	for i, result := range ranked.Results {
		factors, err := json.Marshal(result.FactorScores)
		if err != nil {
			return fmt.Errorf("failed to marshal factor scores: %w", err)
		}
		if result.OverallScore > topScore {
			topScore = result.OverallScore
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO match_results (run_id, rank, job_id, job_title, company, overall_score, factor_scores)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			runID, i+1, result.Job.ID, result.Job.Title, result.Job.Company, result.OverallScore, factors,
		)
		if err != nil {
			return fmt.Errorf("failed to save result for job %s: %w", result.Job.ID, err)
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE match_runs
		 SET result_count = $1, top_score = $2, completed_at = NOW()
		 WHERE id = $3`,
		len(ranked.Results), topScore, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete match run: %w", err)
	}

	return tx.Commit(ctx)
}

// GetMatchRun retrieves a run by ID, or nil if it does not exist.
func (db *DB) GetMatchRun(ctx context.Context, runID uuid.UUID) (*MatchRun, error) {
	var run MatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate, job_count, result_count, top_score, created_at, completed_at
		 FROM match_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Candidate, &run.JobCount, &run.ResultCount, &run.TopScore, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing match runs.
type RunFilters struct {
	MinTopScore int
	Limit       int
}

// ListMatchRuns retrieves recent runs, newest first.
func (db *DB) ListMatchRuns(ctx context.Context, filters RunFilters) ([]MatchRun, error) {
	query, args := buildListRunsQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		if err := rows.Scan(&run.ID, &run.Candidate, &run.JobCount, &run.ResultCount, &run.TopScore, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// buildListRunsQuery assembles the filtered listing query. Split out so
// the parameter numbering is testable without a database.
func buildListRunsQuery(filters RunFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT id, candidate, job_count, result_count, top_score, created_at, completed_at
		FROM match_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.MinTopScore > 0 {
		query += fmt.Sprintf(" AND top_score >= $%d", argNum)
		args = append(args, filters.MinTopScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// GetMatchResults retrieves a run's persisted results in rank order.
func (db *DB) GetMatchResults(ctx context.Context, runID uuid.UUID) ([]MatchResultRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT run_id, rank, job_id, job_title, company, overall_score, factor_scores
		 FROM match_results WHERE run_id = $1 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get match results: %w", err)
	}
	defer rows.Close()

	var results []MatchResultRow
	for rows.Next() {
		var row MatchResultRow
		if err := rows.Scan(&row.RunID, &row.Rank, &row.JobID, &row.JobTitle, &row.Company, &row.OverallScore, &row.FactorScores); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		results = append(results, row)
	}
	return results, nil
}

// DeleteMatchRun deletes a run and its results (via cascade).
func (db *DB) DeleteMatchRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM match_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete match run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match run not found: %s", runID)
	}
	return nil
}
