package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-match/internal/types"
)

// maxScoringWorkers bounds the concurrency of batch scoring. Scoring a
// pair is pure CPU work, so a small pool is plenty.
const maxScoringWorkers = 8

// Dedupe collapses duplicate listings that arrive from multiple
// upstream sources. The dedup key is the canonicalized (title, company,
// location) triple; within a key the most recently posted listing wins,
// and an exact posted_at tie goes to the ascending id so the survivor
// does not depend on input order. Output order is the input order of
// the retained listings, so deduping an already-deduplicated pool
// changes nothing.
func (e *Engine) Dedupe(jobs []*types.JobListing) []*types.JobListing {
	type slot struct {
		job   *types.JobListing
		index int
	}

	byKey := make(map[string]slot, len(jobs))
	order := make([]string, 0, len(jobs))

	for i, job := range jobs {
		if job == nil {
			continue
		}
		key := e.dedupeKey(job)
		existing, seen := byKey[key]
		if !seen {
			byKey[key] = slot{job: job, index: i}
			order = append(order, key)
			continue
		}
		if job.PostedAt.After(existing.job.PostedAt) ||
			(job.PostedAt.Equal(existing.job.PostedAt) && job.ID < existing.job.ID) {
			byKey[key] = slot{job: job, index: existing.index}
		}
	}

	out := make([]*types.JobListing, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key].job)
	}
	return out
}

// dedupeKey builds the composite normalized key for a listing.
func (e *Engine) dedupeKey(job *types.JobListing) string {
	return strings.Join([]string{
		e.strategy.Canonicalize(job.Title),
		e.strategy.Canonicalize(job.Company),
		e.strategy.Canonicalize(job.Location),
	}, "|")
}

// Rank scores a pool of job listings against one candidate and returns
// them ordered best-first. Duplicates are collapsed before scoring.
// Pairs are scored concurrently; the final ordering is deterministic
// regardless of scheduling: overall score descending, then more recent
// posted_at, then ascending id.
func (e *Engine) Rank(ctx context.Context, candidate *types.CandidateProfile, jobs []*types.JobListing) (*types.RankedMatches, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	deduped := e.Dedupe(jobs)
	results := make([]types.MatchResult, len(deduped))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringWorkers)
	for i, job := range deduped {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.Score(candidate, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring job pool: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].OverallScore != results[j].OverallScore {
			return results[i].OverallScore > results[j].OverallScore
		}
		if !results[i].Job.PostedAt.Equal(results[j].Job.PostedAt) {
			return results[i].Job.PostedAt.After(results[j].Job.PostedAt)
		}
		return results[i].Job.ID < results[j].Job.ID
	})

	return &types.RankedMatches{Results: results}, nil
}
