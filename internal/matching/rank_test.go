package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/types"
)

func testCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		Skills:          []string{"python", "react", "postgresql"},
		ExperienceLevel: types.LevelMid,
		Location:        "Cairo",
	}
}

func postedAt(day int) time.Time {
	return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
}

func TestDedupe_MostRecentWins(t *testing.T) {
	engine := newTestEngine(t)

	older := &types.JobListing{ID: "src-a-1", Title: "Python Developer", Company: "Acme", Location: "Cairo", PostedAt: postedAt(1)}
	newer := &types.JobListing{ID: "src-b-9", Title: "python developer", Company: "ACME", Location: "cairo", PostedAt: postedAt(5)}
	other := &types.JobListing{ID: "src-a-2", Title: "Go Developer", Company: "Acme", Location: "Cairo", PostedAt: postedAt(2)}

	deduped := engine.Dedupe([]*types.JobListing{older, newer, other})

	require.Len(t, deduped, 2)
	assert.Equal(t, "src-b-9", deduped[0].ID, "the more recent duplicate is retained")
	assert.Equal(t, "src-a-2", deduped[1].ID)
}

func TestDedupe_PostedAtTieBrokenByID(t *testing.T) {
	engine := newTestEngine(t)

	a := &types.JobListing{ID: "aaa", Title: "Python Developer", Company: "Acme", Location: "Cairo", PostedAt: postedAt(3)}
	b := &types.JobListing{ID: "bbb", Title: "python developer", Company: "ACME", Location: "cairo", PostedAt: postedAt(3)}

	// The lower id survives an exact posted_at tie regardless of the
	// order the duplicates arrive in.
	first := engine.Dedupe([]*types.JobListing{a, b})
	second := engine.Dedupe([]*types.JobListing{b, a})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "aaa", first[0].ID)
	assert.Equal(t, "aaa", second[0].ID)
}

func TestDedupe_Idempotent(t *testing.T) {
	engine := newTestEngine(t)

	jobs := []*types.JobListing{
		{ID: "1", Title: "Python Developer", Company: "Acme", Location: "Cairo", PostedAt: postedAt(1)},
		{ID: "2", Title: "Go Developer", Company: "Beta", Location: "Lagos", PostedAt: postedAt(2)},
		{ID: "3", Title: "Data Engineer", Company: "Gamma", Location: "Nairobi", PostedAt: postedAt(3)},
	}

	once := engine.Dedupe(jobs)
	twice := engine.Dedupe(once)

	assert.Equal(t, once, twice)
}

func TestDedupe_NilEntriesSkipped(t *testing.T) {
	engine := newTestEngine(t)

	deduped := engine.Dedupe([]*types.JobListing{nil, {ID: "1", Title: "Dev", PostedAt: postedAt(1)}, nil})

	assert.Len(t, deduped, 1)
}

func TestRank_OrderedByScoreThenRecencyThenID(t *testing.T) {
	engine := newTestEngine(t)

	strong := &types.JobListing{
		ID: "strong", Title: "Python Developer",
		RequiredSkills: []string{"python", "react", "postgresql"},
		Location:       "Cairo", PostedAt: postedAt(1),
	}
	weak := &types.JobListing{
		ID: "weak", Title: "Rust Developer",
		RequiredSkills: []string{"rust", "c++"},
		Location:       "Berlin", PostedAt: postedAt(9),
	}
	// Identical scoring inputs to each other, different recency and id.
	twinOld := &types.JobListing{
		ID: "twin-b", Title: "React Developer", Company: "One",
		RequiredSkills: []string{"react"}, Location: "Dubai", PostedAt: postedAt(2),
	}
	twinNew := &types.JobListing{
		ID: "twin-a", Title: "React Developer", Company: "Two",
		RequiredSkills: []string{"react"}, Location: "Dubai", PostedAt: postedAt(4),
	}

	ranked, err := engine.Rank(context.Background(), testCandidate(), []*types.JobListing{weak, twinOld, strong, twinNew})
	require.NoError(t, err)
	require.Len(t, ranked.Results, 4)

	assert.Equal(t, "strong", ranked.Results[0].Job.ID)
	assert.Equal(t, "twin-a", ranked.Results[1].Job.ID, "recency breaks the score tie")
	assert.Equal(t, "twin-b", ranked.Results[2].Job.ID)
	assert.Equal(t, "weak", ranked.Results[3].Job.ID)
}

func TestRank_TieBrokenByIDWhenPostedAtEqual(t *testing.T) {
	engine := newTestEngine(t)

	a := &types.JobListing{ID: "aaa", Title: "React Developer", Company: "One", RequiredSkills: []string{"react"}, PostedAt: postedAt(3)}
	b := &types.JobListing{ID: "bbb", Title: "React Developer", Company: "Two", RequiredSkills: []string{"react"}, PostedAt: postedAt(3)}

	ranked, err := engine.Rank(context.Background(), testCandidate(), []*types.JobListing{b, a})
	require.NoError(t, err)

	assert.Equal(t, "aaa", ranked.Results[0].Job.ID)
	assert.Equal(t, "bbb", ranked.Results[1].Job.ID)
}

func TestRank_DeterministicAcrossInputOrderings(t *testing.T) {
	engine := newTestEngine(t)

	jobs := []*types.JobListing{
		{ID: "1", Title: "Python Developer", RequiredSkills: []string{"python"}, Location: "Cairo", PostedAt: postedAt(1)},
		{ID: "2", Title: "React Developer", RequiredSkills: []string{"react", "typescript"}, Location: "Dubai", PostedAt: postedAt(2)},
		{ID: "3", Title: "Data Engineer", RequiredSkills: []string{"postgresql", "python"}, Location: "Lagos", PostedAt: postedAt(3)},
		{ID: "4", Title: "DevOps Engineer", RequiredSkills: []string{"kubernetes"}, Remote: true, PostedAt: postedAt(4)},
	}
	reversed := []*types.JobListing{jobs[3], jobs[2], jobs[1], jobs[0]}

	first, err := engine.Rank(context.Background(), testCandidate(), jobs)
	require.NoError(t, err)
	second, err := engine.Rank(context.Background(), testCandidate(), reversed)
	require.NoError(t, err)

	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Job.ID, second.Results[i].Job.ID)
		assert.Equal(t, first.Results[i].OverallScore, second.Results[i].OverallScore)
	}
}

func TestRank_NilCandidate(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Rank(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestRank_EmptyPool(t *testing.T) {
	engine := newTestEngine(t)

	ranked, err := engine.Rank(context.Background(), testCandidate(), nil)
	require.NoError(t, err)
	assert.Empty(t, ranked.Results)
}
