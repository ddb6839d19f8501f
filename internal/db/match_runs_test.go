package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListRunsQueryDefaults(t *testing.T) {
	query, args := buildListRunsQuery(RunFilters{})

	assert.Contains(t, query, "ORDER BY created_at DESC LIMIT $1")
	assert.NotContains(t, query, "top_score >=")
	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0])
}

func TestBuildListRunsQueryWithScoreFilter(t *testing.T) {
	query, args := buildListRunsQuery(RunFilters{MinTopScore: 70, Limit: 10})

	assert.Contains(t, query, "top_score >= $1")
	assert.Contains(t, query, "LIMIT $2")
	require.Len(t, args, 2)
	assert.Equal(t, 70, args[0])
	assert.Equal(t, 10, args[1])
}

func TestBuildListRunsQueryNegativeLimit(t *testing.T) {
	_, args := buildListRunsQuery(RunFilters{Limit: -5})

	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0])
}
