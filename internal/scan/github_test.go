package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pinnedReposHTML = `<html><body>
<div class="pinned-item-list-item">
	<a href="/octocat/match-engine">match-engine</a>
	<span itemprop="programmingLanguage">Go</span>
	<a href="/topics/ranking">ranking</a>
</div>
<div class="pinned-item-list-item">
	<a href="/octocat/data-tools">data-tools</a>
	<span itemprop="programmingLanguage">Python</span>
	<a href="/topics/postgresql">postgresql</a>
</div>
</body></html>`

func TestParseGitHubProfile(t *testing.T) {
	result, err := parseGitHubProfile(pinnedReposHTML)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "postgresql", "python", "ranking"}, result.Skills)
	assert.Equal(t, 2, result.RepoCount)
}

func TestParseGitHubProfile_NoPins(t *testing.T) {
	result, err := parseGitHubProfile(`<html><body><p>nothing pinned</p></body></html>`)
	require.NoError(t, err)

	assert.Empty(t, result.Skills)
	assert.Equal(t, 0, result.RepoCount)
}

func TestScanGitHub_EmptyUsername(t *testing.T) {
	scanner := NewScanner(false, false)

	_, err := scanner.ScanGitHub(t.Context(), "  ")
	require.Error(t, err)

	var scanErr *Error
	assert.ErrorAs(t, err, &scanErr)
}

func TestMergeSkills(t *testing.T) {
	merged := MergeSkills(
		[]string{"Python", "React"},
		[]string{"go", "python", "ranking"},
	)

	assert.Equal(t, []string{"Python", "React", "go", "ranking"}, merged)
}

func TestMergeSkills_EmptySides(t *testing.T) {
	assert.Equal(t, []string{"go"}, MergeSkills(nil, []string{"go"}))
	assert.Equal(t, []string{"go"}, MergeSkills([]string{"go"}, nil))
	assert.Empty(t, MergeSkills(nil, nil))
}
