package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"candidate": "candidate.json",
		"jobs_url": "https://example.com/feed.json",
		"top_n": 20,
		"verbose": true,
		"weights": {"skill": 0.5, "experience": 0.25, "location": 0.15, "title": 0.1}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "candidate.json", cfg.Candidate)
	assert.Equal(t, "https://example.com/feed.json", cfg.JobsURL)
	assert.Equal(t, 20, cfg.TopN)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.5, cfg.Weights.Skill)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Jobs:    "jobs.json",
		JobsURL: "https://example.com/feed.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeTopN(t *testing.T) {
	cfg := &Config{TopN: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_n")
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Candidate: "/nonexistent/candidate.json"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Jobs: "/nonexistent/jobs.json"}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Candidate: "mine.json"}
	defaults := Config{
		Candidate:   "default.json",
		Jobs:        "jobs.json",
		DatabaseURL: "postgres://localhost/careermatch",
		TopN:        10,
		Weights:     &WeightsConfig{Skill: 1.0},
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.json", merged.Candidate, "explicit value wins")
	assert.Equal(t, "jobs.json", merged.Jobs)
	assert.Equal(t, "postgres://localhost/careermatch", merged.DatabaseURL)
	assert.Equal(t, 10, merged.TopN)
	require.NotNil(t, merged.Weights)
	assert.Equal(t, 1.0, merged.Weights.Skill)
}
