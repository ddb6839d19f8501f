package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTitle_FullOverlap(t *testing.T) {
	score := scoreTitle(defaultStrategy(), "Python Backend Engineer", []string{"python", "backend", "postgresql"})

	// "engineer" is filler; both remaining tokens are candidate skills.
	assert.Equal(t, 100, score)
}

func TestScoreTitle_PartialOverlap(t *testing.T) {
	score := scoreTitle(defaultStrategy(), "React Native Developer", []string{"react"})

	// One of two meaningful tokens matches.
	assert.Equal(t, 50, score)
}

func TestScoreTitle_NoOverlap(t *testing.T) {
	score := scoreTitle(defaultStrategy(), "Rust Engineer", []string{"python", "go"})

	assert.Equal(t, 0, score)
}

func TestScoreTitle_OnlyStopWordsIsNeutral(t *testing.T) {
	assert.Equal(t, 50, scoreTitle(defaultStrategy(), "Senior Lead Engineer II", []string{"python"}))
	assert.Equal(t, 50, scoreTitle(defaultStrategy(), "", []string{"python"}))
}

func TestScoreTitle_AliasAwareOverlap(t *testing.T) {
	score := scoreTitle(defaultStrategy(), "Golang Engineer", []string{"go"})

	assert.Equal(t, 100, score)
}
