package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	d, err := cfg.Discipline()
	require.NoError(t, err)
	assert.Equal(t, frontier.FIFO, d)

	p, err := cfg.Puzzle("small")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Width())
	_, err = cfg.Puzzle("standard")
	require.NoError(t, err)
	_, err = cfg.Puzzle("huge")
	assert.ErrorIs(t, err, config.ErrUnknownPuzzle)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load("testdata/nope.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Strategy, cfg.Strategy)

	_, err = config.Load("testdata/nope.yaml", true)
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load("testdata/valid.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "dfs", cfg.Strategy)
	assert.Equal(t, 5000, cfg.MaxVisits)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "words.txt", cfg.Dictionary)
	assert.Empty(t, cfg.MetricsAddr)

	// user puzzle added, built-ins kept
	for _, name := range []string{"line", "small", "standard"} {
		_, err := cfg.Puzzle(name)
		assert.NoError(t, err, name)
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load("testdata/bad_strategy.yaml", true)
	assert.ErrorIs(t, err, frontier.ErrUnknownDiscipline)

	_, err = config.Load("testdata/bad_puzzle.yaml", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"broken"`)

	_, err = config.Load("testdata/malformed.yaml", true)
	assert.Error(t, err)
}
