package main

import (
	"io"
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, envOf(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), cfg.TurnCost)
	assert.Equal(t, int64(1), cfg.StepCost)
	assert.Equal(t, maze.East, cfg.StartHeading)
	assert.True(t, cfg.Prune)
	assert.False(t, cfg.Full)
	assert.False(t, cfg.Render)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Files)
	assert.Len(t, cfg.SpaceOptions(), 4)
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	env := envOf(map[string]string{
		envTurnCost:     "500",
		envStepCost:     "2",
		envStartHeading: "north",
		envLogLevel:     "warn",
	})

	cfg, err := loadConfig(nil, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int64(500), cfg.TurnCost)
	assert.Equal(t, int64(2), cfg.StepCost)
	assert.Equal(t, maze.North, cfg.StartHeading)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)

	// Flags override the environment.
	args := []string{"-turn-cost", "7", "-start-heading", "W", "-no-prune", "-full", "-render", "-v", "a.txt", "b.txt"}
	cfg, err = loadConfig(args, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.TurnCost)
	assert.Equal(t, int64(2), cfg.StepCost)
	assert.Equal(t, maze.West, cfg.StartHeading)
	assert.False(t, cfg.Prune)
	assert.True(t, cfg.Full)
	assert.True(t, cfg.Render)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Files)
	assert.Equal(t, "West", cfg.Fields()["start_heading"])
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(nil, envOf(map[string]string{envTurnCost: "lots"}), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig(nil, envOf(map[string]string{envStepCost: "1.5"}), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-start-heading", "up"}, envOf(nil), io.Discard)
	assert.ErrorIs(t, err, maze.ErrUnknownHeading)

	_, err = loadConfig([]string{"-log-level", "loud"}, envOf(nil), io.Discard)
	assert.Error(t, err)

	_, err = loadConfig([]string{"-bogus"}, envOf(nil), io.Discard)
	assert.Error(t, err)
}
