package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/statespace"
	"github.com/sirupsen/logrus"
)

// Environment keys read as flag defaults. A .env file in the working
// directory is loaded into the environment first.
const (
	envTurnCost     = "MAZE_TURN_COST"
	envStepCost     = "MAZE_STEP_COST"
	envStartHeading = "MAZE_START_HEADING"
	envLogLevel     = "MAZE_LOG_LEVEL"
)

// Config holds the CLI configuration.
type Config struct {
	TurnCost     int64        // cost of one 90° rotation
	StepCost     int64        // cost of one step
	StartHeading maze.Heading // facing of the start state
	Prune        bool         // drop reversal moves
	Full         bool         // explore past the first goal pop
	Render       bool         // print the maze with optimal cells marked
	LogLevel     logrus.Level // logger level
	Files        []string     // inputs; empty means stdin
}

// Fields returns the config as log fields.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"turn_cost":     c.TurnCost,
		"step_cost":     c.StepCost,
		"start_heading": c.StartHeading.String(),
		"prune":         c.Prune,
		"full":          c.Full,
		"render":        c.Render,
		"files":         len(c.Files),
	}
}

// SpaceOptions maps the config onto state-space options.
func (c *Config) SpaceOptions() []statespace.Option {
	return []statespace.Option{
		statespace.WithTurnCost(c.TurnCost),
		statespace.WithStepCost(c.StepCost),
		statespace.WithStartHeading(c.StartHeading),
		statespace.WithReversalPruning(c.Prune),
	}
}

// loadConfig parses args with defaults taken from getenv.
// Flag parsing errors and invalid environment values are returned.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (*Config, error) {
	turnDefault, err := getEnvAsInt(getenv, envTurnCost, statespace.DefaultTurnCost)
	if err != nil {
		return nil, err
	}
	stepDefault, err := getEnvAsInt(getenv, envStepCost, statespace.DefaultStepCost)
	if err != nil {
		return nil, err
	}

	var (
		cfg     Config
		heading string
		level   string
		noPrune bool
		verbose bool
		fs      = flag.NewFlagSet("mazerunner", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.Int64Var(&cfg.TurnCost, "turn-cost", turnDefault, fmt.Sprintf("cost of one 90° turn (env %s)", envTurnCost))
	fs.Int64Var(&cfg.StepCost, "step-cost", stepDefault, fmt.Sprintf("cost of one step (env %s)", envStepCost))
	fs.StringVar(&heading, "start-heading", getEnvWithDefault(getenv, envStartHeading, maze.East.String()),
		fmt.Sprintf("initial facing: north, east, south or west (env %s)", envStartHeading))
	fs.StringVar(&level, "log-level", getEnvWithDefault(getenv, envLogLevel, logrus.InfoLevel.String()),
		fmt.Sprintf("log level (env %s)", envLogLevel))
	fs.BoolVar(&noPrune, "no-prune", false, "keep reversal moves in the search")
	fs.BoolVar(&cfg.Full, "full", false, "settle every reachable state instead of stopping at the goal")
	fs.BoolVar(&cfg.Render, "render", false, "print each maze with optimal cells marked 'O'")
	fs.BoolVar(&verbose, "v", false, "shorthand for -log-level=debug")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.StartHeading, err = maze.ParseHeading(heading); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(level); err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel
	}
	cfg.Prune = !noPrune
	cfg.Files = fs.Args()

	return &cfg, nil
}

// getEnvWithDefault retrieves an environment variable or returns def if it is unset.
func getEnvWithDefault(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAsInt retrieves an integer environment variable or returns def if it is unset.
func getEnvAsInt(getenv func(string) string, key string, def int64) (int64, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
