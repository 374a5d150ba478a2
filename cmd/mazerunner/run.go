package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/reconstruct"
	"github.com/katalvlaran/lvmaze/statespace"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// input is one maze to solve.
type input struct {
	Name string
	Text string
}

// report is the outcome for one input.
type report struct {
	Name    string
	Reached bool
	Cost    int64
	Cells   int
	Render  string
}

// readInputs reads every file, or stdin when files is empty.
func readInputs(files []string, stdin io.Reader) ([]input, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{Name: "stdin", Text: string(b)}}, nil
	}
	inputs := make([]input, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{Name: f, Text: string(b)})
	}
	return inputs, nil
}

// solveOne parses, solves and reconstructs a single maze.
func solveOne(in input, cfg *Config, log logrus.FieldLogger) (report, error) {
	rlog := log.WithField("input", in.Name)

	m, err := maze.Parse(in.Text)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", in.Name, err)
	}
	sp, err := statespace.New(m, cfg.SpaceOptions()...)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", in.Name, err)
	}

	prog := newProgress(rlog, cfg.TurnCost)
	opts := []dijkstra.Option{
		dijkstra.WithLogger(rlog),
		dijkstra.WithOnSettle(prog.observe),
	}
	if cfg.Full {
		opts = append(opts, dijkstra.WithFullExploration())
	}
	res, err := dijkstra.Solve(sp, opts...)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", in.Name, err)
	}

	rep := report{Name: in.Name, Reached: res.Reached, Cost: res.Cost}
	if !res.Reached {
		rlog.Warn("goal unreachable")
		return rep, nil
	}

	cells, err := reconstruct.OptimalCells(sp, res)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", in.Name, err)
	}
	rep.Cells = cells.Len()
	if cfg.Render {
		rep.Render = m.Render(cells.Contains)
	}

	rlog.WithFields(logrus.Fields{
		"cost":  rep.Cost,
		"cells": rep.Cells,
	}).Info("solved")

	return rep, nil
}

// solveAll solves every input concurrently, one independent search per
// input, and returns the reports in input order. The first error cancels
// the inputs that have not started yet.
func solveAll(ctx context.Context, inputs []input, cfg *Config, log logrus.FieldLogger) ([]report, error) {
	reports := make([]report, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rep, err := solveOne(in, cfg, log)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// writeReports prints one line per report, followed by the rendered maze
// when present.
func writeReports(w io.Writer, reports []report) error {
	for _, r := range reports {
		var err error
		if r.Reached {
			_, err = fmt.Fprintf(w, "%s: cost=%d cells=%d\n", r.Name, r.Cost, r.Cells)
		} else {
			_, err = fmt.Fprintf(w, "%s: unreachable\n", r.Name)
		}
		if err != nil {
			return err
		}
		if r.Render != "" {
			if _, err := io.WriteString(w, r.Render); err != nil {
				return err
			}
		}
	}
	return nil
}
