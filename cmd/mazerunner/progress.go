package main

import (
	"github.com/katalvlaran/lvmaze/statespace"
	"github.com/sirupsen/logrus"
)

// progress reports how far a search has got. Settled costs only grow, so
// it logs a line only when the cost enters a new band of the given width;
// a long search prints a handful of lines instead of one per state.
// Each solve owns its own progress value.
type progress struct {
	log   logrus.FieldLogger
	band  int64
	last  int64
	lines int
}

func newProgress(log logrus.FieldLogger, band int64) *progress {
	if band <= 0 {
		band = 1
	}
	return &progress{log: log, band: band, last: -1}
}

// observe is a dijkstra.WithOnSettle hook.
func (p *progress) observe(s statespace.State, cost int64) {
	b := cost / p.band
	if b == p.last {
		return
	}
	p.last = b
	p.lines++
	p.log.WithFields(logrus.Fields{
		"cost":  cost,
		"state": s.String(),
	}).Debug("frontier advanced")
}
