package http

import (
	"context"
	"time"
)

const readyTimeout = 2 * time.Second

// check states
const (
	StatusOK      = "ok"
	StatusFail    = "fail"
	StatusSkipped = "skipped"
	StatusUnknown = "unknown"
	// StatusDegraded is only ever an overall state
	StatusDegraded = "degraded"
)

// Pinger is satisfied by store adapters
type Pinger interface {
	Ping(context.Context) error
}

func probe(ctx context.Context, name string, dep any) ReadyCheck {
	c := ReadyCheck{Name: name, Status: StatusUnknown}
	switch p := dep.(type) {
	case nil:
		c.Status = StatusSkipped
	case Pinger:
		if err := p.Ping(ctx); err != nil {
			c.Status, c.Error = StatusFail, err.Error()
		} else {
			c.Status = StatusOK
		}
	}
	return c
}

// overall fails on any failed check; a skipped clickhouse is healthy
// but postgres has to answer
func overall(pg, ch ReadyCheck) string {
	switch {
	case pg.Status == StatusFail || ch.Status == StatusFail:
		return StatusFail
	case pg.Status != StatusOK || ch.Status == StatusUnknown:
		return StatusDegraded
	}
	return StatusOK
}
