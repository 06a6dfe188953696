package service

import (
	"strconv"
	"sync"
	"time"
)

// idGen issues timestamp-string ids (Unix milliseconds), bumped by one when
// two calls land in the same millisecond so ids stay strictly increasing.
type idGen struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGen(now func() time.Time) *idGen {
	if now == nil {
		now = time.Now
	}
	return &idGen{now: now}
}

func (g *idGen) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
