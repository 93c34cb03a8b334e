package shared

import (
	"strconv"
	"sync"
	"time"
)

// NumberGenerator issues human readable document numbers of the form
// PREFIX-<epoch millis>. Values are strictly increasing per generator: when
// the clock has not moved past the previous value the next millisecond is
// used instead.
type NumberGenerator struct {
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

// NewNumberGenerator returns a generator for the given prefix.
func NewNumberGenerator(prefix string) *NumberGenerator {
	return &NumberGenerator{prefix: prefix, now: time.Now}
}

// Prefix returns the generator prefix, e.g. "INV".
func (g *NumberGenerator) Prefix() string {
	return g.prefix
}

// Next returns the next document number.
func (g *NumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.prefix + "-" + strconv.FormatInt(ms, 10)
}
