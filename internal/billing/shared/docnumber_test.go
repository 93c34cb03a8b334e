package shared

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberGeneratorFormat(t *testing.T) {
	g := NewNumberGenerator("INV")
	fixed := time.UnixMilli(1700000000123)
	g.now = func() time.Time { return fixed }

	assert.Equal(t, "INV-1700000000123", g.Next())
	assert.Equal(t, "INV", g.Prefix())
}

func TestNumberGeneratorNeverRepeatsWithinMillisecond(t *testing.T) {
	g := NewNumberGenerator("QT")
	fixed := time.UnixMilli(1700000000000)
	g.now = func() time.Time { return fixed }

	first := g.Next()
	second := g.Next()
	third := g.Next()

	assert.Equal(t, "QT-1700000000000", first)
	assert.Equal(t, "QT-1700000000001", second)
	assert.Equal(t, "QT-1700000000002", third)
}

func TestNumberGeneratorFollowsClock(t *testing.T) {
	g := NewNumberGenerator("QT")
	now := time.UnixMilli(1700000000000)
	g.now = func() time.Time { return now }
	_ = g.Next()
	now = now.Add(time.Second)
	got := g.Next()
	assert.True(t, strings.HasSuffix(got, "1700000001000"), got)
}
