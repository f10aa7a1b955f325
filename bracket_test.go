package linesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBracketHistoryPushAndAccess(t *testing.T) {
	h := newBracketHistory[float64](4)
	i0 := h.push(0, 1, -1)
	i1 := h.push(1, 0, 0)
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, h.len())
	assert.Equal(t, 1, h.last())

	h.setBracket(i0, i1)
	a, b := h.bracket()
	assert.Equal(t, i0, a)
	assert.Equal(t, i1, b)
	assert.Equal(t, 1.0, h.width())

	p := h.at(i1)
	assert.Equal(t, 1.0, p.Alpha)
	assert.Equal(t, 0.0, p.Value)
	assert.Equal(t, 0.0, p.Slope)
}
