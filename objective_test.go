package linesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectiveValueSlope(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }
	df := func(x []float64, grad []float64) {
		grad[0] = 2 * x[0]
		grad[1] = 2 * x[1]
	}
	obj := NewObjective(f, df, []float64{1, 2}, []float64{1, 1}, make([]float64, 2))

	v, s := obj.ValueSlope(1)
	// x + 1*s = (2, 3); f = 4+9=13; grad=(4,6), dot with s=(1,1) => 10
	assert.Equal(t, 13.0, v)
	assert.Equal(t, 10.0, s)

	assert.Equal(t, 13.0, obj.Value(1))
	assert.Equal(t, 10.0, obj.Slope(1))
}

func TestObjectiveGradNorms(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }
	df := func(x []float64, grad []float64) {
		grad[0] = 2 * x[0]
		grad[1] = 2 * x[1]
	}
	obj := NewObjective(f, df, []float64{3, -4}, []float64{0, 0}, make([]float64, 2))
	gInf, g2 := obj.GradNorms(0)
	// grad at (3,-4) is (6,-8): inf norm 8, euclidean norm 10
	assert.Equal(t, 8.0, gInf)
	assert.Equal(t, 10.0, g2)
}

func TestNewOuterStateSeedsNaN(t *testing.T) {
	s := NewOuterState[float64](3)
	assert.Len(t, s.X, 3)
	assert.Len(t, s.S, 3)
	assert.True(t, isNaNT(s.FPrevious))
	assert.False(t, s.MayTerminate)
}
