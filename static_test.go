package linesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAcceptsAnyAlpha(t *testing.T) {
	obj := quadratic1D(t, 2, 3)
	phi0, dphi0 := obj.ValueSlope(0)
	var ls Static[float64]
	res, err := ls.Search(obj, 7, phi0, dphi0, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Alpha)
}

func TestInitialStepperInterfacesSatisfied(t *testing.T) {
	var _ InitialStepper[float64] = InitialStatic[float64]{}
	var _ InitialStepper[float64] = InitialPrevious[float64]{}
	var _ InitialStepper[float64] = InitialQuadratic[float64]{}
	var _ InitialStepper[float64] = InitialConstantChange[float64]{}
	var _ InitialStepper[float64] = (*InitialHagerZhang[float64])(nil)
}

func TestLineSearcherInterfacesSatisfied(t *testing.T) {
	var _ LineSearcher[float64] = Static[float64]{}
	var _ LineSearcher[float64] = (*HagerZhang[float64])(nil)
	var _ LineSearcher[float64] = (*StrongWolfe[float64])(nil)
	var _ LineSearcher[float64] = (*MoreThuente[float64])(nil)
	var _ LineSearcher[float64] = (*BackTracking[float64])(nil)
}
