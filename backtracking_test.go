package linesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackTrackingArmijoShrinks(t *testing.T) {
	obj := quadratic1D(t, 2, 3)
	phi0, dphi0 := obj.ValueSlope(0)
	bt := NewBackTracking(NewBackTrackingConfig[float64]())
	// c=10 overshoots badly; BackTracking must shrink to something that
	// satisfies Armijo sufficient decrease.
	res, err := bt.Search(obj, 10, phi0, dphi0, false, nil)
	require.NoError(t, err)
	assert.Greater(t, res.Alpha, 0.0)
	assert.LessOrEqual(t, res.Value, phi0+NewBackTrackingConfig[float64]().C1*res.Alpha*dphi0)
}

func TestBackTrackingAcceptsGoodInitialStep(t *testing.T) {
	obj := quadratic1D(t, 2, 3)
	phi0, dphi0 := obj.ValueSlope(0)
	bt := NewBackTracking(NewBackTrackingConfig[float64]())
	res, err := bt.Search(obj, 3, phi0, dphi0, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Alpha)
}

func TestBackTrackingNonDescentRejected(t *testing.T) {
	obj := quadratic1D(t, 2, 3)
	phi0, _ := obj.ValueSlope(0)
	bt := NewBackTracking(NewBackTrackingConfig[float64]())
	_, err := bt.Search(obj, 1, phi0, 6, false, nil)
	require.Error(t, err)
	var nde *NonDescentError[float64]
	assert.ErrorAs(t, err, &nde)
}

func TestBackTrackingFixedOrderShrink(t *testing.T) {
	obj := quadratic1D(t, 2, 3)
	phi0, dphi0 := obj.ValueSlope(0)
	cfg := NewBackTrackingConfig[float64]()
	cfg.Order = 1
	bt := NewBackTracking(cfg)
	res, err := bt.Search(obj, 10, phi0, dphi0, false, nil)
	require.NoError(t, err)
	assert.Greater(t, res.Alpha, 0.0)
	assert.Less(t, res.Alpha, 10.0)
}
