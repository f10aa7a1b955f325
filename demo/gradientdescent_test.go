package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/optimize"

	"github.com/pa-m/linesearch"
)

// rosenbrock is the standard two-dimensional test function used to
// exercise a multivariate minimizer.
func rosenbrock(x []float64) float64 {
	return (1-x[0])*(1-x[0]) + 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
}

func rosenbrockGrad(x []float64, grad []float64) {
	grad[0] = -2*(1-x[0]) - 400*x[0]*(x[1]-x[0]*x[0])
	grad[1] = 200 * (x[1] - x[0]*x[0])
}

func TestGradientDescentRosenbrock(t *testing.T) {
	method := &GradientDescent{
		LineSearch:   linesearch.NewHagerZhang(linesearch.NewHagerZhangConfig[float64]()),
		InitialStep:  linesearch.NewInitialHagerZhang(linesearch.NewInitialHagerZhangConfig[float64]()),
		GradientTol:  1e-5,
		MaxMajorIter: 5000,
	}
	problem := optimize.Problem{
		Func: rosenbrock,
		Grad: rosenbrockGrad,
	}
	result, err := optimize.Minimize(problem, []float64{-1.2, 1}, &optimize.Settings{
		MajorIterations: 5000,
	}, method)
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.InDelta(t, 1, result.X[0], 1e-2)
		assert.InDelta(t, 1, result.X[1], 1e-2)
	}
}

func TestGradientDescentQuadratic(t *testing.T) {
	quadratic := func(x []float64) float64 {
		return x[0]*x[0] + 4*x[1]*x[1]
	}
	quadraticGrad := func(x []float64, grad []float64) {
		grad[0] = 2 * x[0]
		grad[1] = 8 * x[1]
	}
	method := &GradientDescent{
		LineSearch:  linesearch.NewStrongWolfe(linesearch.NewStrongWolfeConfig[float64]()),
		InitialStep: linesearch.NewInitialHagerZhang(linesearch.NewInitialHagerZhangConfig[float64]()),
		GradientTol: 1e-6,
	}
	problem := optimize.Problem{
		Func: quadratic,
		Grad: quadraticGrad,
	}
	result, err := optimize.Minimize(problem, []float64{3, -2}, nil, method)
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.InDelta(t, 0, result.X[0], 1e-3)
		assert.InDelta(t, 0, result.X[1], 1e-3)
	}
}
