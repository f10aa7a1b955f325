// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo wires the linesearch package into gonum's
// optimize.Method protocol, using the same channel-based
// Init/Run/Status contract as gonum's other Method implementations.
// GradientDescent drives plain steepest descent, delegating every step
// length decision to a linesearch.LineSearcher and linesearch.InitialStepper,
// so the line search package can be exercised end to end through
// gonum.org/v1/gonum/optimize's outer-loop machinery without the
// linesearch package itself depending on gonum/optimize.
package demo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/pa-m/linesearch"
)

// GradientDescent is a gonum optimize.Method that takes steepest-descent
// steps, asking LineSearch (paired with InitialStep) for each step's
// length. Zero-value fields fall back to HagerZhang/InitialHagerZhang and
// the defaults below.
type GradientDescent struct {
	LineSearch     linesearch.LineSearcher[float64]
	InitialStep    linesearch.InitialStepper[float64]
	GradientTol    float64 // stop when the gradient's infinity norm drops below this
	MaxMajorIter   int

	state  *linesearch.OuterState[float64]
	status optimize.Status
	err    error
}

// Needs implements gonum optimize.Needser: GradientDescent requires a
// gradient but no Hessian.
func (g *GradientDescent) Needs() struct{ Gradient, Hessian bool } {
	return struct{ Gradient, Hessian bool }{Gradient: true, Hessian: false}
}

// Init implements gonum optimize.Method.
func (g *GradientDescent) Init(dim, tasks int) int {
	if dim <= 0 {
		panic("demo: dimension must be positive")
	}
	if tasks < 0 {
		panic("demo: negative tasks")
	}
	if g.LineSearch == nil {
		g.LineSearch = linesearch.NewHagerZhang(linesearch.NewHagerZhangConfig[float64]())
	}
	if g.InitialStep == nil {
		g.InitialStep = linesearch.NewInitialHagerZhang(linesearch.NewInitialHagerZhangConfig[float64]())
	}
	if g.GradientTol == 0 {
		g.GradientTol = 1e-6
	}
	if g.MaxMajorIter == 0 {
		g.MaxMajorIter = 1000
	}
	g.state = linesearch.NewOuterState[float64](dim)
	return 1
}

// evalClient is the synchronous gonum optimize.Method <-> outer-loop
// bridge: every f/df call from the line search is translated into one
// FuncEvaluation or GradEvaluation round trip over the protocol
// channels.
type evalClient struct {
	id        int
	operation chan<- optimize.Task
	result    <-chan optimize.Task
}

func (c *evalClient) f(x []float64) float64 {
	c.operation <- optimize.Task{ID: c.id, Op: optimize.FuncEvaluation, Location: &optimize.Location{X: dup(x)}}
	task := <-c.result
	if task.Location == nil {
		return math.NaN()
	}
	return task.Location.F
}

func (c *evalClient) df(x []float64, grad []float64) {
	c.operation <- optimize.Task{ID: c.id, Op: optimize.GradEvaluation, Location: &optimize.Location{X: dup(x), Gradient: grad}}
	task := <-c.result
	if task.Location != nil && task.Location.Gradient != nil {
		copy(grad, task.Location.Gradient)
	}
}

func dup(x []float64) []float64 {
	r := make([]float64, len(x))
	copy(r, x)
	return r
}

// Run implements gonum optimize.Method: it steps x along -grad f(x),
// picking each step's length from g.InitialStep/g.LineSearch, until the
// gradient's infinity norm drops below g.GradientTol or MaxMajorIter is
// reached.
func (g *GradientDescent) Run(operation chan<- optimize.Task, result <-chan optimize.Task, tasks []optimize.Task) {
	client := &evalClient{id: tasks[0].ID, operation: operation, result: result}

	x := dup(tasks[0].Location.X)
	grad := make([]float64, len(x))
	s := make([]float64, len(x))
	xNew := make([]float64, len(x))

	client.df(x, grad)
	g.status = optimize.IterationLimit

	for iter := 0; iter < g.MaxMajorIter; iter++ {
		if floats.Norm(grad, math.Inf(1)) < g.GradientTol {
			g.status = optimize.MethodConverge
			break
		}
		for i := range s {
			s[i] = -grad[i]
		}

		obj := linesearch.NewObjective(client.f, client.df, x, s, xNew)
		phi0 := client.f(x)
		dphi0 := dot(grad, s)

		copy(g.state.X, x)
		alpha := g.InitialStep.Init(g.state, obj, phi0, dphi0)
		res, err := g.LineSearch.Search(obj, alpha, phi0, dphi0, g.state.MayTerminate, nil)
		if err != nil {
			g.err = err
			g.status = optimize.Failure
			break
		}

		for i := range x {
			x[i] += res.Alpha * s[i]
		}
		g.state.Alpha = res.Alpha
		g.state.FPrevious = phi0

		client.df(x, grad)

		operation <- optimize.Task{ID: tasks[0].ID, Op: optimize.MajorIteration, Location: &optimize.Location{X: dup(x), F: res.Value, Gradient: dup(grad)}}
		<-result
	}

	operation <- optimize.Task{ID: tasks[0].ID, Op: optimize.MethodDone}
	<-result
	close(operation)
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Status implements gonum optimize.Method.
func (g *GradientDescent) Status() (optimize.Status, error) {
	return g.status, g.err
}
