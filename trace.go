package linesearch

// TraceLevel classifies a diagnostic event as a structured enum (FINAL,
// ITER, BRACKET, LINESEARCH, UPDATE, SECANT2, BISECT).
type TraceLevel int

const (
	TraceFinal TraceLevel = iota
	TraceIter
	TraceBracket
	TraceLinesearch
	TraceUpdate
	TraceSecant2
	TraceBisect
)

func (l TraceLevel) String() string {
	switch l {
	case TraceFinal:
		return "final"
	case TraceIter:
		return "iter"
	case TraceBracket:
		return "bracket"
	case TraceLinesearch:
		return "linesearch"
	case TraceUpdate:
		return "update"
	case TraceSecant2:
		return "secant2"
	case TraceBisect:
		return "bisect"
	default:
		return "unknown"
	}
}

// TraceEvent is one diagnostic emission from a line search. Alpha/Value/
// Slope are the probe the event concerns; Note is a short, human-readable
// annotation (e.g. "flat region detected").
type TraceEvent[T Real] struct {
	Level TraceLevel
	Alpha T
	Value T
	Slope T
	Note  string
}

// Tracer receives diagnostic events. Implementations must not block or
// retain the passed TraceEvent's Note string beyond the call (it may be
// reused by the caller).
type Tracer[T Real] interface {
	Trace(TraceEvent[T])
}

// nullTracer discards every event; it is the default when a line search's
// Search is called with a nil Tracer.
type nullTracer[T Real] struct{}

func (nullTracer[T]) Trace(TraceEvent[T]) {}

// NullTracer returns a Tracer that discards all events.
func NullTracer[T Real]() Tracer[T] { return nullTracer[T]{} }

// TracerFunc adapts a plain function to the Tracer interface, for callers
// that want to route events to a *log.Logger or similar the way the
// teacher's PowellMinimizer.Logger / Brent's *log.Logger parameter did.
type TracerFunc[T Real] func(TraceEvent[T])

func (f TracerFunc[T]) Trace(e TraceEvent[T]) { f(e) }
