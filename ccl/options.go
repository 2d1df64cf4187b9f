package ccl

// Option configures a Run invocation.
type Option func(*config)

type config struct {
	workers  int
	roundCap int // 0 means "derive from |V(G0)|"
}

func defaultConfig() config {
	return config{workers: 0, roundCap: 0}
}

// WithWorkers sets the worker count used by every parallel fan-out
// (minselect's two passes, prune's per-vertex pass). n <= 0 means "runtime
// chooses" (runtime.GOMAXPROCS(0)), which is also the default.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithRoundCap overrides the safety cap on driver-loop rounds, which
// guards against a pathological case where the working graph somehow
// fails to shrink. n <= 0 restores the default of 2*|V(G0)|.
func WithRoundCap(n int) Option {
	return func(c *config) { c.roundCap = n }
}
