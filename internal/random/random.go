// Package random provides a tiny seeded linear-congruential generator.
//
// The same recurrence is used by the web client, so question selection stays
// reproducible across both: state = (state*9301 + 49297) mod 233280.
package random

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Generator produces a deterministic stream of values in [0, 1).
// Re-creating a generator with the same seed restarts the stream.
type Generator struct {
	state int64
}

// New creates a generator from an integer seed
func New(seed int64) *Generator {
	return &Generator{state: seed}
}

// Next advances the generator and returns the next value in [0, 1)
func (g *Generator) Next() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	if g.state < 0 {
		g.state += modulus
	}
	return float64(g.state) / modulus
}
