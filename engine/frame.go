package engine

import "github.com/lixenwraith/dla/parameter"

// Frame is a read-only view of the structure for one render pass
// Particles aliases the engine table: entries below len are never rewritten, and Reset allocates a new table
type Frame struct {
	Width, Height int
	Origin        Point
	Particles     []Particle
	GrowthRadius  float64
	Budget        int
	// MaxNeighbors is the slot count of the neighborhood in effect, the density normalizer
	MaxNeighbors int
	// Generation increments on every reset, renderers key their caches on it
	Generation uint64
	Complete   bool
}

// Snapshot captures the current structure for rendering
func (e *Engine) Snapshot() Frame {
	n := len(e.particles)
	return Frame{
		Width:        e.width,
		Height:       e.height,
		Origin:       e.origin,
		Particles:    e.particles[:n:n],
		GrowthRadius: e.radius,
		Budget:       e.params.Particles,
		MaxNeighbors: e.params.Neighborhood.Slots(),
		Generation:   e.generation,
		Complete:     e.IsComplete(),
	}
}

// State is the serializable parameter and structure summary written by config export
type State struct {
	Params    parameter.Params `toml:"params"`
	Structure Summary          `toml:"structure"`
}

// Summary describes the grown structure without its particle history
type Summary struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	RandomSeed   uint64  `toml:"random_seed"` // seed actually used, reproduces the run when fed back
	SeedCount    int     `toml:"seed_count"`
	Attached     int     `toml:"attached"`
	GrowthRadius float64 `toml:"growth_radius"`
	Complete     bool    `toml:"complete"`
	Ticks        int     `toml:"ticks"`
	Stuck        int     `toml:"stuck"`
	Escaped      int     `toml:"escaped"`
	TimedOut     int     `toml:"timed_out"`
	Absorbed     int     `toml:"absorbed"`
	Rejected     int     `toml:"rejected"`
}

// ExportState copies the parameters and summarizes the run
func (e *Engine) ExportState() State {
	return State{
		Params: *e.params,
		Structure: Summary{
			Width:        e.width,
			Height:       e.height,
			RandomSeed:   e.seed,
			SeedCount:    e.seedCount,
			Attached:     len(e.particles),
			GrowthRadius: e.radius,
			Complete:     e.IsComplete(),
			Ticks:        e.stats.Ticks,
			Stuck:        e.stats.Stuck,
			Escaped:      e.stats.Escaped,
			TimedOut:     e.stats.TimedOut,
			Absorbed:     e.stats.Absorbed,
			Rejected:     e.stats.Rejected,
		},
	}
}
