package engine

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/vmath"
)

// Particle is one attached structure point, immutable once created
type Particle struct {
	X, Y      int
	Age       int     // attachment sequence, 1-based, seeds included
	Neighbors int     // occupied neighbors at stick time
	Angle     float64 // approach heading in radians, screen space
	Dist      float64 // distance from origin at attach time
}

// Stats counts walker outcomes since the last reset
type Stats struct {
	Ticks    int
	Spawned  int
	Stuck    int
	Escaped  int
	TimedOut int
	Absorbed int
	Rejected int
}

// Engine owns the particle table, occupancy index, growth radius, random stream and walker pool
// Not safe for concurrent use; the control loop serializes Tick, Reset and Snapshot
type Engine struct {
	params *parameter.Params // shared with the caller, re-read every tick

	width, height int
	origin        Point

	occ       *Occupancy
	particles []Particle
	walkers   []Walker
	radius    float64

	seedCount  int
	seedRadius float64

	rng     Random
	newRand func(seed uint64) Random
	seed    uint64 // seed the current stream was built from

	generation uint64
	stats      Stats
	completed  bool

	logger *log.Logger
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithLogger routes lifecycle events (reset, resize, completion) to l
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRandom substitutes the stream factory; it is called once per reset with the resolved seed
func WithRandom(factory func(seed uint64) Random) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newRand = factory
		}
	}
}

// New creates an engine over a width x height lattice and applies the seed pattern
func New(p *parameter.Params, width, height int, opts ...Option) *Engine {
	e := &Engine{
		params: p,
		width:  max(width, 1),
		height: max(height, 1),
		newRand: func(seed uint64) Random {
			return vmath.NewFastRand(seed)
		},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// SimulationSize maps a terminal area to lattice dimensions for a dot matrix, floored at MinSimulationDim
func SimulationSize(cols, rows int, matrix parameter.DotMatrix) (int, int) {
	dw, dh := matrix.Dots()
	return max(cols*dw, parameter.MinSimulationDim), max(rows*dh, parameter.MinSimulationDim)
}

// Reset discards all state and reseeds the pattern
// Every structure is rebuilt before the swap so a held Frame never sees a partial reset
func (e *Engine) Reset() {
	seed := e.params.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := e.newRand(seed)

	origin := Point{e.width / 2, e.height / 2}
	occ := NewOccupancy(e.width, e.height)
	cells := SeedCells(e.params.SeedPattern, e.width, e.height, origin, rng)

	budget := max(e.params.Particles, 1)
	particles := make([]Particle, 0, budget)
	radius := 1.0
	for _, c := range cells {
		if len(particles) >= budget {
			break
		}
		dist := math.Hypot(float64(c.X-origin.X), float64(c.Y-origin.Y))
		occ.Insert(c.X, c.Y, len(particles))
		particles = append(particles, Particle{
			X: c.X, Y: c.Y,
			Age:  len(particles) + 1,
			Dist: dist,
		})
		radius = math.Max(radius, dist)
	}

	e.origin = origin
	e.occ = occ
	e.particles = particles
	e.walkers = e.walkers[:0]
	e.radius = radius
	e.seedCount = len(particles)
	e.seedRadius = radius
	e.rng = rng
	e.seed = seed
	e.stats = Stats{}
	e.completed = false
	e.generation++

	e.logger.Printf("engine: reset gen=%d pattern=%s seeds=%d radius=%.1f grid=%dx%d seed=%d",
		e.generation, e.params.SeedPattern, e.seedCount, radius, e.width, e.height, seed)
}

// Resize changes the lattice and resets when the dimensions differ
func (e *Engine) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == e.width && height == e.height {
		return
	}
	e.logger.Printf("engine: resize %dx%d -> %dx%d", e.width, e.height, width, height)
	e.width, e.height = width, height
	e.Reset()
}

// IsComplete reports whether the attached count reached the particle budget
func (e *Engine) IsComplete() bool {
	return len(e.particles) >= e.params.Particles
}

// Tick advances every active walker exactly once, keeping the pool at Speed walkers
func (e *Engine) Tick() {
	if e.IsComplete() {
		e.walkers = e.walkers[:0]
		e.markComplete()
		return
	}
	e.fillPool()

	p := e.params
	env := stepEnv{occ: e.occ, origin: e.originVec()}
	edgeSolid := p.Boundary == parameter.BoundaryStick

	for i := range e.walkers {
		w := &e.walkers[i]
		env.radius = e.radius

		state := w.advance(p, env, e.width, e.height, e.rng)
		if state == Walking {
			state = e.evaluate(w, edgeSolid)
		}
		if !state.Terminal() {
			continue
		}

		switch state {
		case Stuck:
			e.stats.Stuck++
		case RemovedAbsorbed:
			e.stats.Absorbed++
		case RemovedEscaped:
			e.stats.Escaped++
		case RemovedTimeout:
			e.stats.TimedOut++
		}

		if e.IsComplete() {
			e.walkers = e.walkers[:0]
			break
		}
		*w = e.spawn()
	}

	e.stats.Ticks++
	if e.IsComplete() {
		e.markComplete()
	}
}

// evaluate runs the sticking evaluator and commits an attach
func (e *Engine) evaluate(w *Walker, edgeSolid bool) WalkerState {
	cell := w.Cell()
	dist := vmath.Dist(w.Pos, e.originVec())
	dec := EvaluateStick(e.occ, cell, dist, e.params, edgeSolid, w.atEdge, e.rng)
	if dec.Rejected {
		e.stats.Rejected++
	}
	if !dec.Stick {
		return Walking
	}
	e.attach(cell, dec.Neighbors, w.ApproachAngle())
	return Stuck
}

// attach inserts a particle and grows the radius as one step
func (e *Engine) attach(c Point, neighbors int, angle float64) {
	key := len(e.particles)
	dist := math.Hypot(float64(c.X-e.origin.X), float64(c.Y-e.origin.Y))
	e.occ.Insert(c.X, c.Y, key)
	e.particles = append(e.particles, Particle{
		X: c.X, Y: c.Y,
		Age:       key + 1,
		Neighbors: neighbors,
		Angle:     angle,
		Dist:      dist,
	})
	if dist > e.radius {
		e.radius = dist
	}
}

// fillPool grows or trims the walker pool to the current Speed
func (e *Engine) fillPool() {
	target := max(e.params.Speed, 1)
	if len(e.walkers) > target {
		e.walkers = e.walkers[:target]
	}
	for len(e.walkers) < target {
		e.walkers = append(e.walkers, e.spawn())
	}
}

func (e *Engine) spawn() Walker {
	e.stats.Spawned++
	return spawnWalker(e.spawnConfig(), e.occ, e.rng)
}

func (e *Engine) spawnConfig() SpawnConfig {
	return SpawnConfig{
		Mode:      e.params.SpawnMode,
		Radius:    e.radius,
		Offset:    e.params.SpawnOffset,
		MinRadius: e.params.MinRadius,
		Origin:    e.originVec(),
		Width:     e.width,
		Height:    e.height,
	}
}

func (e *Engine) markComplete() {
	if e.completed {
		return
	}
	e.completed = true
	e.logger.Printf("engine: complete gen=%d particles=%d radius=%.1f ticks=%d",
		e.generation, len(e.particles), e.radius, e.stats.Ticks)
}

func (e *Engine) originVec() vmath.Vec2 {
	return vmath.V2(float64(e.origin.X), float64(e.origin.Y))
}

// ParticleCount returns the attached count, seeds included
func (e *Engine) ParticleCount() int { return len(e.particles) }

// GrowthRadius returns the maximum attach distance from origin
func (e *Engine) GrowthRadius() float64 { return e.radius }

// ActiveWalkers returns the in-flight pool size
func (e *Engine) ActiveWalkers() int { return len(e.walkers) }

// Walkers exposes the in-flight pool, read-only
func (e *Engine) Walkers() []Walker { return e.walkers }

// Stats returns outcome counters since the last reset
func (e *Engine) Stats() Stats { return e.stats }

// Params returns the shared parameter set
func (e *Engine) Params() *parameter.Params { return e.params }

// Size returns the lattice dimensions
func (e *Engine) Size() (int, int) { return e.width, e.height }

// Origin returns the structure origin cell
func (e *Engine) Origin() Point { return e.origin }

// Occupancy exposes the index, read-only for callers
func (e *Engine) Occupancy() *Occupancy { return e.occ }

// Seed returns the random seed the current run was built from
func (e *Engine) Seed() uint64 { return e.seed }

// Generation returns the reset counter, 1 after New
func (e *Engine) Generation() uint64 { return e.generation }

// SeedCount returns the number of pre-attached seed particles
func (e *Engine) SeedCount() int { return e.seedCount }

// Progress returns attached/budget in [0,1]
func (e *Engine) Progress() float64 {
	if e.params.Particles <= 0 {
		return 1
	}
	return math.Min(float64(len(e.particles))/float64(e.params.Particles), 1)
}
