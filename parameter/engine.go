package parameter

import "time"

// Control Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickBudget is the wall time the loop spends on simulation ticks per frame
	// Leaves headroom for input handling and the terminal flush
	TickBudget = 10 * time.Millisecond

	// MaxTicksPerFrame caps tick work when a tick is cheap (e.g. empty pool)
	MaxTicksPerFrame = 64

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 64
)

// Simulation Plane
const (
	// MinSimulationDim is the floor of each lattice dimension regardless of terminal size
	MinSimulationDim = 64

	// HeadlessWidth and HeadlessHeight size the lattice when no terminal is attached
	HeadlessWidth  = 400
	HeadlessHeight = 200

	// HeadlessMaxTicks stops a headless run that never completes (e.g. absorb boundary with low stickiness)
	HeadlessMaxTicks = 2_000_000

	// AdaptiveRefreshInterval is the iteration count between adaptive step multiplier refreshes
	AdaptiveRefreshInterval = 8

	// SpawnAttempts bounds placement retries before falling back to a probe scan
	SpawnAttempts = 32
)
