package app

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/dla/engine"
	"github.com/lixenwraith/dla/parameter"
	"github.com/lixenwraith/dla/report"
)

// headlessCheckInterval is the tick count between context checks
const headlessCheckInterval = 1024

// RunHeadless grows a structure without a terminal until it completes, maxTicks pass, or ctx is cancelled
// A non-positive maxTicks uses HeadlessMaxTicks
func RunHeadless(ctx context.Context, p *parameter.Params, width, height, maxTicks int, logger *log.Logger) (*engine.Engine, report.Report) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if maxTicks <= 0 {
		maxTicks = parameter.HeadlessMaxTicks
	}
	p.Clamp()

	e := engine.New(p, width, height, engine.WithLogger(logger))
	rec := report.NewRecorder(parameter.ReportSamples)
	rec.Record(e.GrowthRadius())

	start := time.Now()
	ticks := 0
	for ; ticks < maxTicks && !e.IsComplete(); ticks++ {
		if ticks%headlessCheckInterval == 0 && ctx.Err() != nil {
			logger.Printf("headless: cancelled after %d ticks", ticks)
			break
		}
		e.Tick()
		rec.Record(e.GrowthRadius())
	}
	elapsed := time.Since(start)

	if e.IsComplete() {
		logger.Printf("headless: complete particles=%d ticks=%d elapsed=%s", e.ParticleCount(), ticks, elapsed)
	} else if ticks >= maxTicks {
		logger.Printf("headless: tick cap %d reached, particles=%d", maxTicks, e.ParticleCount())
	}
	return e, report.New(e.ExportState(), elapsed, rec.Samples())
}
