package stream

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickgao/fluxgen/internal/generator"
	"github.com/rickgao/fluxgen/internal/sink"
)

// Config holds driver configuration.
type Config struct {
	Rate int // Records per second (default: 1)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Rate: 1}
}

// Stats describes a driver's lifetime activity.
type Stats struct {
	Produced   int64 // Records pulled from the generator
	SinkErrors int64 // Failed sink publishes (records still count as produced)
}

// Driver pulls records from a generator at a fixed cadence and fans them out
// to the sinks. The generator is called from a single goroutine.
type Driver struct {
	cfg    Config
	gen    generator.Generator
	sinks  []sink.Sink
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	produced   atomic.Int64
	sinkErrors atomic.Int64
}

// New creates a Driver. A non-positive rate falls back to one record per
// second; a nil logger means slog.Default().
func New(cfg Config, gen generator.Generator, sinks []sink.Sink, logger *slog.Logger) *Driver {
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		cfg:    cfg,
		gen:    gen,
		sinks:  sinks,
		logger: logger,
	}
}

// Interval returns the tick spacing for the configured rate.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.cfg.Rate)
}

// Start begins the generation loop.
func (d *Driver) Start(ctx context.Context) error {
	d.ctx, d.cancel = context.WithCancel(ctx)

	d.wg.Add(1)
	go d.run()

	d.logger.Info("stream driver started",
		"rate", d.cfg.Rate,
		"interval", d.Interval(),
		"sinks", len(d.sinks),
	)
	return nil
}

// Stop gracefully shuts down the loop. Sinks are not stopped here; the
// caller flushes them once the driver is down.
func (d *Driver) Stop(ctx context.Context) error {
	if d.cancel != nil {
		d.cancel()
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("stream driver stopped", "produced", d.produced.Load())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns current counters.
func (d *Driver) Stats() Stats {
	return Stats{
		Produced:   d.produced.Load(),
		SinkErrors: d.sinkErrors.Load(),
	}
}

// run is the main cadence loop.
func (d *Driver) run() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.Interval())
	defer ticker.Stop()

	// Emit immediately on start.
	d.emit()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.emit()
		}
	}
}

// emit produces one record and hands it to every sink.
func (d *Driver) emit() {
	record := d.gen.Produce()
	d.produced.Add(1)

	for _, s := range d.sinks {
		if err := s.Publish(record); err != nil {
			d.sinkErrors.Add(1)
			d.logger.Error("record publish failed", "sink", s.Name(), "error", err)
		}
	}
}
