package stock

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rickgao/fluxgen/internal/model"
)

// Config holds simulation parameters for a Book.
type Config struct {
	Drift           float64 // GBM drift (default: 0.0001)
	Volatility      float64 // GBM volatility (default: 0.01)
	Dt              float64 // Time increment per step, in years (default: 1/252)
	PriceFloor      float64 // Hard lower bound for prices (default: 0.01)
	BaseSpread      float64 // Base half-spread as a fraction of price (default: 0.001)
	ExtraSpreadMax  float64 // Exclusive upper bound of the per-step extra spread fraction (default: 0.001)
	BaseVolume      int64   // Minimum traded volume per step (default: 1000)
	VolumeJitterMax int64   // Exclusive upper bound of the per-step volume jitter (default: 500)

	// Instrument initialization ranges.
	InitialPriceMin  float64 // default: 100
	InitialPriceMax  float64 // default: 200
	InitialSpreadMin float64 // initial spread fraction, default: 0.001
	InitialSpreadMax float64 // default: 0.002
}

// DefaultConfig returns the documented simulation defaults.
func DefaultConfig() Config {
	return Config{
		Drift:            0.0001,
		Volatility:       0.01,
		Dt:               1.0 / 252.0,
		PriceFloor:       0.01,
		BaseSpread:       0.001,
		ExtraSpreadMax:   0.001,
		BaseVolume:       1000,
		VolumeJitterMax:  500,
		InitialPriceMin:  100,
		InitialPriceMax:  200,
		InitialSpreadMin: 0.001,
		InitialSpreadMax: 0.002,
	}
}

// Book holds the simulated instruments. The collection size is fixed at
// construction; exactly one instrument is mutated per Advance call.
type Book struct {
	cfg         Config
	rng         *rand.Rand
	process     Process
	instruments []model.Instrument
}

// NewBook creates a Book with the given number of instruments. A nil rng is
// replaced with a time-seeded one. Zero variants is allowed; Advance then
// reports no data.
func NewBook(variants int, cfg Config, rng *rand.Rand) *Book {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	instruments := make([]model.Instrument, 0, variants)
	for i := 0; i < variants; i++ {
		price := cfg.InitialPriceMin + rng.Float64()*(cfg.InitialPriceMax-cfg.InitialPriceMin)
		spread := price * (cfg.InitialSpreadMin + rng.Float64()*(cfg.InitialSpreadMax-cfg.InitialSpreadMin))
		instruments = append(instruments, model.Instrument{
			ID:    fmt.Sprintf("STK%d", i),
			Price: price,
			Bid:   price - spread,
			Ask:   price + spread,
		})
	}

	return &Book{
		cfg:         cfg,
		rng:         rng,
		process:     NewGBM(cfg.Drift, cfg.Volatility, rng),
		instruments: instruments,
	}
}

// Len returns the number of instruments in the book.
func (b *Book) Len() int {
	return len(b.instruments)
}

// Advance evolves one randomly chosen instrument and returns its updated
// quote. ok is false when the book holds no instruments.
func (b *Book) Advance() (rec model.QuoteRecord, ok bool) {
	if len(b.instruments) == 0 {
		return model.QuoteRecord{}, false
	}

	inst := &b.instruments[b.rng.Intn(len(b.instruments))]

	next := b.process.Next(inst.Price, b.cfg.Dt)
	if next < b.cfg.PriceFloor {
		next = b.cfg.PriceFloor
	}
	inst.Price = next

	// Spread fraction is resampled every step, never accumulated.
	fraction := b.cfg.BaseSpread
	if b.cfg.ExtraSpreadMax > 0 {
		fraction += b.rng.Float64() * b.cfg.ExtraSpreadMax
	}
	spread := inst.Price * fraction
	inst.Bid = inst.Price - spread
	inst.Ask = inst.Price + spread

	traded := b.cfg.BaseVolume
	if b.cfg.VolumeJitterMax > 0 {
		traded += b.rng.Int63n(b.cfg.VolumeJitterMax)
	}
	inst.Volume += traded

	return model.QuoteRecord{
		Instrument: inst.ID,
		Price:      inst.Price,
		Bid:        inst.Bid,
		Ask:        inst.Ask,
		Volume:     inst.Volume,
		Timestamp:  time.Now().Unix(),
	}, true
}

// Snapshot renders the full book as CSV, one row per instrument.
// Intended for post-run introspection, not the hot path.
func (b *Book) Snapshot() string {
	var sb strings.Builder
	sb.WriteString("id,price,bid,ask,volume\n")
	for i := range b.instruments {
		inst := &b.instruments[i]
		fmt.Fprintf(&sb, "%s,%.2f,%.2f,%.2f,%d\n", inst.ID, inst.Price, inst.Bid, inst.Ask, inst.Volume)
	}
	return sb.String()
}
