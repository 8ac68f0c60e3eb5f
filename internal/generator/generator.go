package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/rickgao/fluxgen/internal/stock"
	"github.com/rickgao/fluxgen/internal/supermarket"
)

// Sentinel is the record emitted when a generator has nothing to produce or
// a record fails to serialize. Consumers can always treat output as JSON.
const Sentinel = "{}"

// Generator produces one serialized record per call.
//
// Produce must always return a valid record; internal problems degrade to
// the Sentinel. Snapshot renders the generator's current state for
// end-of-run reporting. Implementations are not safe for concurrent use;
// the stream driver is the single caller.
type Generator interface {
	Produce() []byte
	Snapshot() string
}

// Selectable module names.
const (
	ModuleStock       = "stock"
	ModuleSupermarket = "supermarket"
)

// Modules lists the selectable generator modules.
func Modules() []string {
	return []string{ModuleStock, ModuleSupermarket}
}

// Options configures generator construction. Zero-value engine configs are
// replaced with their package defaults; Seed 0 means time-seeded.
type Options struct {
	Variants    int   // Instrument count for the stock module
	Seed        int64 // Deterministic source for all sampled state when non-zero
	Stock       stock.Config
	Supermarket supermarket.Config
	Logger      *slog.Logger
}

// New constructs the generator for the named module.
func New(module string, opts Options) (Generator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	switch module {
	case ModuleStock:
		cfg := opts.Stock
		if cfg == (stock.Config{}) {
			cfg = stock.DefaultConfig()
		}
		return &quoteGenerator{
			book:   stock.NewBook(opts.Variants, cfg, rng),
			logger: logger,
		}, nil
	case ModuleSupermarket:
		cfg := opts.Supermarket
		if cfg == (supermarket.Config{}) {
			cfg = supermarket.DefaultConfig()
		}
		return &salesGenerator{
			register: supermarket.NewRegister(cfg, rng),
			logger:   logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown generator module %q (known: %s)", module, strings.Join(Modules(), ", "))
	}
}
