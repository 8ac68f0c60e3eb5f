package generator

import (
	"encoding/json"
	"log/slog"

	"github.com/rickgao/fluxgen/internal/stock"
	"github.com/rickgao/fluxgen/internal/supermarket"
)

// quoteGenerator streams instrument quotes from a stock book.
type quoteGenerator struct {
	book   *stock.Book
	logger *slog.Logger
}

func (g *quoteGenerator) Produce() []byte {
	rec, ok := g.book.Advance()
	if !ok {
		return []byte(Sentinel)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		g.logger.Error("quote serialization failed", "instrument", rec.Instrument, "error", err)
		return []byte(Sentinel)
	}
	return data
}

func (g *quoteGenerator) Snapshot() string {
	return g.book.Snapshot()
}

// salesGenerator streams basket line items from a register.
type salesGenerator struct {
	register *supermarket.Register
	logger   *slog.Logger
}

func (g *salesGenerator) Produce() []byte {
	rec := g.register.EmitItem()
	data, err := json.Marshal(rec)
	if err != nil {
		g.logger.Error("sale serialization failed", "transaction_id", rec.TransactionID, "error", err)
		return []byte(Sentinel)
	}
	return data
}

func (g *salesGenerator) Snapshot() string {
	return g.register.Snapshot()
}
