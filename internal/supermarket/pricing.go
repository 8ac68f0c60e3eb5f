package supermarket

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Charm price endings. Every unit price lands on one of these.
var (
	charm49 = decimal.New(49, -2)
	charm99 = decimal.New(99, -2)
)

type priceKey struct {
	category string
	name     string
}

// PriceBook memoizes the charm-rounded unit price of every product it has
// been asked about. Prices derive from the product name alone, so the first
// and every later lookup of a (category, name) pair return the same value.
type PriceBook struct {
	mu     sync.Mutex
	prices map[priceKey]decimal.Decimal
}

// NewPriceBook returns an empty price book.
func NewPriceBook() *PriceBook {
	return &PriceBook{prices: make(map[priceKey]decimal.Decimal)}
}

// PriceFor returns the unit price for a product, computing and memoizing it
// on first use. Safe for concurrent callers; the insert is idempotent.
func (p *PriceBook) PriceFor(category, name string) decimal.Decimal {
	key := priceKey{category: category, name: name}

	p.mu.Lock()
	defer p.mu.Unlock()
	if price, ok := p.prices[key]; ok {
		return price
	}
	price := charmRound(rawPrice(category, name))
	p.prices[key] = price
	return price
}

// Len returns the number of distinct products priced so far.
func (p *PriceBook) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prices)
}

// categoryBand returns the dollar band products of a category price into.
func categoryBand(category string) (lo, hi int64) {
	switch category {
	case "Food":
		return 1, 10
	case "Beauty":
		return 5, 30
	case "Healthcare":
		return 3, 25
	case "Cleaning Products":
		return 2, 15
	case "Pets":
		return 3, 20
	case "Clothing":
		return 5, 50
	default:
		return 1, 20
	}
}

// nameHash folds the product name's bytes into a wrapping 32-bit sum.
func nameHash(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h += uint32(name[i])
	}
	return h
}

// rawPrice maps a product name into its category's dollar band. The hash is
// reduced to thousandths, so the result is exact in decimal.
func rawPrice(category, name string) decimal.Decimal {
	lo, hi := categoryBand(category)
	scaled := decimal.New(int64(nameHash(name)%1000), -3)
	return decimal.NewFromInt(lo).Add(scaled.Mul(decimal.NewFromInt(hi - lo)))
}

// charmRound snaps a price to whichever of floor+0.49 and floor+0.99 is
// closer. Exact ties resolve to the .49 ending.
func charmRound(price decimal.Decimal) decimal.Decimal {
	base := price.Floor()
	lower := base.Add(charm49)
	upper := base.Add(charm99)
	if price.Sub(lower).Abs().LessThanOrEqual(price.Sub(upper).Abs()) {
		return lower
	}
	return upper
}
