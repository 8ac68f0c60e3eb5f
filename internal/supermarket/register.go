package supermarket

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rickgao/fluxgen/internal/model"
)

// Customer and basket sampling bounds.
const (
	customerAgeMin = 18 // inclusive
	customerAgeMax = 80 // exclusive
)

var incomeBands = [...]string{"Low", "Medium", "High"}

// Config holds basket session parameters. All ranges are half-open; setting
// Min == Max pins the value.
type Config struct {
	BasketSizeMin int // Items per auto-created basket, inclusive (default: 5)
	BasketSizeMax int // exclusive (default: 16)
	QuantityMin   int // Units per line item, inclusive (default: 1)
	QuantityMax   int // exclusive (default: 5)
}

// DefaultConfig returns the documented basket defaults.
func DefaultConfig() Config {
	return Config{
		BasketSizeMin: 5,
		BasketSizeMax: 16,
		QuantityMin:   1,
		QuantityMax:   5,
	}
}

// basket is one in-progress transaction. Identity fields are sampled at
// creation and never change; emitted only grows, up to target.
type basket struct {
	transactionID string
	basketID      string
	store         model.Store
	customer      model.Customer
	target        int
	emitted       int
}

// Register emits line-item sales, one per call, grouped into basket sessions.
// When the active session reaches its target the next emission starts a
// fresh one. Not safe for concurrent use.
type Register struct {
	cfg     Config
	rng     *rand.Rand
	prices  *PriceBook
	catalog *Catalog
	faker   *gofakeit.Faker
	basket  *basket
}

// NewRegister creates a register with its own price book and catalog. A nil
// rng is replaced with a time-seeded one.
func NewRegister(cfg Config, rng *rand.Rand) *Register {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	prices := NewPriceBook()
	return &Register{
		cfg:     cfg,
		rng:     rng,
		prices:  prices,
		catalog: NewCatalog(prices),
		faker:   gofakeit.New(rng.Int63()),
	}
}

// StartBasket opens a new session sized to the given item count, replacing
// any active session. EmitItem calls this automatically on exhaustion;
// callers only need it to pin a session size.
func (r *Register) StartBasket(size int) {
	age := customerAgeMin + r.rng.Intn(customerAgeMax-customerAgeMin)
	r.basket = &basket{
		transactionID: "TXN-" + uuid.NewString(),
		basketID:      "BASKET-" + uuid.NewString(),
		store: model.Store{
			Town:    r.faker.City(),
			State:   r.faker.StateAbr(),
			Country: "USA",
		},
		customer: model.Customer{
			Age:        age,
			IncomeBand: incomeBands[r.rng.Intn(len(incomeBands))],
		},
		target: size,
	}
}

// EmitItem produces the next line item. A fresh session is started first
// when none is active or the current one has reached its target.
func (r *Register) EmitItem() model.SaleRecord {
	if r.basket == nil || r.basket.emitted >= r.basket.target {
		size := r.cfg.BasketSizeMin
		if span := r.cfg.BasketSizeMax - r.cfg.BasketSizeMin; span > 0 {
			size += r.rng.Intn(span)
		}
		r.StartBasket(size)
	}

	b := r.basket
	b.emitted++

	product := r.catalog.Sample(r.rng)
	quantity := r.cfg.QuantityMin
	if span := r.cfg.QuantityMax - r.cfg.QuantityMin; span > 0 {
		quantity += r.rng.Intn(span)
	}
	total := r.prices.PriceFor(product.Category, product.ProductName).
		Mul(decimal.NewFromInt(int64(quantity)))

	return model.SaleRecord{
		TransactionID: b.transactionID,
		BasketID:      b.basketID,
		Timestamp:     time.Now().Unix(),
		Store:         b.store,
		Customer:      b.customer,
		Product:       product,
		Quantity:      quantity,
		TotalPrice:    total.InexactFloat64(),
	}
}

// Snapshot reports the active session's identity and progress on one line.
func (r *Register) Snapshot() string {
	if r.basket == nil {
		return "No basket data available."
	}
	return fmt.Sprintf("Basket Summary: transaction_id: %s, basket_id: %s, items_generated: %d, total_items: %d",
		r.basket.transactionID, r.basket.basketID, r.basket.emitted, r.basket.target)
}
