package model

// -----------------------------------------------------------------------------
// Simulation Entities
// -----------------------------------------------------------------------------

// Instrument represents a simulated tradable instrument.
// Owned exclusively by the stock book; mutated in place on each step.
type Instrument struct {
	ID     string  // Stable identifier (e.g., "STK0")
	Price  float64 // Last simulated price, always > 0
	Bid    float64 // Best bid, always < Price
	Ask    float64 // Best ask, always > Price
	Volume int64   // Cumulative traded volume, non-decreasing
}

// Store holds the point-of-sale location for one basket.
// Sampled once per basket and fixed for its lifetime.
type Store struct {
	Town    string `json:"town"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Customer holds the shopper demographics for one basket.
// Sampled once per basket and fixed for its lifetime.
type Customer struct {
	Age        int    `json:"age"`         // [18, 80)
	IncomeBand string `json:"income_band"` // "Low", "Medium", or "High"
}

// Product is one catalog item with its derived unit price.
// Created transiently per line item; the unit price for a given
// (category, product_name) pair never changes within a process.
type Product struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	UnitPrice   float64 `json:"unit_price"`
}

// -----------------------------------------------------------------------------
// Interchange Records
// -----------------------------------------------------------------------------

// QuoteRecord is the wire shape for one instrument update.
type QuoteRecord struct {
	Instrument string  `json:"instrument"`
	Price      float64 `json:"price"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Volume     int64   `json:"volume"`
	Timestamp  int64   `json:"timestamp"` // Unix seconds
}

// SaleRecord is the wire shape for one retail line item.
// All items of one basket share TransactionID, BasketID, Store and Customer.
type SaleRecord struct {
	TransactionID string   `json:"transaction_id"`
	BasketID      string   `json:"basket_id"`
	Timestamp     int64    `json:"timestamp"` // Unix seconds
	Store         Store    `json:"store"`
	Customer      Customer `json:"customer"`
	Product       Product  `json:"product"`
	Quantity      int      `json:"quantity"`    // [1, 5)
	TotalPrice    float64  `json:"total_price"` // UnitPrice * Quantity
}
