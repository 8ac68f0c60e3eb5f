package model

import (
	"encoding/json"
	"testing"
)

// TestQuoteRecordWireFormat ensures the quote JSON keys match the interchange
// contract consumed by downstream pipelines.
func TestQuoteRecordWireFormat(t *testing.T) {
	rec := QuoteRecord{
		Instrument: "STK3",
		Price:      151.32,
		Bid:        151.17,
		Ask:        151.47,
		Volume:     12500,
		Timestamp:  1705321845,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"instrument", "price", "bid", "ask", "volume", "timestamp"} {
		if _, ok := m[key]; !ok {
			t.Errorf("quote record missing wire key %q", key)
		}
	}
	if len(m) != 6 {
		t.Errorf("quote record has %d wire keys, want 6", len(m))
	}
	if m["instrument"] != "STK3" {
		t.Errorf("instrument = %v, want STK3", m["instrument"])
	}
	if m["volume"] != float64(12500) {
		t.Errorf("volume = %v, want 12500", m["volume"])
	}
}

// TestSaleRecordWireFormat ensures the sale JSON shape, including the nested
// store/customer/product objects, matches the interchange contract.
func TestSaleRecordWireFormat(t *testing.T) {
	rec := SaleRecord{
		TransactionID: "TXN-test",
		BasketID:      "BASKET-test",
		Timestamp:     1705321845,
		Store:         Store{Town: "Springfield", State: "IL", Country: "USA"},
		Customer:      Customer{Age: 34, IncomeBand: "Medium"},
		Product: Product{
			ProductName: "Bread",
			Category:    "Food",
			Subcategory: "Bakery",
			UnitPrice:   2.49,
		},
		Quantity:   3,
		TotalPrice: 7.47,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"transaction_id", "basket_id", "timestamp", "store", "customer", "product", "quantity", "total_price"} {
		if _, ok := m[key]; !ok {
			t.Errorf("sale record missing wire key %q", key)
		}
	}

	store, ok := m["store"].(map[string]any)
	if !ok {
		t.Fatalf("store is not an object: %T", m["store"])
	}
	if store["town"] != "Springfield" || store["state"] != "IL" || store["country"] != "USA" {
		t.Errorf("store = %v, want town/state/country fields", store)
	}

	customer, ok := m["customer"].(map[string]any)
	if !ok {
		t.Fatalf("customer is not an object: %T", m["customer"])
	}
	if customer["age"] != float64(34) {
		t.Errorf("customer.age = %v, want 34", customer["age"])
	}
	if customer["income_band"] != "Medium" {
		t.Errorf("customer.income_band = %v, want Medium", customer["income_band"])
	}

	product, ok := m["product"].(map[string]any)
	if !ok {
		t.Fatalf("product is not an object: %T", m["product"])
	}
	if product["product_name"] != "Bread" {
		t.Errorf("product.product_name = %v, want Bread", product["product_name"])
	}
	if product["unit_price"] != 2.49 {
		t.Errorf("product.unit_price = %v, want 2.49", product["unit_price"])
	}
}
