package supermarket

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCharmRound(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"closer to 49", "5.302", "5.49"},
		{"closer to 99", "7.75", "7.99"},
		{"exact tie goes low", "3.74", "3.49"},
		{"whole dollar", "3", "3.49"},
		{"just under next dollar", "9.991", "9.99"},
		{"already charm", "4.49", "4.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := charmRound(decimal.RequireFromString(tt.price))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("charmRound(%s) = %s, want %s", tt.price, got, tt.want)
			}
		})
	}
}

func TestPriceForKnownProducts(t *testing.T) {
	tests := []struct {
		category string
		product  string
		want     string
	}{
		{"Food", "Bread", "5.49"},
		{"Food", "Turkey", "6.99"},
		{"Beauty", "Shampoo", "23.49"},
		{"Pets", "Shampoo", "15.49"},
	}

	book := NewPriceBook()
	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.product, func(t *testing.T) {
			got := book.PriceFor(tt.category, tt.product)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("PriceFor(%q, %q) = %s, want %s", tt.category, tt.product, got, tt.want)
			}
		})
	}
}

func TestPriceForAlwaysCharmPriced(t *testing.T) {
	book := NewPriceBook()
	for _, cat := range productHierarchy {
		lo, hi := categoryBand(cat.name)
		for _, sub := range cat.subcategories {
			for _, product := range sub.products {
				price := book.PriceFor(cat.name, product)

				cents := price.Mod(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
				if !cents.Equal(decimal.NewFromInt(49)) && !cents.Equal(decimal.NewFromInt(99)) {
					t.Errorf("PriceFor(%q, %q) = %s, cents must be 49 or 99", cat.name, product, price)
				}
				if price.LessThan(decimal.NewFromInt(lo)) || price.GreaterThan(decimal.NewFromInt(hi)) {
					t.Errorf("PriceFor(%q, %q) = %s, outside band [%d, %d]", cat.name, product, price, lo, hi)
				}
			}
		}
	}
}

func TestPriceForIdempotent(t *testing.T) {
	book := NewPriceBook()
	first := book.PriceFor("Food", "Bagel")
	for i := 0; i < 10; i++ {
		if got := book.PriceFor("Food", "Bagel"); !got.Equal(first) {
			t.Fatalf("call %d: PriceFor = %s, want stable %s", i, got, first)
		}
	}
	if book.Len() != 1 {
		t.Fatalf("Len() = %d after repeated lookups of one product, want 1", book.Len())
	}

	other := NewPriceBook()
	if got := other.PriceFor("Food", "Bagel"); !got.Equal(first) {
		t.Fatalf("fresh book PriceFor = %s, want %s (prices derive from the name alone)", got, first)
	}
}

func TestPriceForConcurrent(t *testing.T) {
	book := NewPriceBook()
	want := NewPriceBook().PriceFor("Clothing", "Jeans")

	var wg sync.WaitGroup
	results := make([]decimal.Decimal, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = book.PriceFor("Clothing", "Jeans")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !got.Equal(want) {
			t.Errorf("goroutine %d: PriceFor = %s, want %s", i, got, want)
		}
	}
	if book.Len() != 1 {
		t.Fatalf("Len() = %d after concurrent lookups of one product, want 1", book.Len())
	}
}
