package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rickgao/fluxgen/internal/model"
)

func TestNewUnknownModule(t *testing.T) {
	gen, err := New("csv", Options{})
	if err == nil {
		t.Fatal("New(\"csv\") succeeded, want error")
	}
	if gen != nil {
		t.Fatalf("New returned %v alongside error", gen)
	}
	for _, name := range Modules() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list known module %q", err, name)
		}
	}
}

func TestModules(t *testing.T) {
	got := Modules()
	want := []string{"stock", "supermarket"}
	if len(got) != len(want) {
		t.Fatalf("Modules() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Modules() = %v, want %v", got, want)
		}
	}
}

func TestStockGeneratorProduce(t *testing.T) {
	gen, err := New(ModuleStock, Options{Variants: 3, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 50; i++ {
		data := gen.Produce()

		var rec model.QuoteRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			t.Fatalf("record %d: invalid JSON %q: %v", i, data, err)
		}
		if rec.Instrument == "" || rec.Price <= 0 || rec.Timestamp == 0 {
			t.Fatalf("record %d: incomplete quote %s", i, data)
		}

		var keys map[string]any
		if err := json.Unmarshal(data, &keys); err != nil {
			t.Fatal(err)
		}
		for _, k := range []string{"instrument", "price", "bid", "ask", "volume", "timestamp"} {
			if _, ok := keys[k]; !ok {
				t.Fatalf("record %d: missing key %q in %s", i, k, data)
			}
		}
	}
}

func TestStockGeneratorZeroVariants(t *testing.T) {
	gen, err := New(ModuleStock, Options{Variants: 0, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 10; i++ {
		if got := string(gen.Produce()); got != Sentinel {
			t.Fatalf("Produce() on empty book = %q, want %q", got, Sentinel)
		}
	}
	if got := gen.Snapshot(); got != "id,price,bid,ask,volume\n" {
		t.Fatalf("Snapshot() = %q, want bare header", got)
	}
}

func TestStockGeneratorSeededReproducible(t *testing.T) {
	newGen := func() Generator {
		t.Helper()
		gen, err := New(ModuleStock, Options{Variants: 4, Seed: 99})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return gen
	}

	a, b := newGen(), newGen()
	for i := 0; i < 100; i++ {
		var ra, rb model.QuoteRecord
		if err := json.Unmarshal(a.Produce(), &ra); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(b.Produce(), &rb); err != nil {
			t.Fatal(err)
		}
		// Timestamps track the wall clock, everything else must match.
		ra.Timestamp, rb.Timestamp = 0, 0
		if ra != rb {
			t.Fatalf("record %d diverged with equal seeds:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestSalesGeneratorProduce(t *testing.T) {
	gen, err := New(ModuleSupermarket, Options{Seed: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 50; i++ {
		data := gen.Produce()

		var rec model.SaleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			t.Fatalf("record %d: invalid JSON %q: %v", i, data, err)
		}
		if rec.TransactionID == "" || rec.Product.ProductName == "" || rec.Quantity == 0 {
			t.Fatalf("record %d: incomplete sale %s", i, data)
		}

		var keys map[string]any
		if err := json.Unmarshal(data, &keys); err != nil {
			t.Fatal(err)
		}
		for _, k := range []string{"transaction_id", "basket_id", "timestamp", "store", "customer", "product", "quantity", "total_price"} {
			if _, ok := keys[k]; !ok {
				t.Fatalf("record %d: missing key %q in %s", i, k, data)
			}
		}
	}

	if got := gen.Snapshot(); !strings.HasPrefix(got, "Basket Summary: ") {
		t.Fatalf("Snapshot() = %q, want basket summary line", got)
	}
}
