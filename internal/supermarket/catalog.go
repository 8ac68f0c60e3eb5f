package supermarket

import (
	"math/rand"

	"github.com/rickgao/fluxgen/internal/model"
)

type subcategory struct {
	name     string
	products []string
}

type category struct {
	name          string
	subcategories []subcategory
}

// productHierarchy is the fixed catalog: category, subcategory, product name.
// Unit prices are not stored here; they derive from the names via PriceBook.
var productHierarchy = []category{
	{
		name: "Food",
		subcategories: []subcategory{
			{name: "Canned Goods", products: []string{"Tomato Soup", "Baked Beans", "Corn", "Peaches"}},
			{name: "Bakery", products: []string{"Bread", "Croissant", "Bagel", "Muffin"}},
			{name: "Deli", products: []string{"Ham", "Turkey", "Cheese", "Salami"}},
			{name: "Produce", products: []string{"Apples", "Bananas", "Carrots", "Lettuce"}},
			{name: "Frozen", products: []string{"Ice Cream", "Frozen Pizza", "Frozen Vegetables", "Frozen Dinners"}},
		},
	},
	{
		name: "Beauty",
		subcategories: []subcategory{
			{name: "Skincare", products: []string{"Moisturizer", "Cleanser", "Sunscreen", "Serum"}},
			{name: "Makeup", products: []string{"Lipstick", "Mascara", "Foundation", "Eyeliner"}},
			{name: "Haircare", products: []string{"Shampoo", "Conditioner", "Hair Gel", "Hair Spray"}},
			{name: "Fragrances", products: []string{"Perfume", "Cologne", "Body Mist"}},
		},
	},
	{
		name: "Healthcare",
		subcategories: []subcategory{
			{name: "Pharmacy", products: []string{"Pain Reliever", "Cough Syrup", "Antibiotics", "Antihistamines"}},
			{name: "Vitamins", products: []string{"Multivitamin", "Vitamin C", "Vitamin D", "Calcium"}},
			{name: "Medical Supplies", products: []string{"Bandages", "Antiseptic", "Thermometer", "Gloves"}},
		},
	},
	{
		name: "Cleaning Products",
		subcategories: []subcategory{
			{name: "Household Cleaners", products: []string{"All-Purpose Cleaner", "Glass Cleaner", "Disinfectant"}},
			{name: "Laundry", products: []string{"Detergent", "Fabric Softener", "Stain Remover"}},
			{name: "Dishwashing", products: []string{"Dish Soap", "Dishwasher Detergent"}},
		},
	},
	{
		name: "Pets",
		subcategories: []subcategory{
			{name: "Pet Food", products: []string{"Dog Food", "Cat Food", "Bird Seed", "Fish Flakes"}},
			{name: "Toys", products: []string{"Chew Toy", "Catnip Toy", "Interactive Toy"}},
			{name: "Grooming", products: []string{"Shampoo", "Comb", "Nail Clippers"}},
		},
	},
	{
		name: "Clothing",
		subcategories: []subcategory{
			{name: "Men", products: []string{"T-Shirt", "Jeans", "Jacket", "Sneakers"}},
			{name: "Women", products: []string{"Dress", "Blouse", "Skirt", "Heels"}},
			{name: "Children", products: []string{"Kids T-Shirt", "Kids Jeans", "Kids Jacket"}},
			{name: "Accessories", products: []string{"Hat", "Scarf", "Belt", "Sunglasses"}},
		},
	},
}

// Catalog samples products from the fixed hierarchy and prices them through
// a PriceBook. The hierarchy itself is immutable.
type Catalog struct {
	prices *PriceBook
}

// NewCatalog returns a catalog backed by the given price book.
func NewCatalog(prices *PriceBook) *Catalog {
	return &Catalog{prices: prices}
}

// Sample draws a uniformly random category, subcategory, and product, and
// attaches the product's memoized unit price.
func (c *Catalog) Sample(rng *rand.Rand) model.Product {
	cat := &productHierarchy[rng.Intn(len(productHierarchy))]
	sub := &cat.subcategories[rng.Intn(len(cat.subcategories))]
	name := sub.products[rng.Intn(len(sub.products))]

	return model.Product{
		ProductName: name,
		Category:    cat.name,
		Subcategory: sub.name,
		UnitPrice:   c.prices.PriceFor(cat.name, name).InexactFloat64(),
	}
}
