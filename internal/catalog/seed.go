package catalog

import (
	"cafe-pos/internal/model"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func opts(pairs ...string) []model.PriceOption {
	out := make([]model.PriceOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.PriceOption{Name: pairs[i], Price: price(pairs[i+1])})
	}
	return out
}

func kioskItem(id, name, desc, category, base string, popular bool, sizes, addons []model.PriceOption) model.CatalogItem {
	return model.CatalogItem{
		ID:          id,
		Name:        name,
		Description: desc,
		Category:    category,
		Mode:        model.SizingDelta,
		BasePrice:   price(base),
		Sizes:       sizes,
		Addons:      addons,
		Enabled:     true,
		Popular:     popular,
	}
}

func terminalItem(id, name, category string, sizes ...string) model.CatalogItem {
	return model.CatalogItem{
		ID:        id,
		Name:      name,
		Category:  category,
		Mode:      model.SizingAbsolute,
		BasePrice: decimal.Zero,
		Sizes:     opts(sizes...),
		Enabled:   true,
	}
}

// KioskSeed returns the built-in customer kiosk catalog. Prices are in dollars.
func KioskSeed() []model.CatalogItem {
	threeCup := opts("Small", "0", "Medium", "1.00", "Large", "2.00")

	return []model.CatalogItem{
		kioskItem("espresso", "Espresso", "Rich and bold double shot espresso",
			model.CategoryBeverages, "3.50", true,
			opts("Single", "0", "Double", "1.00"), nil),
		kioskItem("cappuccino", "Cappuccino", "Classic Italian coffee with steamed milk foam",
			model.CategoryBeverages, "4.50", true, threeCup,
			opts("Extra Shot", "0.75", "Vanilla Syrup", "0.50", "Caramel Syrup", "0.50")),
		kioskItem("latte", "Café Latte", "Smooth espresso with steamed milk and latte art",
			model.CategoryBeverages, "4.75", true, threeCup,
			opts("Extra Shot", "0.75", "Vanilla Syrup", "0.50", "Hazelnut Syrup", "0.50", "Oat Milk", "0.75")),
		kioskItem("iced-coffee", "Iced Coffee", "Refreshing cold brew over ice",
			model.CategoryBeverages, "4.25", false,
			opts("Medium", "0", "Large", "1.50"),
			opts("Vanilla Syrup", "0.50", "Caramel Syrup", "0.50")),
		kioskItem("matcha-latte", "Matcha Latte", "Premium Japanese matcha with steamed milk",
			model.CategoryBeverages, "5.25", false, threeCup,
			opts("Honey", "0.50", "Oat Milk", "0.75")),

		kioskItem("croissant", "Butter Croissant", "Flaky, buttery French croissant baked fresh daily",
			model.CategorySnacks, "3.75", true, nil, nil),
		kioskItem("sandwich", "Club Sandwich", "Triple-decker with turkey, bacon, lettuce, and tomato",
			model.CategorySnacks, "8.50", true, nil, nil),
		kioskItem("bagel", "Everything Bagel", "Toasted bagel with cream cheese",
			model.CategorySnacks, "4.50", false, nil,
			opts("Smoked Salmon", "3.00", "Avocado", "1.50")),
		kioskItem("muffin", "Blueberry Muffin", "Homemade muffin bursting with fresh blueberries",
			model.CategorySnacks, "3.50", false, nil, nil),

		kioskItem("chocolate-cake", "Chocolate Fudge Cake", "Decadent triple-layer chocolate cake with ganache",
			model.CategoryDesserts, "6.50", true, nil, nil),
		kioskItem("cheesecake", "New York Cheesecake", "Creamy cheesecake with graham cracker crust",
			model.CategoryDesserts, "6.00", true, nil,
			opts("Strawberry Topping", "1.00", "Chocolate Drizzle", "0.75")),
		kioskItem("tiramisu", "Classic Tiramisu", "Italian dessert with espresso-soaked ladyfingers and mascarpone",
			model.CategoryDesserts, "6.75", false, nil, nil),
	}
}

// TerminalSeed returns the built-in staff menu. Prices are absolute per size.
func TerminalSeed() []model.CatalogItem {
	return []model.CatalogItem{
		terminalItem("espresso", "Espresso", "Hot Coffee", model.SizeSmall, "25", model.SizeMedium, "35", model.SizeLarge, "45"),
		terminalItem("cappuccino", "Cappuccino", "Hot Coffee", model.SizeSmall, "35", model.SizeMedium, "45", model.SizeLarge, "55"),
		terminalItem("latte", "Latte", "Hot Coffee", model.SizeSmall, "40", model.SizeMedium, "50", model.SizeLarge, "60"),
		terminalItem("iced-latte", "Iced Latte", "Iced Coffee", model.SizeMedium, "55", model.SizeLarge, "65"),
		terminalItem("iced-mocha", "Iced Mocha", "Iced Coffee", model.SizeMedium, "60", model.SizeLarge, "70"),
		terminalItem("lemon-mint", "Lemon Mint", "Fresh Drinks", model.SizeMedium, "40", model.SizeLarge, "50"),
		terminalItem("orange-juice", "Orange Juice", "Fresh Drinks", model.SizeMedium, "45", model.SizeLarge, "55"),
		terminalItem("chocolate-cake", "Chocolate Cake", "Desserts", model.SizeMedium, "60"),
		terminalItem("cheesecake", "Cheesecake", "Desserts", model.SizeMedium, "65"),
		terminalItem("brownies", "Brownies", "Desserts", model.SizeMedium, "45"),
	}
}
