package entities

// Product is owned by the catalog; the order core treats its stock as a
// counter resource with atomic conditional adjustments.
type Product struct {
	ID    string
	Name  string
	Image string
	Price float64
	Stock int

	Shop ShopSummary
}

type ShopSummary struct {
	ID        string
	Name      string
	Email     string
	PushToken string
}
