package model

type Product struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Plan is the pricing and duration template applied to a product purchase.
type Plan struct {
	ID              int32  `json:"id"`
	ProductID       *int32 `json:"product_id,omitempty"`
	Name            string `json:"name"`
	BillingDuration int32  `json:"billing_duration"`
	Price           string `json:"price"`
}
