package model

import (
	"time"
)

// OrderProduct is a single product/plan line of a customer order. The admin
// UI calls these "services".
type OrderProduct struct {
	ID        int32      `json:"id"`
	OrderID   int32      `json:"order_id"`
	ProductID *int32     `json:"product_id,omitempty"`
	PlanID    *int32     `json:"plan_id,omitempty"`
	Quantity  int32      `json:"quantity"`
	Price     string     `json:"price"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Order    *Order               `json:"order,omitempty"`
	Product  *Product             `json:"product,omitempty"`
	Plan     *Plan                `json:"plan,omitempty"`
	Configs  []OrderProductConfig `json:"configs,omitempty"`
	Invoices []Invoice            `json:"invoices,omitempty"`
}

type OrderProductConfig struct {
	ID             int32     `json:"id"`
	OrderProductID int32     `json:"order_product_id"`
	Key            string    `json:"key"`
	Value          *string   `json:"value,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BillingDescription is the rendered label of the upcoming billing period.
type BillingDescription struct {
	OrderProductID int32     `json:"order_product_id"`
	Description    string    `json:"description"`
	PeriodStart    time.Time `json:"period_start"`
	PeriodEnd      time.Time `json:"period_end"`
}

// CouponService is one row of the services table shown under a coupon.
type CouponService struct {
	ID       int32  `json:"id"`
	OrderID  int32  `json:"order_id"`
	UserName string `json:"user_name"`
	ViewURL  string `json:"view_url"`
}
