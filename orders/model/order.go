package model

import (
	"time"
)

type Order struct {
	ID        int32       `json:"id"`
	UserID    int32       `json:"user_id"`
	CouponID  *int32      `json:"coupon_id,omitempty"`
	Currency  string      `json:"currency"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCancelled OrderStatus = "cancelled"
)
