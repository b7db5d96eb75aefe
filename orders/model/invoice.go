package model

import (
	"time"
)

type Invoice struct {
	ID             int32         `json:"id"`
	OrderID        int32         `json:"order_id"`
	Number         string        `json:"number"`
	Currency       string        `json:"currency"`
	Status         InvoiceStatus `json:"status"`
	Total          string        `json:"total"`
	VoidReason     *string       `json:"void_reason,omitempty"`
	IdempotencyKey string        `json:"idempotency_key"`
	DueAt          *time.Time    `json:"due_at,omitempty"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	Items          []InvoiceItem `json:"items,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusOpen  InvoiceStatus = "open"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

type InvoiceItem struct {
	ID             int32             `json:"id"`
	InvoiceID      int32             `json:"invoice_id"`
	OrderProductID *int32            `json:"order_product_id,omitempty"`
	Description    string            `json:"description"`
	Quantity       int32             `json:"quantity"`
	UnitPrice      string            `json:"unit_price"`
	Amount         string            `json:"amount"`
	PeriodStart    *time.Time        `json:"period_start,omitempty"`
	PeriodEnd      *time.Time        `json:"period_end,omitempty"`
	Metadata       *CurrencyMetadata `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RenewalInvoiceRequest asks for one invoice covering the next period of
// the given order products. Currency defaults to the order currency.
type RenewalInvoiceRequest struct {
	OrderID         int32
	OrderProductIDs []int32
	Currency        string
	IdempotencyKey  string
}

// ItemFailure reports an order product that could not be billed.
type ItemFailure struct {
	OrderProductID int32  `json:"order_product_id"`
	Reason         string `json:"reason"`
}

type RenewalInvoiceResult struct {
	Invoice  Invoice       `json:"invoice"`
	Failures []ItemFailure `json:"failures,omitempty"`
}
