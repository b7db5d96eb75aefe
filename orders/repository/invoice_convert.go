package repository

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

// InvoiceToModel converts a database Invoice to a domain model Invoice
func InvoiceToModel(dbInvoice invoices.Invoice) model.Invoice {
	invoice := model.Invoice{
		ID:             dbInvoice.ID,
		OrderID:        dbInvoice.OrderID,
		Number:         dbInvoice.Number,
		Currency:       dbInvoice.Currency,
		Status:         model.InvoiceStatus(dbInvoice.Status),
		Total:          Money(dbInvoice.Total),
		VoidReason:     TextPtr(dbInvoice.VoidReason),
		IdempotencyKey: dbInvoice.IdempotencyKey,
		DueAt:          TimePtr(dbInvoice.DueAt),
		PaidAt:         TimePtr(dbInvoice.PaidAt),
		CreatedAt:      dbInvoice.CreatedAt.Time,
		UpdatedAt:      dbInvoice.UpdatedAt.Time,
	}
	return invoice
}

// InvoiceItemToModel converts a database InvoiceItem to a domain model InvoiceItem
func InvoiceItemToModel(dbItem invoices.InvoiceItem) model.InvoiceItem {
	item := model.InvoiceItem{
		ID:             dbItem.ID,
		InvoiceID:      dbItem.InvoiceID,
		OrderProductID: Int4Ptr(dbItem.OrderProductID),
		Description:    dbItem.Description,
		Quantity:       dbItem.Quantity,
		UnitPrice:      Money(dbItem.UnitPrice),
		Amount:         Money(dbItem.Amount),
		PeriodStart:    DatePtr(dbItem.PeriodStart),
		PeriodEnd:      DatePtr(dbItem.PeriodEnd),
		CreatedAt:      dbItem.CreatedAt.Time,
	}

	if len(dbItem.Metadata) > 0 {
		var metadata model.CurrencyMetadata
		if err := json.Unmarshal(dbItem.Metadata, &metadata); err == nil {
			item.Metadata = &metadata
		}
	}

	return item
}

// Money renders a NUMERIC column with two decimal places.
func Money(n pgtype.Numeric) string {
	d, err := Decimal(n)
	if err != nil {
		return ""
	}
	return d.StringFixed(2)
}
