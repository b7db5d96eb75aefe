package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

func (b *business) GetInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}
	return b.withItems(ctx, dbInvoice)
}

func (b *business) GetInvoiceByIdempotencyKey(ctx context.Context, key string) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoiceByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}
	return b.withItems(ctx, dbInvoice)
}

func (b *business) withItems(ctx context.Context, dbInvoice invoices.Invoice) (*model.Invoice, error) {
	dbItems, err := b.invoiceRepo.ListInvoiceItems(ctx, dbInvoice.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice items"}
	}

	invoice := repository.InvoiceToModel(dbInvoice)
	for _, dbItem := range dbItems {
		invoice.Items = append(invoice.Items, repository.InvoiceItemToModel(dbItem))
	}
	return &invoice, nil
}
