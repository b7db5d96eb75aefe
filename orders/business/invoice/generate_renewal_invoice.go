package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/domain/billingperiod"
	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

// billableItem is an order product priced for its next period.
type billableItem struct {
	orderProductID int32
	description    string
	quantity       int32
	unitPrice      decimal.Decimal
	currency       string
	period         billingperiod.Period
	metadata       *model.CurrencyMetadata
}

func (i billableItem) amount() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt32(i.quantity))
}

// GenerateRenewalInvoice creates one draft invoice for the next period of
// the requested order products. Items that cannot be billed are reported in
// the result and left out of the invoice.
func (b *business) GenerateRenewalInvoice(ctx context.Context, req *model.RenewalInvoiceRequest) (*model.RenewalInvoiceResult, error) {
	var (
		items    []billableItem
		failures []model.ItemFailure
		orderCur string
	)

	for _, id := range dedupe(req.OrderProductIDs) {
		item, err := b.prepareItem(ctx, req.OrderID, id)
		if err != nil {
			if errs.Code(err) == errs.Internal {
				return nil, err
			}
			failures = append(failures, model.ItemFailure{OrderProductID: id, Reason: failureReason(err)})
			continue
		}
		if orderCur == "" {
			orderCur = item.currency
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("no billable order products for order %d", req.OrderID),
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = orderCur
	}

	for i := range items {
		if items[i].currency == currency {
			continue
		}
		conversion, err := b.currencyService.ConvertAmount(ctx, items[i].currency, currency, items[i].unitPrice)
		if err != nil {
			return nil, err
		}
		items[i].unitPrice = conversion.ConvertedAmount
		items[i].metadata = conversion.Metadata
	}

	invoice, err := b.persistInvoice(ctx, req, currency, items)
	if err != nil {
		return nil, err
	}

	return &model.RenewalInvoiceResult{Invoice: *invoice, Failures: failures}, nil
}

func (b *business) prepareItem(ctx context.Context, orderID, orderProductID int32) (billableItem, error) {
	orderProduct, err := b.orderProducts.Hydrate(ctx, orderProductID)
	if err != nil {
		return billableItem{}, err
	}
	if orderProduct.OrderID != orderID {
		return billableItem{}, &errs.Error{
			Code:    errs.InvalidArgument,
			Message: fmt.Sprintf("order product %d belongs to order %d", orderProductID, orderProduct.OrderID),
		}
	}

	snapshot := billingperiod.NewSnapshot(orderProduct)
	description, err := billingperiod.Describe(snapshot)
	if err != nil {
		return billableItem{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}
	currency, err := billingperiod.Currency(snapshot)
	if err != nil {
		return billableItem{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}
	period, err := billingperiod.NextPeriod(snapshot)
	if err != nil {
		return billableItem{}, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}

	unitPrice, err := decimal.NewFromString(orderProduct.Price)
	if err != nil {
		return billableItem{}, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("order product %d has an invalid price", orderProductID),
		}
	}

	return billableItem{
		orderProductID: orderProductID,
		description:    description,
		quantity:       orderProduct.Quantity,
		unitPrice:      unitPrice,
		currency:       currency,
		period:         period,
	}, nil
}

func (b *business) persistInvoice(ctx context.Context, req *model.RenewalInvoiceRequest, currency string, items []billableItem) (*model.Invoice, error) {
	dueAt := items[0].period.Start
	for _, item := range items[1:] {
		if item.period.Start.Before(dueAt) {
			dueAt = item.period.Start
		}
	}

	var result model.Invoice
	err := b.stateMachine.InTx(ctx, func(repo invoices.Querier) error {
		dbInvoice, err := repo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			OrderID:        req.OrderID,
			Number:         b.newNumber(),
			Currency:       currency,
			Status:         string(model.InvoiceStatusDraft),
			IdempotencyKey: req.IdempotencyKey,
			DueAt:          pgtype.Timestamptz{Time: dueAt, Valid: true},
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "invoice is duplicated"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
		}

		result = repository.InvoiceToModel(dbInvoice)
		for _, item := range items {
			dbItem, err := b.createItem(ctx, repo, dbInvoice.ID, item)
			if err != nil {
				return err
			}
			result.Items = append(result.Items, repository.InvoiceItemToModel(dbItem))
		}

		dbInvoice, err = repo.UpdateInvoiceTotal(ctx, dbInvoice.ID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update invoice total"}
		}
		result.Total = repository.Money(dbInvoice.Total)
		result.UpdatedAt = dbInvoice.UpdatedAt.Time
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (b *business) createItem(ctx context.Context, repo invoices.Querier, invoiceID int32, item billableItem) (invoices.InvoiceItem, error) {
	var metadataJSON []byte
	if item.metadata != nil {
		var err error
		metadataJSON, err = json.Marshal(item.metadata)
		if err != nil {
			return invoices.InvoiceItem{}, &errs.Error{Code: errs.Internal, Message: "failed to marshal metadata"}
		}
	}

	dbItem, err := repo.CreateInvoiceItem(ctx, invoices.CreateInvoiceItemParams{
		InvoiceID:      invoiceID,
		OrderProductID: pgtype.Int4{Int32: item.orderProductID, Valid: true},
		Description:    item.description,
		Quantity:       item.quantity,
		UnitPrice:      repository.Numeric(item.unitPrice),
		Amount:         repository.Numeric(item.amount()),
		PeriodStart:    repository.Date(item.period.Start),
		PeriodEnd:      repository.Date(item.period.End),
		Metadata:       metadataJSON,
	})
	if err != nil {
		return invoices.InvoiceItem{}, &errs.Error{Code: errs.Internal, Message: "failed to create invoice item"}
	}
	return dbItem, nil
}

func dedupe(ids []int32) []int32 {
	seen := make(map[int32]struct{}, len(ids))
	result := make([]int32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func failureReason(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RenewalKey is the idempotency key of the renewal invoice billing the
// period that starts on periodStart.
func RenewalKey(orderProductID int32, periodStart time.Time) string {
	return fmt.Sprintf("renewal-%d-%s", orderProductID, billingperiod.CalendarDate(periodStart).Format(time.DateOnly))
}
