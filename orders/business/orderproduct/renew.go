package orderproduct

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/domain/billingperiod"
	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
)

// Renew advances the expiration date of an order product from the period
// ending on from to the next one. Renewing a period that was already
// advanced returns the order product unchanged.
func (b *business) Renew(ctx context.Context, id int32, from time.Time) (*model.OrderProduct, error) {
	orderProduct, err := b.Hydrate(ctx, id)
	if err != nil {
		return nil, err
	}

	period, err := billingperiod.NextPeriod(billingperiod.NewSnapshot(orderProduct))
	if err != nil {
		return nil, dataIntegrityError(err)
	}

	from = billingperiod.CalendarDate(from)
	if period.Start.After(from) {
		return orderProduct, nil
	}
	if period.Start.Before(from) {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "order product expires before the requested renewal period"}
	}

	dbOrderProduct, err := b.orderProductRepo.AdvanceOrderProductExpiry(ctx, orderproducts.AdvanceOrderProductExpiryParams{
		ExpiresAt:         repository.Date(period.End),
		ID:                id,
		PreviousExpiresAt: repository.Date(period.Start),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.Aborted, Message: "order product was renewed concurrently"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to renew order product"}
	}

	renewed := convertDBOrderProductToModel(dbOrderProduct)
	renewed.Order = orderProduct.Order
	renewed.Plan = orderProduct.Plan
	renewed.Product = orderProduct.Product
	return renewed, nil
}

// ListRenewable returns order products of active orders expiring on or
// before expiresBefore, soonest first.
func (b *business) ListRenewable(ctx context.Context, expiresBefore time.Time, limit int32) ([]model.OrderProduct, error) {
	dbOrderProducts, err := b.orderProductRepo.ListRenewableOrderProducts(ctx, orderproducts.ListRenewableOrderProductsParams{
		ExpiresBefore: repository.Date(expiresBefore),
		RowLimit:      limit,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.OrderProduct{}, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list renewable order products"}
	}

	result := make([]model.OrderProduct, len(dbOrderProducts))
	for i, dbOrderProduct := range dbOrderProducts {
		result[i] = *convertDBOrderProductToModel(dbOrderProduct)
	}
	return result, nil
}
