package orderproduct

import (
	"context"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/domain/billingperiod"
	"github.com/dugiahuy/order-billing/orders/model"
)

// Describe renders the invoice label for the next billing period of an
// order product.
func (b *business) Describe(ctx context.Context, id int32) (*model.BillingDescription, error) {
	orderProduct, err := b.Hydrate(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := billingperiod.NewSnapshot(orderProduct)
	description, err := billingperiod.Describe(snapshot)
	if err != nil {
		return nil, dataIntegrityError(err)
	}

	period, err := billingperiod.NextPeriod(snapshot)
	if err != nil {
		return nil, dataIntegrityError(err)
	}

	return &model.BillingDescription{
		OrderProductID: id,
		Description:    description,
		PeriodStart:    period.Start,
		PeriodEnd:      period.End,
	}, nil
}

// Currency returns the currency of the order owning the order product.
func (b *business) Currency(ctx context.Context, id int32) (string, error) {
	orderProduct, err := b.Hydrate(ctx, id)
	if err != nil {
		return "", err
	}

	currency, err := billingperiod.Currency(billingperiod.NewSnapshot(orderProduct))
	if err != nil {
		return "", dataIntegrityError(err)
	}
	return currency, nil
}

func dataIntegrityError(err error) error {
	return &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
}
