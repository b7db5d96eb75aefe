package currency

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
)

// ratePrecision is the number of decimal places kept for the exchange rate
// recorded in conversion metadata.
const ratePrecision = 10

// ConvertAmount converts amount between currencies whose rates are stored as
// units per 1 USD. The result is rounded to cents.
func (b *business) ConvertAmount(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*model.ConversionResult, error) {
	if fromCurrency == toCurrency {
		return &model.ConversionResult{
			ConvertedAmount: amount,
			Metadata:        nil,
		}, nil
	}

	fromCurr, err := b.GetCurrency(ctx, fromCurrency)
	if err != nil {
		return nil, err
	}

	toCurr, err := b.GetCurrency(ctx, toCurrency)
	if err != nil {
		return nil, err
	}

	if !fromCurr.Enabled || !toCurr.Enabled {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "currency is not enabled"}
	}

	if !fromCurr.Rate.IsPositive() || !toCurr.Rate.IsPositive() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "currency rate is not configured"}
	}

	convertedAmount := amount.Mul(toCurr.Rate).Div(fromCurr.Rate).Round(2)

	return &model.ConversionResult{
		ConvertedAmount: convertedAmount,
		Metadata: &model.CurrencyMetadata{
			OriginalAmount:   amount.StringFixed(2),
			OriginalCurrency: fromCurrency,
			ExchangeRate:     toCurr.Rate.DivRound(fromCurr.Rate, ratePrecision).String(),
		},
	}, nil
}
