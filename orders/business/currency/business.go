package currency

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/currencies"
)

type Business interface {
	GetCurrency(ctx context.Context, code string) (*model.CurrencyInfo, error)
	ConvertAmount(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*model.ConversionResult, error)
}

type business struct {
	currencyRepo currencies.Querier
}

func NewCurrencyBusiness(currencyRepo currencies.Querier) Business {
	return &business{
		currencyRepo: currencyRepo,
	}
}
