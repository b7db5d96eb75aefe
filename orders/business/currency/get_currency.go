package currency

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
)

func (b *business) GetCurrency(ctx context.Context, code string) (*model.CurrencyInfo, error) {
	dbCurrency, err := b.currencyRepo.GetCurrency(ctx, pgtype.Text{String: code, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "currency not supported"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get currency"}
	}

	rate, err := repository.Decimal(dbCurrency.Rate)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "currency rate is invalid"}
	}

	currency := &model.CurrencyInfo{
		ID:      dbCurrency.ID,
		Code:    dbCurrency.Code.String,
		Symbol:  repository.TextPtr(dbCurrency.Symbol),
		Rate:    rate,
		Enabled: dbCurrency.Enabled,
	}

	return currency, nil
}
