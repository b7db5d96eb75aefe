package model

import (
	"github.com/shopspring/decimal"
)

type CurrencyInfo struct {
	ID      int32
	Code    string
	Symbol  *string
	Rate    decimal.Decimal
	Enabled bool
}

type ConversionResult struct {
	ConvertedAmount decimal.Decimal
	Metadata        *CurrencyMetadata
}

type CurrencyMetadata struct {
	OriginalAmount   string `json:"original_amount"`
	OriginalCurrency string `json:"original_currency"`
	ExchangeRate     string `json:"exchange_rate"`
}
