package orders

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/order-billing/orders/model"
)

type OrderProductResponse struct {
	OrderProduct model.OrderProduct `json:"order_product"`
}

type DescriptionResponse struct {
	Description model.BillingDescription `json:"description"`
}

type CurrencyResponse struct {
	OrderProductID int32  `json:"order_product_id"`
	Currency       string `json:"currency"`
}

//encore:api public path=/v1/order-products/:id method=GET
func (s *Service) GetOrderProduct(ctx context.Context, id int32) (*OrderProductResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order product ID"}
	}

	result, err := s.orderProducts.GetOrderProduct(ctx, id)
	if err != nil {
		rlog.Error("failed to get order product", "error", err, "id", id)
		return nil, err
	}

	return &OrderProductResponse{
		OrderProduct: *result,
	}, nil
}

// DescribeOrderProduct returns the invoice label of the next billing period.
//
//encore:api public path=/v1/order-products/:id/description method=GET
func (s *Service) DescribeOrderProduct(ctx context.Context, id int32) (*DescriptionResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order product ID"}
	}

	result, err := s.orderProducts.Describe(ctx, id)
	if err != nil {
		rlog.Error("failed to describe order product", "error", err, "id", id)
		return nil, err
	}

	return &DescriptionResponse{
		Description: *result,
	}, nil
}

//encore:api public path=/v1/order-products/:id/currency method=GET
func (s *Service) GetOrderProductCurrency(ctx context.Context, id int32) (*CurrencyResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order product ID"}
	}

	currency, err := s.orderProducts.Currency(ctx, id)
	if err != nil {
		rlog.Error("failed to get order product currency", "error", err, "id", id)
		return nil, err
	}

	return &CurrencyResponse{
		OrderProductID: id,
		Currency:       currency,
	}, nil
}
