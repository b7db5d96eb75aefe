package orders

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/order-billing/orders/model"
)

type GenerateRenewalInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	OrderProductIDs []int32 `json:"order_product_ids" validate:"required,min=1,max=100,dive,gt=0"`
	Currency        string  `json:"currency" validate:"omitempty,len=3,alpha"`
}

type GenerateRenewalInvoiceResponse struct {
	Invoice  model.Invoice       `json:"invoice"`
	Failures []model.ItemFailure `json:"failures"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

type VoidInvoiceRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

// GenerateRenewalInvoice bills the next period of order products of an order.
//
//encore:api public path=/v1/orders/:id/invoices method=POST tag:idempotency
func (s *Service) GenerateRenewalInvoice(ctx context.Context, id int32, req *GenerateRenewalInvoiceRequest) (*GenerateRenewalInvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	result, err := s.invoices.GenerateRenewalInvoice(ctx, &model.RenewalInvoiceRequest{
		OrderID:         id,
		OrderProductIDs: req.OrderProductIDs,
		Currency:        req.Currency,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to generate renewal invoice", "error", err, "order_id", id)
		return nil, err
	}

	for _, failure := range result.Failures {
		rlog.Warn("order product skipped", "order_id", id, "order_product_id", failure.OrderProductID, "reason", failure.Reason)
	}

	return &GenerateRenewalInvoiceResponse{
		Invoice:  result.Invoice,
		Failures: result.Failures,
	}, nil
}

//encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int32) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.GetInvoice(ctx, id)
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

//encore:api public path=/v1/invoices/:id/finalize method=POST
func (s *Service) FinalizeInvoice(ctx context.Context, id int32) (*InvoiceResponse, error) {
	return s.transitionInvoice(ctx, id, "finalize", func(ctx context.Context) (*model.Invoice, error) {
		return s.invoices.FinalizeInvoice(ctx, id)
	})
}

//encore:api public path=/v1/invoices/:id/pay method=POST
func (s *Service) PayInvoice(ctx context.Context, id int32) (*InvoiceResponse, error) {
	return s.transitionInvoice(ctx, id, "pay", func(ctx context.Context) (*model.Invoice, error) {
		return s.invoices.MarkInvoicePaid(ctx, id)
	})
}

//encore:api public path=/v1/invoices/:id/void method=POST
func (s *Service) VoidInvoice(ctx context.Context, id int32, req *VoidInvoiceRequest) (*InvoiceResponse, error) {
	return s.transitionInvoice(ctx, id, "void", func(ctx context.Context) (*model.Invoice, error) {
		return s.invoices.VoidInvoice(ctx, id, req.Reason)
	})
}

func (s *Service) transitionInvoice(ctx context.Context, id int32, action string, fn func(ctx context.Context) (*model.Invoice, error)) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := fn(ctx)
	if err != nil {
		rlog.Error("failed to transition invoice", "error", err, "id", id, "action", action)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

func (r *GenerateRenewalInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *VoidInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}
