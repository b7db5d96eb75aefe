package invoice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dugiahuy/order-billing/orders/business/currency"
	"github.com/dugiahuy/order-billing/orders/business/orderproduct"
	"github.com/dugiahuy/order-billing/orders/domain"
	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

type Business interface {
	GenerateRenewalInvoice(ctx context.Context, req *model.RenewalInvoiceRequest) (*model.RenewalInvoiceResult, error)
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	GetInvoiceByIdempotencyKey(ctx context.Context, key string) (*model.Invoice, error)
	FinalizeInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id int32) (*model.Invoice, error)
	VoidInvoice(ctx context.Context, id int32, reason string) (*model.Invoice, error)
}

// business handles invoices billed from order products
type business struct {
	invoiceRepo     invoices.Querier
	orderProducts   orderproduct.Business
	currencyService currency.Business
	stateMachine    domain.StateMachine
	newNumber       func() string
}

func NewInvoiceBusiness(
	invoiceRepo invoices.Querier,
	orderProducts orderproduct.Business,
	currencyService currency.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		invoiceRepo:     invoiceRepo,
		orderProducts:   orderProducts,
		currencyService: currencyService,
		stateMachine:    stateMachine,
		newNumber:       newInvoiceNumber,
	}
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
