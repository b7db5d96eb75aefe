package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/mocks/business/currency_business"
	"github.com/dugiahuy/order-billing/orders/mocks/business/orderproduct_business"
	"github.com/dugiahuy/order-billing/orders/mocks/domain/state_machine"
	"github.com/dugiahuy/order-billing/orders/mocks/repository/invoice_repo"
	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

type mocks struct {
	invoiceRepo     *invoice_repo.MockQuerier
	orderProducts   *orderproduct_business.MockBusiness
	currencyService *currency_business.MockBusiness
	stateMachine    *state_machine.MockStateMachine
}

func newTestBusiness(t *testing.T) (*business, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		invoiceRepo:     invoice_repo.NewMockQuerier(ctrl),
		orderProducts:   orderproduct_business.NewMockBusiness(ctrl),
		currencyService: currency_business.NewMockBusiness(ctrl),
		stateMachine:    state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		invoiceRepo:     m.invoiceRepo,
		orderProducts:   m.orderProducts,
		currencyService: m.currencyService,
		stateMachine:    m.stateMachine,
		newNumber:       func() string { return "INV-TEST" },
	}
	return b, m
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) pgtype.Numeric {
	return repository.Numeric(decimal.RequireFromString(s))
}

func orderProduct(id, orderID int32, expiresAt *time.Time) *model.OrderProduct {
	productID, planID := int32(20), int32(30)
	return &model.OrderProduct{
		ID:        id,
		OrderID:   orderID,
		ProductID: &productID,
		PlanID:    &planID,
		Quantity:  2,
		Price:     "19.99",
		ExpiresAt: expiresAt,
		Order:     &model.Order{ID: orderID, Currency: "USD"},
		Plan:      &model.Plan{ID: planID, Name: "Monthly", BillingDuration: 31},
		Product:   &model.Product{ID: productID, Name: "Pro Hosting"},
	}
}

// expectTx runs the transaction body against the invoice repository mock.
func expectTx(m mocks) *gomock.Call {
	return m.stateMachine.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repo invoices.Querier) error) error {
			return fn(m.invoiceRepo)
		})
}

func TestGenerateRenewalInvoice(t *testing.T) {
	expiresAt := date(2024, time.March, 1)

	t.Run("happy_case", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).Return(orderProduct(1, 10, &expiresAt), nil)
		expectTx(m)
		m.invoiceRepo.EXPECT().
			CreateInvoice(gomock.Any(), invoices.CreateInvoiceParams{
				OrderID:        10,
				Number:         "INV-TEST",
				Currency:       "USD",
				Status:         string(model.InvoiceStatusDraft),
				IdempotencyKey: "renewal-1-2024-03-01",
				DueAt:          pgtype.Timestamptz{Time: expiresAt, Valid: true},
			}).
			Return(invoices.Invoice{ID: 100, OrderID: 10, Number: "INV-TEST", Currency: "USD", Status: "draft"}, nil)
		m.invoiceRepo.EXPECT().
			CreateInvoiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg invoices.CreateInvoiceItemParams) (invoices.InvoiceItem, error) {
				assert.Equal(t, int32(100), arg.InvoiceID)
				assert.Equal(t, pgtype.Int4{Int32: 1, Valid: true}, arg.OrderProductID)
				assert.Equal(t, "Pro Hosting (Mar 01, 2024 - Apr 01, 2024)", arg.Description)
				assert.Equal(t, "19.99", repository.Money(arg.UnitPrice))
				assert.Equal(t, "39.98", repository.Money(arg.Amount))
				assert.Equal(t, repository.Date(date(2024, time.April, 1)), arg.PeriodEnd)
				assert.Nil(t, arg.Metadata)
				return invoices.InvoiceItem{
					ID: 1000, InvoiceID: 100, OrderProductID: arg.OrderProductID, Description: arg.Description,
					Quantity: arg.Quantity, UnitPrice: arg.UnitPrice, Amount: arg.Amount,
					PeriodStart: arg.PeriodStart, PeriodEnd: arg.PeriodEnd,
				}, nil
			})
		m.invoiceRepo.EXPECT().UpdateInvoiceTotal(gomock.Any(), int32(100)).
			Return(invoices.Invoice{ID: 100, Total: money("39.98")}, nil)

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1},
			IdempotencyKey:  "renewal-1-2024-03-01",
		})

		require.NoError(t, err)
		assert.Empty(t, result.Failures)
		assert.Equal(t, int32(100), result.Invoice.ID)
		assert.Equal(t, "39.98", result.Invoice.Total)
		require.Len(t, result.Invoice.Items, 1)
		assert.Equal(t, "39.98", result.Invoice.Items[0].Amount)
	})

	t.Run("failing_items_are_isolated", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).Return(orderProduct(1, 10, &expiresAt), nil)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(2)).Return(orderProduct(2, 10, nil), nil)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(3)).Return(orderProduct(3, 99, &expiresAt), nil)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(4)).
			Return(nil, &errs.Error{Code: errs.NotFound, Message: "order product not found"})
		expectTx(m)
		m.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(invoices.Invoice{ID: 100, OrderID: 10, Currency: "USD", Status: "draft"}, nil)
		m.invoiceRepo.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).
			Return(invoices.InvoiceItem{ID: 1000, InvoiceID: 100}, nil).Times(1)
		m.invoiceRepo.EXPECT().UpdateInvoiceTotal(gomock.Any(), int32(100)).
			Return(invoices.Invoice{ID: 100, Total: money("39.98")}, nil)

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1, 2, 3, 4, 1},
			IdempotencyKey:  "key",
		})

		require.NoError(t, err)
		assert.Equal(t, []model.ItemFailure{
			{OrderProductID: 2, Reason: "order product 2 has no expiration date"},
			{OrderProductID: 3, Reason: "order product 3 belongs to order 99"},
			{OrderProductID: 4, Reason: "order product not found"},
		}, result.Failures)
		assert.Len(t, result.Invoice.Items, 1)
	})

	t.Run("converts_to_requested_currency", func(t *testing.T) {
		b, m := newTestBusiness(t)
		metadata := &model.CurrencyMetadata{OriginalAmount: "19.99", OriginalCurrency: "USD", ExchangeRate: "2.7"}
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).Return(orderProduct(1, 10, &expiresAt), nil)
		m.currencyService.EXPECT().
			ConvertAmount(gomock.Any(), "USD", "GEL", decimal.RequireFromString("19.99")).
			Return(&model.ConversionResult{ConvertedAmount: decimal.RequireFromString("53.97"), Metadata: metadata}, nil)
		expectTx(m)
		m.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
				assert.Equal(t, "GEL", arg.Currency)
				return invoices.Invoice{ID: 100, OrderID: 10, Currency: "GEL", Status: "draft"}, nil
			})
		m.invoiceRepo.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg invoices.CreateInvoiceItemParams) (invoices.InvoiceItem, error) {
				assert.Equal(t, "53.97", repository.Money(arg.UnitPrice))
				assert.Equal(t, "107.94", repository.Money(arg.Amount))
				var stored model.CurrencyMetadata
				require.NoError(t, json.Unmarshal(arg.Metadata, &stored))
				assert.Equal(t, *metadata, stored)
				return invoices.InvoiceItem{ID: 1000, InvoiceID: 100, Metadata: arg.Metadata}, nil
			})
		m.invoiceRepo.EXPECT().UpdateInvoiceTotal(gomock.Any(), int32(100)).
			Return(invoices.Invoice{ID: 100, Total: money("107.94")}, nil)

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1},
			Currency:        "GEL",
			IdempotencyKey:  "key",
		})

		require.NoError(t, err)
		assert.Equal(t, "GEL", result.Invoice.Currency)
		require.Len(t, result.Invoice.Items, 1)
		assert.Equal(t, metadata, result.Invoice.Items[0].Metadata)
	})

	t.Run("nothing_billable", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(2)).Return(orderProduct(2, 10, nil), nil)

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{2},
			IdempotencyKey:  "key",
		})

		assert.Nil(t, result)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
		assert.Contains(t, err.Error(), "no billable order products for order 10")
	})

	t.Run("internal_error_aborts", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).
			Return(nil, &errs.Error{Code: errs.Internal, Message: "failed to get order product"})

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1, 2},
			IdempotencyKey:  "key",
		})

		assert.Nil(t, result)
		assert.Equal(t, errs.Internal, errs.Code(err))
	})

	t.Run("duplicate_idempotency_key", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).Return(orderProduct(1, 10, &expiresAt), nil)
		expectTx(m)
		m.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(invoices.Invoice{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1},
			IdempotencyKey:  "key",
		})

		assert.Nil(t, result)
		assert.Equal(t, errs.AlreadyExists, errs.Code(err))
		assert.Contains(t, err.Error(), "invoice is duplicated")
	})

	t.Run("item_insert_failed", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProducts.EXPECT().Hydrate(gomock.Any(), int32(1)).Return(orderProduct(1, 10, &expiresAt), nil)
		expectTx(m)
		m.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(invoices.Invoice{ID: 100}, nil)
		m.invoiceRepo.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).
			Return(invoices.InvoiceItem{}, errors.New("connection reset"))

		result, err := b.GenerateRenewalInvoice(context.Background(), &model.RenewalInvoiceRequest{
			OrderID:         10,
			OrderProductIDs: []int32{1},
			IdempotencyKey:  "key",
		})

		assert.Nil(t, result)
		assert.Equal(t, errs.Internal, errs.Code(err))
		assert.Contains(t, err.Error(), "failed to create invoice item")
	})
}

func TestRenewalKey(t *testing.T) {
	assert.Equal(t, "renewal-7-2024-03-01", RenewalKey(7, date(2024, time.March, 1)))
	assert.Equal(t, "renewal-7-2024-03-01",
		RenewalKey(7, time.Date(2024, time.March, 1, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))))
}

func TestNewInvoiceNumber(t *testing.T) {
	number := newInvoiceNumber()

	assert.Regexp(t, `^INV-[0-9A-F]{32}$`, number)
	assert.NotEqual(t, number, newInvoiceNumber())
}
