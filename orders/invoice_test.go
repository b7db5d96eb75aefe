package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
)

func TestGenerateRenewalInvoice(t *testing.T) {
	testCases := []struct {
		name          string
		id            int32
		request       *GenerateRenewalInvoiceRequest
		mockReturn    *model.RenewalInvoiceResult
		mockError     error
		expectCall    bool
		expectedError string
	}{
		{
			name: "happy_case",
			id:   10,
			request: &GenerateRenewalInvoiceRequest{
				IdempotencyKey:  "key-1",
				OrderProductIDs: []int32{1, 2},
				Currency:        "GEL",
			},
			mockReturn: &model.RenewalInvoiceResult{
				Invoice:  model.Invoice{ID: 5, OrderID: 10, Currency: "GEL", Status: model.InvoiceStatusDraft, Total: "107.94"},
				Failures: []model.ItemFailure{{OrderProductID: 2, Reason: "order product 2 has no plan"}},
			},
			expectCall: true,
		},
		{
			name:          "invalid_order",
			id:            0,
			request:       &GenerateRenewalInvoiceRequest{OrderProductIDs: []int32{1}},
			expectedError: "invalid order ID",
		},
		{
			name:          "duplicate_key",
			id:            10,
			request:       &GenerateRenewalInvoiceRequest{IdempotencyKey: "key-1", OrderProductIDs: []int32{1}},
			mockError:     &errs.Error{Code: errs.AlreadyExists, Message: "invoice is duplicated"},
			expectCall:    true,
			expectedError: "invoice is duplicated",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			if tc.expectCall {
				ts.invoices.EXPECT().GenerateRenewalInvoice(gomock.Any(), &model.RenewalInvoiceRequest{
					OrderID:         tc.id,
					OrderProductIDs: tc.request.OrderProductIDs,
					Currency:        tc.request.Currency,
					IdempotencyKey:  tc.request.IdempotencyKey,
				}).Return(tc.mockReturn, tc.mockError)
			}

			response, err := ts.GenerateRenewalInvoice(context.Background(), tc.id, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mockReturn.Invoice, response.Invoice)
			assert.Equal(t, tc.mockReturn.Failures, response.Failures)
		})
	}
}

func TestGetInvoice(t *testing.T) {
	t.Run("happy_case", func(t *testing.T) {
		ts := newTestService(t)
		invoice := &model.Invoice{ID: 5, Number: "INV-ABC", Status: model.InvoiceStatusOpen}
		ts.invoices.EXPECT().GetInvoice(gomock.Any(), int32(5)).Return(invoice, nil)

		response, err := ts.GetInvoice(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, *invoice, response.Invoice)
	})

	t.Run("not_found", func(t *testing.T) {
		ts := newTestService(t)
		ts.invoices.EXPECT().GetInvoice(gomock.Any(), int32(5)).
			Return(nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"})

		response, err := ts.GetInvoice(context.Background(), 5)

		assert.Nil(t, response)
		assert.Equal(t, errs.NotFound, errs.Code(err))
	})
}

func TestInvoiceTransitions(t *testing.T) {
	reason := "duplicate order"

	testCases := []struct {
		name           string
		id             int32
		setup          func(ts testService)
		call           func(ts testService, id int32) (*InvoiceResponse, error)
		expectedStatus model.InvoiceStatus
		expectedCode   errs.ErrCode
	}{
		{
			name: "finalize",
			id:   5,
			setup: func(ts testService) {
				ts.invoices.EXPECT().FinalizeInvoice(gomock.Any(), int32(5)).
					Return(&model.Invoice{ID: 5, Status: model.InvoiceStatusOpen}, nil)
			},
			call: func(ts testService, id int32) (*InvoiceResponse, error) {
				return ts.FinalizeInvoice(context.Background(), id)
			},
			expectedStatus: model.InvoiceStatusOpen,
		},
		{
			name: "pay",
			id:   5,
			setup: func(ts testService) {
				ts.invoices.EXPECT().MarkInvoicePaid(gomock.Any(), int32(5)).
					Return(&model.Invoice{ID: 5, Status: model.InvoiceStatusPaid}, nil)
			},
			call: func(ts testService, id int32) (*InvoiceResponse, error) {
				return ts.PayInvoice(context.Background(), id)
			},
			expectedStatus: model.InvoiceStatusPaid,
		},
		{
			name: "void",
			id:   5,
			setup: func(ts testService) {
				ts.invoices.EXPECT().VoidInvoice(gomock.Any(), int32(5), reason).
					Return(&model.Invoice{ID: 5, Status: model.InvoiceStatusVoid, VoidReason: &reason}, nil)
			},
			call: func(ts testService, id int32) (*InvoiceResponse, error) {
				return ts.VoidInvoice(context.Background(), id, &VoidInvoiceRequest{Reason: reason})
			},
			expectedStatus: model.InvoiceStatusVoid,
		},
		{
			name: "pay_draft_rejected",
			id:   5,
			setup: func(ts testService) {
				ts.invoices.EXPECT().MarkInvoicePaid(gomock.Any(), int32(5)).
					Return(nil, &errs.Error{Code: errs.InvalidArgument, Message: "cannot transition invoice from draft to paid"})
			},
			call: func(ts testService, id int32) (*InvoiceResponse, error) {
				return ts.PayInvoice(context.Background(), id)
			},
			expectedCode: errs.InvalidArgument,
		},
		{
			name:  "invalid_id",
			id:    0,
			setup: func(ts testService) {},
			call: func(ts testService, id int32) (*InvoiceResponse, error) {
				return ts.FinalizeInvoice(context.Background(), id)
			},
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			tc.setup(ts)

			response, err := tc.call(ts, tc.id)

			if tc.expectedCode != errs.OK {
				assert.Nil(t, response)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, response.Invoice.Status)
		})
	}
}

func TestInvoiceRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       interface{ Validate() error }
		expectedError string
	}{
		{name: "valid_generate", request: &GenerateRenewalInvoiceRequest{OrderProductIDs: []int32{1}, Currency: "USD"}},
		{name: "no_order_products", request: &GenerateRenewalInvoiceRequest{}, expectedError: "required"},
		{name: "bad_currency", request: &GenerateRenewalInvoiceRequest{OrderProductIDs: []int32{1}, Currency: "US"}, expectedError: "len"},
		{name: "numeric_currency", request: &GenerateRenewalInvoiceRequest{OrderProductIDs: []int32{1}, Currency: "123"}, expectedError: "alpha"},
		{name: "valid_void", request: &VoidInvoiceRequest{Reason: "duplicate"}},
		{name: "void_without_reason", request: &VoidInvoiceRequest{}, expectedError: "required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
