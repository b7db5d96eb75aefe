package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

func TestTransitionInvoice(t *testing.T) {
	invalid := &errs.Error{Code: errs.InvalidArgument, Message: "cannot transition invoice from paid to void"}

	testCases := []struct {
		name           string
		transition     func(b *business) (*model.Invoice, error)
		expect         func(m mocks) *gomock.Call
		expectedStatus model.InvoiceStatus
		expectedCode   errs.ErrCode
	}{
		{
			name:       "finalize",
			transition: func(b *business) (*model.Invoice, error) { return b.FinalizeInvoice(context.Background(), 1) },
			expect: func(m mocks) *gomock.Call {
				return m.stateMachine.EXPECT().TransitionToOpen(gomock.Any(), int32(1)).Return(nil)
			},
			expectedStatus: model.InvoiceStatusOpen,
		},
		{
			name:       "mark_paid",
			transition: func(b *business) (*model.Invoice, error) { return b.MarkInvoicePaid(context.Background(), 1) },
			expect: func(m mocks) *gomock.Call {
				return m.stateMachine.EXPECT().TransitionToPaid(gomock.Any(), int32(1)).Return(nil)
			},
			expectedStatus: model.InvoiceStatusPaid,
		},
		{
			name: "void",
			transition: func(b *business) (*model.Invoice, error) {
				return b.VoidInvoice(context.Background(), 1, "duplicate")
			},
			expect: func(m mocks) *gomock.Call {
				return m.stateMachine.EXPECT().TransitionToVoid(gomock.Any(), int32(1), "duplicate").Return(nil)
			},
			expectedStatus: model.InvoiceStatusVoid,
		},
		{
			name: "invalid_transition",
			transition: func(b *business) (*model.Invoice, error) {
				return b.VoidInvoice(context.Background(), 1, "late")
			},
			expect: func(m mocks) *gomock.Call {
				return m.stateMachine.EXPECT().TransitionToVoid(gomock.Any(), int32(1), "late").Return(invalid)
			},
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, m := newTestBusiness(t)
			tc.expect(m)
			if tc.expectedCode == errs.OK {
				m.invoiceRepo.EXPECT().GetInvoice(gomock.Any(), int32(1)).
					Return(invoices.Invoice{ID: 1, Status: string(tc.expectedStatus)}, nil)
				m.invoiceRepo.EXPECT().ListInvoiceItems(gomock.Any(), int32(1)).Return(nil, nil)
			}

			result, err := tc.transition(b)

			if tc.expectedCode != errs.OK {
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, result.Status)
		})
	}
}
