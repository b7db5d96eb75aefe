package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/workflow"
)

func describeResult(id int32) *model.BillingDescription {
	return &model.BillingDescription{
		OrderProductID: id,
		Description:    "Pro Hosting (Mar 01, 2024 - Apr 01, 2024)",
		PeriodStart:    date(2024, time.March, 1),
		PeriodEnd:      date(2024, time.April, 1),
	}
}

func TestStartRenewal(t *testing.T) {
	testCases := []struct {
		name              string
		request           *StartRenewalRequest
		mockTemporalError error
		expectedLeadTime  time.Duration
		expectRunning     bool
		expectedCode      errs.ErrCode
	}{
		{
			name:             "starts_workflow",
			request:          &StartRenewalRequest{},
			expectedLeadTime: 72 * time.Hour,
		},
		{
			name:             "custom_lead_time",
			request:          &StartRenewalRequest{LeadHours: 24},
			expectedLeadTime: 24 * time.Hour,
		},
		{
			name:              "already_running_is_benign",
			request:           &StartRenewalRequest{},
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "run-1"),
			expectedLeadTime:  72 * time.Hour,
			expectRunning:     true,
		},
		{
			name:              "temporal_unavailable",
			request:           &StartRenewalRequest{},
			mockTemporalError: errors.New("connection refused"),
			expectedLeadTime:  72 * time.Hour,
			expectedCode:      errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			ts.orderProducts.EXPECT().Describe(gomock.Any(), int32(7)).Return(describeResult(7), nil)
			ts.temporal.On("ExecuteWorkflow",
				mock.Anything,
				client.StartWorkflowOptions{ID: "renewal-7", TaskQueue: "order-renewals-test"},
				mock.Anything,
				workflow.RenewalParams{OrderProductID: 7, ExpiresAt: date(2024, time.March, 1), LeadTime: tc.expectedLeadTime},
			).Return(nil, tc.mockTemporalError)

			response, err := ts.StartRenewal(context.Background(), 7, tc.request)

			if tc.expectedCode != errs.OK {
				assert.Nil(t, response)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "renewal-7", response.WorkflowID)
			assert.Equal(t, date(2024, time.March, 1), response.ExpiresAt)
			assert.Equal(t, tc.expectRunning, response.AlreadyRunning)
		})
	}
}

func TestStartRenewal_Immediate(t *testing.T) {
	ts := newTestService(t)
	ts.orderProducts.EXPECT().Describe(gomock.Any(), int32(7)).Return(describeResult(7), nil)
	ts.temporal.On("SignalWithStartWorkflow",
		mock.Anything,
		"renewal-7",
		workflow.RenewNowSignalName,
		workflow.RenewNowSignal{RequestedBy: "admin"},
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(nil, nil)

	response, err := ts.StartRenewal(context.Background(), 7, &StartRenewalRequest{Immediate: true, RequestedBy: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "renewal-7", response.WorkflowID)
	assert.False(t, response.AlreadyRunning)
}

func TestStartRenewal_UnbillableOrderProduct(t *testing.T) {
	ts := newTestService(t)
	ts.orderProducts.EXPECT().Describe(gomock.Any(), int32(7)).
		Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "order product 7 has no plan"})

	response, err := ts.StartRenewal(context.Background(), 7, &StartRenewalRequest{})

	assert.Nil(t, response)
	assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	ts.temporal.AssertNotCalled(t, "ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelRenewal(t *testing.T) {
	testCases := []struct {
		name              string
		id                int32
		mockTemporalError error
		expectSignal      bool
		expectedCode      errs.ErrCode
	}{
		{
			name:         "signals_workflow",
			id:           7,
			expectSignal: true,
		},
		{
			name:              "workflow_not_running",
			id:                7,
			mockTemporalError: serviceerror.NewNotFound("workflow not found"),
			expectSignal:      true,
			expectedCode:      errs.NotFound,
		},
		{
			name:              "temporal_unavailable",
			id:                7,
			mockTemporalError: errors.New("connection refused"),
			expectSignal:      true,
			expectedCode:      errs.Unavailable,
		},
		{
			name:         "invalid_id",
			id:           0,
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			request := &CancelRenewalRequest{Reason: "customer churned", CancelledBy: "admin"}
			if tc.expectSignal {
				ts.temporal.On("SignalWorkflow",
					mock.Anything,
					"renewal-7",
					"",
					workflow.CancelRenewalSignalName,
					workflow.CancelRenewalSignal{Reason: "customer churned", CancelledBy: "admin"},
				).Return(tc.mockTemporalError)
			}

			response, err := ts.CancelRenewal(context.Background(), tc.id, request)

			if tc.expectedCode != errs.OK {
				assert.Nil(t, response)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "renewal-7", response.WorkflowID)
		})
	}
}

func TestRenewalRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       interface{ Validate() error }
		expectedError string
	}{
		{name: "valid_start", request: &StartRenewalRequest{LeadHours: 48}},
		{name: "negative_lead_hours", request: &StartRenewalRequest{LeadHours: -1}, expectedError: "min"},
		{name: "lead_hours_too_large", request: &StartRenewalRequest{LeadHours: 721}, expectedError: "max"},
		{name: "valid_cancel", request: &CancelRenewalRequest{Reason: "churn"}},
		{name: "cancel_without_reason", request: &CancelRenewalRequest{}, expectedError: "required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
