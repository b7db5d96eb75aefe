package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/order-billing/orders/workflow"
)

type StartRenewalRequest struct {
	// LeadHours overrides how long before expiry the invoice is issued.
	LeadHours int `json:"lead_hours" validate:"min=0,max=720"`
	// Immediate bills the upcoming period right away.
	Immediate   bool   `json:"immediate"`
	RequestedBy string `json:"requested_by" validate:"max=100"`
}

type StartRenewalResponse struct {
	WorkflowID     string    `json:"workflow_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	AlreadyRunning bool      `json:"already_running"`
}

type CancelRenewalRequest struct {
	Reason      string `json:"reason" validate:"required,max=255"`
	CancelledBy string `json:"cancelled_by" validate:"max=100"`
}

type CancelRenewalResponse struct {
	WorkflowID string `json:"workflow_id"`
}

// StartRenewal starts the renewal loop of an order product.
//
//encore:api public path=/v1/order-products/:id/renewals method=POST
func (s *Service) StartRenewal(ctx context.Context, id int32, req *StartRenewalRequest) (*StartRenewalResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order product ID"}
	}

	// Describe rejects order products that could never be billed.
	description, err := s.orderProducts.Describe(ctx, id)
	if err != nil {
		rlog.Error("failed to describe order product", "error", err, "id", id)
		return nil, err
	}

	params := workflow.RenewalParams{
		OrderProductID: id,
		ExpiresAt:      description.PeriodStart,
		LeadTime:       s.renewalLeadTime,
	}
	if req.LeadHours > 0 {
		params.LeadTime = time.Duration(req.LeadHours) * time.Hour
	}

	response := &StartRenewalResponse{
		WorkflowID: workflow.RenewalWorkflowID(id),
		ExpiresAt:  description.PeriodStart,
	}

	if req.Immediate {
		err = s.renewNow(ctx, params, req.RequestedBy)
	} else {
		response.AlreadyRunning, err = s.startRenewalWorkflow(ctx, params)
	}
	if err != nil {
		rlog.Error("failed to start renewal", "error", err, "id", id, "workflow_id", response.WorkflowID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start renewal"}
	}

	return response, nil
}

// CancelRenewal stops the renewal loop of an order product.
//
//encore:api public path=/v1/order-products/:id/renewals/cancel method=POST
func (s *Service) CancelRenewal(ctx context.Context, id int32, req *CancelRenewalRequest) (*CancelRenewalResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order product ID"}
	}

	workflowID := workflow.RenewalWorkflowID(id)
	err := s.signalCancelRenewal(ctx, id, workflow.CancelRenewalSignal{
		Reason:      req.Reason,
		CancelledBy: req.CancelledBy,
	})
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "renewal is not running"}
		}
		rlog.Error("failed to cancel renewal", "error", err, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to cancel renewal"}
	}

	return &CancelRenewalResponse{
		WorkflowID: workflowID,
	}, nil
}

func (r *StartRenewalRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *CancelRenewalRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (s *Service) renewalOptions(orderProductID int32) client.StartWorkflowOptions {
	return client.StartWorkflowOptions{
		ID:        workflow.RenewalWorkflowID(orderProductID),
		TaskQueue: s.taskQueue,
	}
}

// startRenewalWorkflow starts the renewal workflow and reports whether one
// was already running for the order product.
func (s *Service) startRenewalWorkflow(ctx context.Context, params workflow.RenewalParams) (bool, error) {
	options := s.renewalOptions(params.OrderProductID)

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.RenewalPeriod, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "order_product_id", params.OrderProductID, "workflow_id", options.ID)
			return true, nil
		}
		return false, fmt.Errorf("execute workflow %s: %w", options.ID, err)
	}
	return false, nil
}

func (s *Service) renewNow(ctx context.Context, params workflow.RenewalParams, requestedBy string) error {
	options := s.renewalOptions(params.OrderProductID)
	signal := workflow.RenewNowSignal{RequestedBy: requestedBy}

	_, err := s.temporal.SignalWithStartWorkflow(ctx, options.ID, workflow.RenewNowSignalName, signal, options, workflow.RenewalPeriod, params)
	if err != nil {
		return fmt.Errorf("signal with start workflow %s: %w", options.ID, err)
	}
	return nil
}

func (s *Service) signalCancelRenewal(ctx context.Context, orderProductID int32, signal workflow.CancelRenewalSignal) error {
	return s.temporal.SignalWorkflow(ctx, workflow.RenewalWorkflowID(orderProductID), "", workflow.CancelRenewalSignalName, signal)
}
