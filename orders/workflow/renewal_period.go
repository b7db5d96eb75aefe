package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// RenewalParams contains parameters for starting the renewal workflow
type RenewalParams struct {
	OrderProductID int32         `json:"order_product_id"`
	ExpiresAt      time.Time     `json:"expires_at"`
	LeadTime       time.Duration `json:"lead_time"`
}

// RenewalPeriod bills an order product ahead of its expiry, advances the
// expiry and continues as new for the following period.
func RenewalPeriod(ctx workflow.Context, params RenewalParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting renewal workflow", "orderProductID", params.OrderProductID, "expiresAt", params.ExpiresAt, "leadTime", params.LeadTime)

	cancelCh := workflow.GetSignalChannel(ctx, CancelRenewalSignalName)
	renewNowCh := workflow.GetSignalChannel(ctx, RenewNowSignalName)

	cancelled := false
	onCancel := func(c workflow.ReceiveChannel, more bool) {
		var signal CancelRenewalSignal
		c.Receive(ctx, &signal)
		logger.Info("Received cancel renewal signal", "orderProductID", params.OrderProductID, "reason", signal.Reason, "cancelledBy", signal.CancelledBy)
		cancelled = true
	}

	waitDuration := params.ExpiresAt.Add(-params.LeadTime).Sub(workflow.Now(ctx))
	if waitDuration > 0 {
		logger.Info("Waiting for billing time", "orderProductID", params.OrderProductID, "waitDuration", waitDuration)

		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, waitDuration)

		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Billing time reached", "orderProductID", params.OrderProductID)
		})
		selector.AddReceive(cancelCh, onCancel)
		selector.AddReceive(renewNowCh, func(c workflow.ReceiveChannel, more bool) {
			var signal RenewNowSignal
			c.Receive(ctx, &signal)
			logger.Info("Received renew now signal", "orderProductID", params.OrderProductID, "requestedBy", signal.RequestedBy)
		})
		selector.Select(ctx)
		cancelTimer()
	} else {
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(cancelCh, onCancel)
		selector.AddDefault(func() {})
		selector.Select(ctx)
	}

	if cancelled {
		logger.Info("Renewal workflow cancelled", "orderProductID", params.OrderProductID)
		return nil
	}

	invoiceID, err := generateRenewalInvoice(ctx, params.OrderProductID, params.ExpiresAt)
	if err != nil {
		logger.Error("Failed to generate renewal invoice", "orderProductID", params.OrderProductID, "error", err)
		return err
	}

	if err := finalizeInvoice(ctx, invoiceID); err != nil {
		logger.Error("Failed to finalize renewal invoice", "orderProductID", params.OrderProductID, "invoiceID", invoiceID, "error", err)
		return err
	}

	nextExpiresAt, err := renewOrderProduct(ctx, params.OrderProductID, params.ExpiresAt)
	if err != nil {
		logger.Error("Failed to renew order product", "orderProductID", params.OrderProductID, "error", err)
		return err
	}

	if !nextExpiresAt.After(params.ExpiresAt) {
		logger.Warn("Expiry did not advance, stopping renewals", "orderProductID", params.OrderProductID, "expiresAt", nextExpiresAt)
		return nil
	}

	// Signals delivered while billing are lost on continue-as-new unless
	// consumed here.
	if signal, ok := drainCancel(cancelCh); ok {
		logger.Info("Renewal workflow cancelled after billing", "orderProductID", params.OrderProductID, "reason", signal.Reason, "cancelledBy", signal.CancelledBy)
		return nil
	}
	if drainRenewNow(renewNowCh) > 0 {
		logger.Info("Renew now request satisfied by the current period", "orderProductID", params.OrderProductID)
	}

	logger.Info("Renewal period completed", "orderProductID", params.OrderProductID, "invoiceID", invoiceID, "nextExpiresAt", nextExpiresAt)
	return workflow.NewContinueAsNewError(ctx, RenewalPeriod, RenewalParams{
		OrderProductID: params.OrderProductID,
		ExpiresAt:      nextExpiresAt,
		LeadTime:       params.LeadTime,
	})
}

// drainCancel consumes every buffered cancel signal and reports the last one.
func drainCancel(ch workflow.ReceiveChannel) (CancelRenewalSignal, bool) {
	var (
		last    CancelRenewalSignal
		pending bool
	)
	for {
		var signal CancelRenewalSignal
		if !ch.ReceiveAsync(&signal) {
			return last, pending
		}
		last, pending = signal, true
	}
}

func drainRenewNow(ch workflow.ReceiveChannel) int {
	n := 0
	var signal RenewNowSignal
	for ch.ReceiveAsync(&signal) {
		n++
	}
	return n
}

// generateRenewalInvoice executes the GenerateRenewalInvoice activity
func generateRenewalInvoice(ctx workflow.Context, orderProductID int32, periodStart time.Time) (int32, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var invoiceID int32
	err := workflow.ExecuteActivity(activityCtx, GenerateRenewalInvoiceActivity, orderProductID, periodStart).Get(ctx, &invoiceID)
	return invoiceID, err
}

// finalizeInvoice executes the FinalizeInvoice activity
func finalizeInvoice(ctx workflow.Context, invoiceID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, FinalizeInvoiceActivity, invoiceID).Get(ctx, nil)
}

// renewOrderProduct executes the RenewOrderProduct activity
func renewOrderProduct(ctx workflow.Context, orderProductID int32, from time.Time) (time.Time, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var expiresAt time.Time
	err := workflow.ExecuteActivity(activityCtx, RenewOrderProductActivity, orderProductID, from).Get(ctx, &expiresAt)
	return expiresAt, err
}
