package orders

import (
	"context"
	"time"

	"encore.dev/cron"
	"encore.dev/rlog"

	"github.com/dugiahuy/order-billing/orders/workflow"
)

var _ = cron.NewJob("schedule-renewals", cron.JobConfig{
	Title:    "Start renewal workflows for expiring order products",
	Every:    1 * cron.Hour,
	Endpoint: ScheduleRenewals,
})

type ScheduleRenewalsResponse struct {
	Started        int `json:"started"`
	AlreadyRunning int `json:"already_running"`
	Failed         int `json:"failed"`
}

// ScheduleRenewals starts renewal workflows for order products of active
// orders expiring within the scheduling horizon.
//
//encore:api private
func (s *Service) ScheduleRenewals(ctx context.Context) (*ScheduleRenewalsResponse, error) {
	expiresBefore := time.Now().Add(s.scheduleHorizon)

	renewable, err := s.orderProducts.ListRenewable(ctx, expiresBefore, s.scheduleBatchSize)
	if err != nil {
		rlog.Error("failed to list renewable order products", "error", err)
		return nil, err
	}

	response := &ScheduleRenewalsResponse{}
	for _, orderProduct := range renewable {
		if orderProduct.ExpiresAt == nil {
			continue
		}

		alreadyRunning, err := s.startRenewalWorkflow(ctx, workflow.RenewalParams{
			OrderProductID: orderProduct.ID,
			ExpiresAt:      *orderProduct.ExpiresAt,
			LeadTime:       s.renewalLeadTime,
		})
		switch {
		case err != nil:
			rlog.Error("failed to start renewal workflow", "error", err, "order_product_id", orderProduct.ID)
			response.Failed++
		case alreadyRunning:
			response.AlreadyRunning++
		default:
			response.Started++
		}
	}

	rlog.Info("renewals scheduled",
		"started", response.Started,
		"already_running", response.AlreadyRunning,
		"failed", response.Failed,
	)
	return response, nil
}
