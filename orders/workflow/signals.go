package workflow

import "fmt"

const (
	// Signal names
	CancelRenewalSignalName = "cancel-renewal"
	RenewNowSignalName      = "renew-now"
)

// CancelRenewalSignal stops the renewal of an order product.
type CancelRenewalSignal struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelled_by"`
}

// RenewNowSignal bills the upcoming period without waiting for the lead time.
type RenewNowSignal struct {
	RequestedBy string `json:"requested_by"`
}

// RenewalWorkflowID is the workflow id of the renewal loop of an order product.
func RenewalWorkflowID(orderProductID int32) string {
	return fmt.Sprintf("renewal-%d", orderProductID)
}
