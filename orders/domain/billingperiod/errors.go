package billingperiod

import (
	"errors"
	"fmt"
)

// MissingDateError means the order product has no expiration date.
type MissingDateError struct {
	OrderProductID int32
}

func (e *MissingDateError) Error() string {
	return fmt.Sprintf("order product %d has no expiration date", e.OrderProductID)
}

// MissingPlanError means the plan of the order product could not be resolved.
type MissingPlanError struct {
	OrderProductID int32
}

func (e *MissingPlanError) Error() string {
	return fmt.Sprintf("order product %d has no plan", e.OrderProductID)
}

// MissingProductError means the product of the order product could not be
// resolved or has no name.
type MissingProductError struct {
	OrderProductID int32
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("order product %d has no named product", e.OrderProductID)
}

// MissingOrderError means the owning order could not be resolved.
type MissingOrderError struct {
	OrderProductID int32
}

func (e *MissingOrderError) Error() string {
	return fmt.Sprintf("order product %d has no order", e.OrderProductID)
}

// InvalidDurationError means the plan has a negative billing duration.
type InvalidDurationError struct {
	PlanID int32
	Days   int32
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("plan %d has negative billing duration %d", e.PlanID, e.Days)
}

// IsDataIntegrity reports whether err comes from an order product whose
// stored data cannot produce a billing period.
func IsDataIntegrity(err error) bool {
	var (
		missingDate    *MissingDateError
		missingPlan    *MissingPlanError
		missingProduct *MissingProductError
		missingOrder   *MissingOrderError
		invalid        *InvalidDurationError
	)
	return errors.As(err, &missingDate) ||
		errors.As(err, &missingPlan) ||
		errors.As(err, &missingProduct) ||
		errors.As(err, &missingOrder) ||
		errors.As(err, &invalid)
}
