// Package billingperiod derives the upcoming billing period of an order
// product and renders it for invoice lines.
package billingperiod

import (
	"fmt"
	"time"

	"github.com/dugiahuy/order-billing/orders/model"
)

// DateLayout renders dates as "Mon DD, YYYY".
const DateLayout = "Jan 02, 2006"

// Snapshot is a fully hydrated, read-only view of an order product. A nil
// relation means it could not be resolved.
type Snapshot struct {
	OrderProductID int32
	ExpiresAt      *time.Time
	Order          *model.Order
	Plan           *model.Plan
	Product        *model.Product
}

// NewSnapshot copies the fields the formatter needs out of op.
func NewSnapshot(op *model.OrderProduct) Snapshot {
	s := Snapshot{
		OrderProductID: op.ID,
		Order:          op.Order,
		Plan:           op.Plan,
		Product:        op.Product,
	}
	if op.ExpiresAt != nil {
		expiresAt := *op.ExpiresAt
		s.ExpiresAt = &expiresAt
	}
	return s
}

// Period is a closed range of calendar dates, both at midnight UTC.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + " - " + p.End.Format(DateLayout)
}

// Next returns the period that follows expiresAt: it starts on the calendar
// date of expiresAt (read in its own location) and ends billingDurationDays
// later.
func Next(expiresAt time.Time, billingDurationDays int) Period {
	start := CalendarDate(expiresAt)
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, billingDurationDays),
	}
}

// CalendarDate drops the clock and zone of t, keeping its year, month and day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextPeriod validates s and returns its upcoming billing period.
func NextPeriod(s Snapshot) (Period, error) {
	if s.ExpiresAt == nil {
		return Period{}, &MissingDateError{OrderProductID: s.OrderProductID}
	}
	if s.Plan == nil {
		return Period{}, &MissingPlanError{OrderProductID: s.OrderProductID}
	}
	if s.Plan.BillingDuration < 0 {
		return Period{}, &InvalidDurationError{PlanID: s.Plan.ID, Days: s.Plan.BillingDuration}
	}
	return Next(*s.ExpiresAt, int(s.Plan.BillingDuration)), nil
}

// Describe renders "<product> (<start> - <end>)" for the upcoming period.
func Describe(s Snapshot) (string, error) {
	period, err := NextPeriod(s)
	if err != nil {
		return "", err
	}
	if s.Product == nil || s.Product.Name == "" {
		return "", &MissingProductError{OrderProductID: s.OrderProductID}
	}
	return fmt.Sprintf("%s (%s)", s.Product.Name, period), nil
}

// Currency returns the currency of the order owning s.
func Currency(s Snapshot) (string, error) {
	if s.Order == nil {
		return "", &MissingOrderError{OrderProductID: s.OrderProductID}
	}
	return s.Order.Currency, nil
}
