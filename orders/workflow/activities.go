package workflow

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/business/invoice"
	"github.com/dugiahuy/order-billing/orders/business/orderproduct"
	"github.com/dugiahuy/order-billing/orders/domain/billingperiod"
	"github.com/dugiahuy/order-billing/orders/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	OrderProducts orderproduct.Business
	Invoices      invoice.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(orderProducts orderproduct.Business, invoices invoice.Business) {
	activityDeps = &ActivityDependencies{
		OrderProducts: orderProducts,
		Invoices:      invoices,
	}
}

func dependenciesReady() bool {
	return activityDeps != nil && activityDeps.OrderProducts != nil && activityDeps.Invoices != nil
}

// GenerateRenewalInvoiceActivity bills the period of an order product that
// starts on periodStart and returns the invoice id. An invoice already
// generated for that period is reused.
func GenerateRenewalInvoiceActivity(ctx context.Context, orderProductID int32, periodStart time.Time) (int32, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing generate renewal invoice activity", "orderProductID", orderProductID, "periodStart", periodStart)

	if !dependenciesReady() {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	key := invoice.RenewalKey(orderProductID, periodStart)
	existing, err := activityDeps.Invoices.GetInvoiceByIdempotencyKey(ctx, key)
	if err == nil {
		logger.Info("Renewal invoice already generated", "orderProductID", orderProductID, "invoiceID", existing.ID)
		return existing.ID, nil
	}
	if errs.Code(err) != errs.NotFound {
		logger.Error("Failed to look up renewal invoice", "orderProductID", orderProductID, "error", err)
		return 0, err
	}

	orderProduct, err := activityDeps.OrderProducts.Hydrate(ctx, orderProductID)
	if err != nil {
		logger.Error("Failed to load order product", "orderProductID", orderProductID, "error", err)
		return 0, activityError(err, "ORDER_PRODUCT_UNAVAILABLE")
	}
	if orderProduct.ExpiresAt == nil || !billingperiod.CalendarDate(*orderProduct.ExpiresAt).Equal(billingperiod.CalendarDate(periodStart)) {
		logger.Warn("Order product expiry moved", "orderProductID", orderProductID, "expiresAt", orderProduct.ExpiresAt)
		return 0, temporal.NewNonRetryableApplicationError("order product expiry does not match the renewal period", "EXPIRY_MISMATCH", nil)
	}

	result, err := activityDeps.Invoices.GenerateRenewalInvoice(ctx, &model.RenewalInvoiceRequest{
		OrderID:         orderProduct.OrderID,
		OrderProductIDs: []int32{orderProductID},
		IdempotencyKey:  key,
	})
	if err != nil {
		if errs.Code(err) == errs.AlreadyExists {
			existing, getErr := activityDeps.Invoices.GetInvoiceByIdempotencyKey(ctx, key)
			if getErr != nil {
				return 0, getErr
			}
			return existing.ID, nil
		}
		logger.Error("Failed to generate renewal invoice", "orderProductID", orderProductID, "error", err)
		return 0, activityError(err, "RENEWAL_INVOICE_FAILED")
	}

	logger.Info("Successfully generated renewal invoice", "orderProductID", orderProductID, "invoiceID", result.Invoice.ID, "total", result.Invoice.Total)
	return result.Invoice.ID, nil
}

// FinalizeInvoiceActivity opens a draft renewal invoice for payment.
// Invoices that already left draft are left as they are.
func FinalizeInvoiceActivity(ctx context.Context, invoiceID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing finalize invoice activity", "invoiceID", invoiceID)

	if !dependenciesReady() {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	current, err := activityDeps.Invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to get invoice", "invoiceID", invoiceID, "error", err)
		return activityError(err, "INVOICE_UNAVAILABLE")
	}
	if current.Status != model.InvoiceStatusDraft {
		logger.Info("Invoice already finalized", "invoiceID", invoiceID, "status", current.Status)
		return nil
	}

	if _, err := activityDeps.Invoices.FinalizeInvoice(ctx, invoiceID); err != nil {
		logger.Error("Failed to finalize invoice", "invoiceID", invoiceID, "error", err)
		return activityError(err, "INVOICE_FINALIZE_FAILED")
	}

	logger.Info("Successfully finalized invoice", "invoiceID", invoiceID)
	return nil
}

// RenewOrderProductActivity advances the expiry of an order product past
// the period starting on from and returns the new expiry.
func RenewOrderProductActivity(ctx context.Context, orderProductID int32, from time.Time) (time.Time, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing renew order product activity", "orderProductID", orderProductID, "from", from)

	if !dependenciesReady() {
		logger.Error("Activity dependencies not set")
		return time.Time{}, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	orderProduct, err := activityDeps.OrderProducts.Renew(ctx, orderProductID, from)
	if err != nil {
		logger.Error("Failed to renew order product", "orderProductID", orderProductID, "error", err)
		return time.Time{}, activityError(err, "RENEWAL_FAILED")
	}
	if orderProduct.ExpiresAt == nil {
		return time.Time{}, temporal.NewNonRetryableApplicationError("renewed order product has no expiry", "RENEWAL_FAILED", nil)
	}

	logger.Info("Successfully renewed order product", "orderProductID", orderProductID, "expiresAt", *orderProduct.ExpiresAt)
	return *orderProduct.ExpiresAt, nil
}

// activityError marks errors that no retry can fix as non-retryable.
func activityError(err error, errType string) error {
	switch errs.Code(err) {
	case errs.NotFound, errs.InvalidArgument, errs.FailedPrecondition:
		return temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
	}
	return err
}
