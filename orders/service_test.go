package orders

import (
	"context"
	"testing"
	"time"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"github.com/dugiahuy/order-billing/orders/mocks/business/invoice_business"
	"github.com/dugiahuy/order-billing/orders/mocks/business/orderproduct_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

type testService struct {
	*Service
	orderProducts *orderproduct_business.MockBusiness
	invoices      *invoice_business.MockBusiness
	temporal      *mocks.Client
}

func newTestService(t *testing.T) testService {
	ctrl := gomock.NewController(t)
	ts := testService{
		orderProducts: orderproduct_business.NewMockBusiness(ctrl),
		invoices:      invoice_business.NewMockBusiness(ctrl),
		temporal:      mocks.NewClient(t),
	}
	ts.Service = &Service{
		orderProducts:     ts.orderProducts,
		invoices:          ts.invoices,
		temporal:          ts.temporal,
		taskQueue:         "order-renewals-test",
		renewalLeadTime:   72 * time.Hour,
		scheduleHorizon:   96 * time.Hour,
		scheduleBatchSize: 50,
	}
	return ts
}

// syncAsync runs background operations inline for the duration of a test.
func syncAsync(t *testing.T) {
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = safeAsync })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
