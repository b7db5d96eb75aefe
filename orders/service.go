package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"github.com/dugiahuy/order-billing/orders/business/currency"
	"github.com/dugiahuy/order-billing/orders/business/invoice"
	"github.com/dugiahuy/order-billing/orders/business/orderproduct"
	"github.com/dugiahuy/order-billing/orders/domain"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/workflow"
)

var ordersDB = sqldb.NewDatabase("orders", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	orderProducts orderproduct.Business
	invoices      invoice.Business

	temporal client.Client
	worker   worker.Worker

	taskQueue         string
	renewalLeadTime   time.Duration
	scheduleHorizon   time.Duration
	scheduleBatchSize int32
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](ordersDB)
	repo := repository.NewRepository(pgxdb)

	currencyBusiness := currency.NewCurrencyBusiness(repo.Currencies)
	orderProductBusiness := orderproduct.NewOrderProductBusiness(
		repo.OrderProducts,
		repo.Orders,
		repo.Plans,
		repo.Products,
		repo.Invoices,
	)
	invoiceBusiness := invoice.NewInvoiceBusiness(
		repo.Invoices,
		orderProductBusiness,
		currencyBusiness,
		domain.NewInvoiceStateMachine(pgxdb),
	)

	rlog.Info("Connecting to Temporal", "host", cfg.TemporalHost, "namespace", cfg.TemporalNamespace)
	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(orderProductBusiness, invoiceBusiness)

	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.RenewalPeriod)
	w.RegisterActivity(workflow.GenerateRenewalInvoiceActivity)
	w.RegisterActivity(workflow.FinalizeInvoiceActivity)
	w.RegisterActivity(workflow.RenewOrderProductActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		orderProducts:     orderProductBusiness,
		invoices:          invoiceBusiness,
		temporal:          c,
		worker:            w,
		taskQueue:         cfg.TaskQueue,
		renewalLeadTime:   time.Duration(cfg.RenewalLeadHours) * time.Hour,
		scheduleHorizon:   time.Duration(cfg.ScheduleHorizonHours) * time.Hour,
		scheduleBatchSize: int32(cfg.ScheduleBatchSize),
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
