package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dugiahuy/order-billing/orders/repository/currencies"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
	"github.com/dugiahuy/order-billing/orders/repository/orders"
	"github.com/dugiahuy/order-billing/orders/repository/plans"
	"github.com/dugiahuy/order-billing/orders/repository/products"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Orders        orders.Querier
	OrderProducts orderproducts.Querier
	Plans         plans.Querier
	Products      products.Querier
	Invoices      invoices.Querier
	Currencies    currencies.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Orders:        orders.New(db),
		OrderProducts: orderproducts.New(db),
		Plans:         plans.New(db),
		Products:      products.New(db),
		Invoices:      invoices.New(db),
		Currencies:    currencies.New(db),
	}
}
