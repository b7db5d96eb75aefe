package orderproduct

import (
	"context"
	"time"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
	"github.com/dugiahuy/order-billing/orders/repository/orders"
	"github.com/dugiahuy/order-billing/orders/repository/plans"
	"github.com/dugiahuy/order-billing/orders/repository/products"
)

type Business interface {
	// Hydrate loads an order product with its order, plan and product.
	// Relations that cannot be resolved are left nil.
	Hydrate(ctx context.Context, id int32) (*model.OrderProduct, error)
	GetOrderProduct(ctx context.Context, id int32) (*model.OrderProduct, error)
	Describe(ctx context.Context, id int32) (*model.BillingDescription, error)
	Currency(ctx context.Context, id int32) (string, error)
	Renew(ctx context.Context, id int32, from time.Time) (*model.OrderProduct, error)
	ListRenewable(ctx context.Context, expiresBefore time.Time, limit int32) ([]model.OrderProduct, error)
	ListCouponServices(ctx context.Context, couponID, limit, offset int32) ([]model.CouponService, int64, error)
	DeleteCouponServices(ctx context.Context, couponID int32, ids []int32) ([]int32, error)
}

type business struct {
	orderProductRepo orderproducts.Querier
	orderRepo        orders.Querier
	planRepo         plans.Querier
	productRepo      products.Querier
	invoiceRepo      invoices.Querier
}

func NewOrderProductBusiness(
	orderProductRepo orderproducts.Querier,
	orderRepo orders.Querier,
	planRepo plans.Querier,
	productRepo products.Querier,
	invoiceRepo invoices.Querier,
) Business {
	return &business{
		orderProductRepo: orderProductRepo,
		orderRepo:        orderRepo,
		planRepo:         planRepo,
		productRepo:      productRepo,
		invoiceRepo:      invoiceRepo,
	}
}
