package orderproduct

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
	"github.com/dugiahuy/order-billing/orders/repository/orders"
	"github.com/dugiahuy/order-billing/orders/repository/plans"
	"github.com/dugiahuy/order-billing/orders/repository/products"
)

func (b *business) Hydrate(ctx context.Context, id int32) (*model.OrderProduct, error) {
	dbOrderProduct, err := b.orderProductRepo.GetOrderProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "order product not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order product"}
	}

	orderProduct := convertDBOrderProductToModel(dbOrderProduct)

	order, err := resolve(ctx, b.orderRepo.GetOrder, dbOrderProduct.OrderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order"}
	}
	if order != nil {
		orderProduct.Order = convertDBOrderToModel(*order)
	}

	if dbOrderProduct.PlanID.Valid {
		plan, err := resolve(ctx, b.planRepo.GetPlan, dbOrderProduct.PlanID.Int32)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to get plan"}
		}
		if plan != nil {
			orderProduct.Plan = convertDBPlanToModel(*plan)
		}
	}

	if dbOrderProduct.ProductID.Valid {
		product, err := resolve(ctx, b.productRepo.GetProduct, dbOrderProduct.ProductID.Int32)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
		}
		if product != nil {
			orderProduct.Product = convertDBProductToModel(*product)
		}
	}

	return orderProduct, nil
}

// GetOrderProduct returns the hydrated order product with its configs and
// the invoices it has been billed on.
func (b *business) GetOrderProduct(ctx context.Context, id int32) (*model.OrderProduct, error) {
	orderProduct, err := b.Hydrate(ctx, id)
	if err != nil {
		return nil, err
	}

	dbConfigs, err := b.orderProductRepo.ListOrderProductConfigs(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order product configs"}
	}
	for _, dbConfig := range dbConfigs {
		orderProduct.Configs = append(orderProduct.Configs, model.OrderProductConfig{
			ID:             dbConfig.ID,
			OrderProductID: dbConfig.OrderProductID,
			Key:            dbConfig.Key,
			Value:          repository.TextPtr(dbConfig.Value),
			CreatedAt:      dbConfig.CreatedAt.Time,
		})
	}

	dbInvoices, err := b.invoiceRepo.ListInvoicesByOrderProduct(ctx, pgtype.Int4{Int32: id, Valid: true})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order product invoices"}
	}
	for _, dbInvoice := range dbInvoices {
		orderProduct.Invoices = append(orderProduct.Invoices, repository.InvoiceToModel(dbInvoice))
	}

	return orderProduct, nil
}

// resolve fetches a related row. A missing row is not an error: it yields nil.
func resolve[T any](ctx context.Context, fetch func(context.Context, int32) (T, error), id int32) (*T, error) {
	row, err := fetch(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// convertDBOrderProductToModel converts a database OrderProduct to a domain model OrderProduct
func convertDBOrderProductToModel(dbOrderProduct orderproducts.OrderProduct) *model.OrderProduct {
	return &model.OrderProduct{
		ID:        dbOrderProduct.ID,
		OrderID:   dbOrderProduct.OrderID,
		ProductID: repository.Int4Ptr(dbOrderProduct.ProductID),
		PlanID:    repository.Int4Ptr(dbOrderProduct.PlanID),
		Quantity:  dbOrderProduct.Quantity,
		Price:     repository.Money(dbOrderProduct.Price),
		ExpiresAt: repository.DatePtr(dbOrderProduct.ExpiresAt),
		CreatedAt: dbOrderProduct.CreatedAt.Time,
		UpdatedAt: dbOrderProduct.UpdatedAt.Time,
	}
}

func convertDBOrderToModel(dbOrder orders.Order) *model.Order {
	return &model.Order{
		ID:        dbOrder.ID,
		UserID:    dbOrder.UserID,
		CouponID:  repository.Int4Ptr(dbOrder.CouponID),
		Currency:  dbOrder.Currency,
		Status:    model.OrderStatus(dbOrder.Status),
		CreatedAt: dbOrder.CreatedAt.Time,
		UpdatedAt: dbOrder.UpdatedAt.Time,
	}
}

func convertDBPlanToModel(dbPlan plans.Plan) *model.Plan {
	return &model.Plan{
		ID:              dbPlan.ID,
		ProductID:       repository.Int4Ptr(dbPlan.ProductID),
		Name:            dbPlan.Name,
		BillingDuration: dbPlan.BillingDuration,
		Price:           repository.Money(dbPlan.Price),
	}
}

func convertDBProductToModel(dbProduct products.Product) *model.Product {
	return &model.Product{
		ID:   dbProduct.ID,
		Name: dbProduct.Name,
	}
}
