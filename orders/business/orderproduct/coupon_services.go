package orderproduct

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
)

// ServiceEditURL is the admin page of a single service.
const ServiceEditURL = "/admin/services/%d/edit"

// ListCouponServices lists the order products of orders placed with a coupon
func (b *business) ListCouponServices(ctx context.Context, couponID, limit, offset int32) ([]model.CouponService, int64, error) {
	coupon := pgtype.Int4{Int32: couponID, Valid: true}

	rows, err := b.orderProductRepo.ListCouponServices(ctx, orderproducts.ListCouponServicesParams{
		CouponID: coupon,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list coupon services"}
	}

	totalCount, err := b.orderProductRepo.CountCouponServices(ctx, coupon)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count coupon services"}
	}

	services := make([]model.CouponService, len(rows))
	for i, row := range rows {
		services[i] = model.CouponService{
			ID:       row.ID,
			OrderID:  row.OrderID,
			UserName: row.UserName.String,
			ViewURL:  fmt.Sprintf(ServiceEditURL, row.ID),
		}
	}

	return services, totalCount, nil
}

// DeleteCouponServices deletes the given order products that belong to
// orders placed with the coupon and returns the ids actually removed. Ids of
// other coupons are left untouched.
func (b *business) DeleteCouponServices(ctx context.Context, couponID int32, ids []int32) ([]int32, error) {
	if len(ids) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no services selected"}
	}

	deleted, err := b.orderProductRepo.DeleteCouponServices(ctx, orderproducts.DeleteCouponServicesParams{
		CouponID: pgtype.Int4{Int32: couponID, Valid: true},
		Ids:      ids,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "services are referenced by invoices"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete coupon services"}
	}

	return deleted, nil
}
