package orders

import (
	"context"
	"errors"

	"go.temporal.io/api/serviceerror"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/workflow"
)

type ListCouponServicesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListCouponServicesResponse struct {
	Services   []model.CouponService `json:"services"`
	TotalCount int64                 `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

type DeleteCouponServicesRequest struct {
	IDs []int32 `json:"ids" validate:"required,min=1,max=100,dive,gt=0"`
}

type DeleteCouponServicesResponse struct {
	Deleted    int64   `json:"deleted"`
	DeletedIDs []int32 `json:"deleted_ids"`
}

// ListCouponServices lists the services ordered with a coupon.
//
//encore:api public path=/v1/coupons/:id/services method=GET
func (s *Service) ListCouponServices(ctx context.Context, id int32, req *ListCouponServicesRequest) (*ListCouponServicesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid coupon ID"}
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	services, totalCount, err := s.orderProducts.ListCouponServices(ctx, id, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list coupon services", "error", err, "coupon_id", id)
		return nil, err
	}

	return &ListCouponServicesResponse{
		Services:   services,
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}, nil
}

// DeleteCouponServices bulk deletes services ordered with a coupon and
// stops their renewals.
//
//encore:api public path=/v1/coupons/:id/services/delete method=POST
func (s *Service) DeleteCouponServices(ctx context.Context, id int32, req *DeleteCouponServicesRequest) (*DeleteCouponServicesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid coupon ID"}
	}

	deleted, err := s.orderProducts.DeleteCouponServices(ctx, id, req.IDs)
	if err != nil {
		rlog.Error("failed to delete coupon services", "error", err, "coupon_id", id)
		return nil, err
	}

	// Only rows removed under this coupon lose their renewal loop.
	fanOutAsync("cancel-renewals", deleted, func(ctx context.Context, orderProductID int32) error {
		err := s.signalCancelRenewal(ctx, orderProductID, workflow.CancelRenewalSignal{Reason: "service deleted"})
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	})

	return &DeleteCouponServicesResponse{
		Deleted:    int64(len(deleted)),
		DeletedIDs: deleted,
	}, nil
}

func (r *DeleteCouponServicesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}
