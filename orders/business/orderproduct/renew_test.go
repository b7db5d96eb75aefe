package orderproduct

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/repository"
	"github.com/dugiahuy/order-billing/orders/repository/orderproducts"
	"github.com/dugiahuy/order-billing/orders/repository/products"
)

func productRow() products.Product {
	return products.Product{ID: 20, Name: "Pro Hosting"}
}

func TestRenew(t *testing.T) {
	expiresAt := date(2024, time.January, 20)
	renewedAt := date(2024, time.February, 19)

	testCases := []struct {
		name          string
		from          time.Time
		advanceErr    error
		expectAdvance bool
		expectedExp   time.Time
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:          "advances_expiry",
			from:          expiresAt,
			expectAdvance: true,
			expectedExp:   renewedAt,
		},
		{
			name:          "from_in_other_zone_uses_calendar_date",
			from:          time.Date(2024, time.January, 20, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			expectAdvance: true,
			expectedExp:   renewedAt,
		},
		{
			name:        "already_renewed",
			from:        date(2024, time.January, 1),
			expectedExp: expiresAt,
		},
		{
			name:          "renewal_from_future_period",
			from:          date(2024, time.February, 19),
			expectedCode:  errs.FailedPrecondition,
			expectedError: "order product expires before the requested renewal period",
		},
		{
			name:          "renewed_concurrently",
			from:          expiresAt,
			expectAdvance: true,
			advanceErr:    pgx.ErrNoRows,
			expectedCode:  errs.Aborted,
			expectedError: "order product was renewed concurrently",
		},
		{
			name:          "database_error",
			from:          expiresAt,
			expectAdvance: true,
			advanceErr:    errors.New("connection reset"),
			expectedCode:  errs.Internal,
			expectedError: "failed to renew order product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, m := newTestBusiness(t)
			row := dbOrderProduct(1, &expiresAt)
			expectHydrate(m, row, 30)

			if tc.expectAdvance {
				advanced := row
				advanced.ExpiresAt = repository.Date(renewedAt)
				m.orderProductRepo.EXPECT().
					AdvanceOrderProductExpiry(gomock.Any(), orderproducts.AdvanceOrderProductExpiryParams{
						ExpiresAt:         repository.Date(renewedAt),
						ID:                1,
						PreviousExpiresAt: repository.Date(expiresAt),
					}).
					Return(advanced, tc.advanceErr)
			}

			result, err := b.Renew(context.Background(), 1, tc.from)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result.ExpiresAt)
			assert.Equal(t, tc.expectedExp, *result.ExpiresAt)
			assert.NotNil(t, result.Plan)
			assert.NotNil(t, result.Product)
		})
	}
}

func TestListRenewable(t *testing.T) {
	before := date(2024, time.March, 1)
	expiresAt := date(2024, time.February, 28)

	t.Run("happy_case", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProductRepo.EXPECT().
			ListRenewableOrderProducts(gomock.Any(), orderproducts.ListRenewableOrderProductsParams{
				ExpiresBefore: repository.Date(before),
				RowLimit:      50,
			}).
			Return([]orderproducts.OrderProduct{dbOrderProduct(1, &expiresAt), dbOrderProduct(2, &expiresAt)}, nil)

		result, err := b.ListRenewable(context.Background(), before, 50)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int32(1), result[0].ID)
		assert.Equal(t, expiresAt, *result[1].ExpiresAt)
	})

	t.Run("database_error", func(t *testing.T) {
		b, m := newTestBusiness(t)
		m.orderProductRepo.EXPECT().ListRenewableOrderProducts(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		result, err := b.ListRenewable(context.Background(), before, 50)

		assert.Nil(t, result)
		assert.Equal(t, errs.Internal, errs.Code(err))
	})
}
