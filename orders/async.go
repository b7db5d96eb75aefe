package orders

import (
	"context"
	"errors"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 5 * time.Second

// runAsync is swapped by tests to run background operations inline.
var runAsync = safeAsync

func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}

// fanOutAsync applies fn to every order product in the background. One
// failure does not stop the rest; failures are reported together.
func fanOutAsync(op string, orderProductIDs []int32, fn func(ctx context.Context, orderProductID int32) error) {
	if len(orderProductIDs) == 0 {
		return
	}

	ids := append([]int32(nil), orderProductIDs...)
	runAsync(op, func(ctx context.Context) error {
		var errList []error
		for _, id := range ids {
			if err := fn(ctx, id); err != nil {
				errList = append(errList, err)
			}
		}
		return errors.Join(errList...)
	})
}
