package invoice

import (
	"context"

	"github.com/dugiahuy/order-billing/orders/model"
)

// FinalizeInvoice opens a draft invoice for payment.
func (b *business) FinalizeInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	if err := b.stateMachine.TransitionToOpen(ctx, id); err != nil {
		return nil, err
	}
	return b.GetInvoice(ctx, id)
}

func (b *business) MarkInvoicePaid(ctx context.Context, id int32) (*model.Invoice, error) {
	if err := b.stateMachine.TransitionToPaid(ctx, id); err != nil {
		return nil, err
	}
	return b.GetInvoice(ctx, id)
}

func (b *business) VoidInvoice(ctx context.Context, id int32, reason string) (*model.Invoice, error) {
	if err := b.stateMachine.TransitionToVoid(ctx, id, reason); err != nil {
		return nil, err
	}
	return b.GetInvoice(ctx, id)
}
