package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/order-billing/orders/model"
	"github.com/dugiahuy/order-billing/orders/repository/invoices"
)

// StateMachine defines invoice state transitions and transaction management
type StateMachine interface {
	// InTx runs fn inside a transaction; fn must use the repository it is given.
	InTx(ctx context.Context, fn func(repo invoices.Querier) error) error

	// ExecuteWithLock runs fn in a transaction holding a row lock on the invoice
	ExecuteWithLock(ctx context.Context, invoiceID int32, fn func(repo invoices.Querier, current invoices.Invoice) error) error

	TransitionToOpen(ctx context.Context, invoiceID int32) error
	TransitionToPaid(ctx context.Context, invoiceID int32) error
	TransitionToVoid(ctx context.Context, invoiceID int32, reason string) error
}

// transitions lists the statuses reachable from each status.
var transitions = map[model.InvoiceStatus][]model.InvoiceStatus{
	model.InvoiceStatusDraft: {model.InvoiceStatusOpen, model.InvoiceStatusVoid},
	model.InvoiceStatusOpen:  {model.InvoiceStatusPaid, model.InvoiceStatusVoid},
}

// CanTransition reports whether an invoice may move from one status to another.
func CanTransition(from, to model.InvoiceStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvoiceStateMachine owns the transaction boundary for invoice writes
type InvoiceStateMachine struct {
	db *pgxpool.Pool
}

func NewInvoiceStateMachine(db *pgxpool.Pool) *InvoiceStateMachine {
	return &InvoiceStateMachine{db: db}
}

var _ StateMachine = (*InvoiceStateMachine)(nil)

func (sm *InvoiceStateMachine) InTx(ctx context.Context, fn func(repo invoices.Querier) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(invoices.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

func (sm *InvoiceStateMachine) ExecuteWithLock(ctx context.Context, invoiceID int32, fn func(repo invoices.Querier, current invoices.Invoice) error) error {
	return sm.InTx(ctx, func(repo invoices.Querier) error {
		current, err := repo.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
		}
		return fn(repo, current)
	})
}

func (sm *InvoiceStateMachine) TransitionToOpen(ctx context.Context, invoiceID int32) error {
	return sm.transition(ctx, invoiceID, model.InvoiceStatusOpen, "")
}

func (sm *InvoiceStateMachine) TransitionToPaid(ctx context.Context, invoiceID int32) error {
	return sm.transition(ctx, invoiceID, model.InvoiceStatusPaid, "")
}

func (sm *InvoiceStateMachine) TransitionToVoid(ctx context.Context, invoiceID int32, reason string) error {
	return sm.transition(ctx, invoiceID, model.InvoiceStatusVoid, reason)
}

func (sm *InvoiceStateMachine) transition(ctx context.Context, invoiceID int32, to model.InvoiceStatus, reason string) error {
	return sm.ExecuteWithLock(ctx, invoiceID, func(repo invoices.Querier, current invoices.Invoice) error {
		return ApplyTransition(ctx, repo, current, to, reason)
	})
}

// ApplyTransition moves a locked invoice to status to. Repeating the current
// status is a no-op.
func ApplyTransition(ctx context.Context, repo invoices.Querier, current invoices.Invoice, to model.InvoiceStatus, reason string) error {
	from := model.InvoiceStatus(current.Status)
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: fmt.Sprintf("cannot transition invoice from %s to %s", from, to),
		}
	}

	voidReason := current.VoidReason
	if to == model.InvoiceStatusVoid {
		voidReason = pgtype.Text{String: reason, Valid: reason != ""}
	}

	_, err := repo.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
		Status:     string(to),
		VoidReason: voidReason,
		ID:         current.ID,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to update invoice status"}
	}
	return nil
}
