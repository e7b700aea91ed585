// Package engine implements the invoice lifecycle: create, pay, refund and
// the read-only projections. All validation rules and status transitions
// live here; storage, balances, proofs and the clock are injected.
package engine

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/stelpay/checkout"
	"github.com/stelpay/checkout/auth"
	"github.com/stelpay/checkout/events"
	"github.com/stelpay/checkout/ledger"
	"github.com/stelpay/checkout/store"
)

// Payment window bounds relative to creation time, seconds. Every invoice
// is payable for at least five minutes and at most an hour.
const (
	MinExpiryDelta = 300
	MaxExpiryDelta = 3600
)

func New(st store.Store, ld ledger.Ledger, verifier auth.Verifier, sink events.Sink, clock Clock, seq Sequencer) *Engine {
	return &Engine{
		store:    st,
		ledger:   ld,
		verifier: verifier,
		sink:     sink,
		clock:    clock,
		seq:      seq,
		logger:   zap.L().Named("engine"),
	}
}

type Engine struct {
	store    store.Store
	ledger   ledger.Ledger
	verifier auth.Verifier
	sink     events.Sink
	clock    Clock
	seq      Sequencer
	logger   *zap.Logger
}

// Initialize records the token contract address moved by pay and refund.
// A second call fails with ErrAlreadyInitialized.
func (e *Engine) Initialize(ctx context.Context, tokenAddress string) error {
	return e.store.InTransaction(ctx, func(tx store.Tx) error {
		_, err := tx.TokenAddress()
		switch errors.Cause(err) {
		case nil:
			return checkout.ErrAlreadyInitialized
		case checkout.ErrNotFound:
		default:
			return err
		}
		return tx.SetTokenAddress(tokenAddress)
	})
}

// CreateInvoice opens an invoice for merchant over amount, payable until
// expiry (unix seconds, between five minutes and an hour from now).
// The proof must authorize the merchant identity.
func (e *Engine) CreateInvoice(ctx context.Context, merchant, proof string, amount, expiry int64) (checkout.InvoiceID, error) {
	var id checkout.InvoiceID

	if err := e.verifier.Verify(merchant, proof); err != nil {
		return id, err
	}
	if amount <= 0 {
		return id, checkout.ErrInvalidAmount
	}
	now := e.clock.Now()
	if expiry < now+MinExpiryDelta || expiry > now+MaxExpiryDelta {
		return id, checkout.ErrInvalidExpiry
	}

	seq, err := e.seq.Next(ctx)
	if err != nil {
		return id, errors.Wrap(err, "failed next call sequence")
	}
	id = GenerateInvoiceID(merchant, now, seq)

	inv := &checkout.Invoice{
		ID:        id,
		Merchant:  merchant,
		Amount:    amount,
		Expiry:    expiry,
		Status:    checkout.OPEN_I,
		CreatedAt: now,
	}
	err = e.store.InTransaction(ctx, func(tx store.Tx) error {
		_, err := tx.FindInvoice(id)
		switch errors.Cause(err) {
		case nil:
			// The host promised a unique (timestamp, sequence) pair and broke
			// that promise. Refuse rather than overwrite.
			return errors.Errorf("invoice ID collision: %s", id)
		case checkout.ErrNotFound:
		default:
			return err
		}
		return tx.SaveInvoice(inv)
	})
	if err != nil {
		return checkout.InvoiceID{}, err
	}

	e.publish(ctx, events.Event{
		Name:      events.CreatedEvent,
		Merchant:  merchant,
		InvoiceID: id,
		Amount:    amount,
		Expiry:    expiry,
	})
	return id, nil
}

// Pay settles an open invoice with an exact-amount transfer from payer to
// the merchant. An invoice past its expiry is marked expired and the call
// fails ErrInvoiceExpired; that status write is kept even though the call
// fails.
func (e *Engine) Pay(ctx context.Context, id checkout.InvoiceID, payer, proof string, amount int64) error {
	if err := e.verifier.Verify(payer, proof); err != nil {
		return err
	}

	var merchant string
	var lapsed bool
	err := e.store.InTransaction(ctx, func(tx store.Tx) error {
		token, err := e.tokenAddress(tx)
		if err != nil {
			return err
		}
		inv, err := tx.FindInvoice(id)
		if err != nil {
			if errors.Cause(err) == checkout.ErrNotFound {
				return checkout.ErrInvoiceNotFound
			}
			return err
		}
		if !inv.Status.Match(checkout.OPEN_I) {
			return checkout.ErrInvoiceNotOpen
		}

		now := e.clock.Now()
		if now > inv.Expiry {
			// Lazy expiry: persist the transition and commit, the failure is
			// reported after the write survives.
			if err := setStatus(inv, checkout.EXPIRED_I); err != nil {
				return err
			}
			lapsed = true
			return tx.SaveInvoice(inv)
		}

		if amount != inv.Amount {
			return checkout.ErrAmountMismatch
		}

		if err := e.ledger.Transfer(tx, token, payer, inv.Merchant, amount); err != nil {
			return err
		}

		if err := setStatus(inv, checkout.PAID_I); err != nil {
			return err
		}
		inv.Payer = &payer
		if err := tx.SaveInvoice(inv); err != nil {
			return err
		}
		if err := tx.SavePayment(&checkout.Payment{
			InvoiceID: id,
			Payer:     payer,
			Amount:    amount,
			Timestamp: now,
		}); err != nil {
			return err
		}
		merchant = inv.Merchant
		return nil
	})
	if err != nil {
		return err
	}
	if lapsed {
		return checkout.ErrInvoiceExpired
	}

	e.publish(ctx, events.Event{
		Name:      events.PaidEvent,
		Merchant:  merchant,
		InvoiceID: id,
		Payer:     payer,
		Amount:    amount,
	})
	return nil
}

// Refund moves the full settled amount from the merchant back to the payer.
// Only the invoice's original merchant may refund, only from the paid
// status, and only in full. The payment record stays behind untouched.
func (e *Engine) Refund(ctx context.Context, id checkout.InvoiceID, merchant, proof string, amount int64) error {
	if err := e.verifier.Verify(merchant, proof); err != nil {
		return err
	}

	var payer string
	err := e.store.InTransaction(ctx, func(tx store.Tx) error {
		token, err := e.tokenAddress(tx)
		if err != nil {
			return err
		}
		inv, err := tx.FindInvoice(id)
		if err != nil {
			if errors.Cause(err) == checkout.ErrNotFound {
				return checkout.ErrInvoiceNotFound
			}
			return err
		}
		if inv.Merchant != merchant {
			return checkout.ErrUnauthorized
		}
		if !inv.Status.Match(checkout.PAID_I) {
			return checkout.ErrInvoiceNotOpen
		}

		payment, err := tx.FindPayment(id)
		if err != nil {
			// Structurally impossible for a paid invoice, checked anyway.
			if errors.Cause(err) == checkout.ErrNotFound {
				return checkout.ErrInvoiceNotFound
			}
			return err
		}
		if amount != payment.Amount {
			return checkout.ErrAmountMismatch
		}

		if err := e.ledger.Transfer(tx, token, merchant, payment.Payer, amount); err != nil {
			return err
		}

		if err := setStatus(inv, checkout.REFUNDED_I); err != nil {
			return err
		}
		if err := tx.SaveInvoice(inv); err != nil {
			return err
		}
		payer = payment.Payer
		return nil
	})
	if err != nil {
		return err
	}

	e.publish(ctx, events.Event{
		Name:      events.RefundedEvent,
		Merchant:  merchant,
		InvoiceID: id,
		Payer:     payer,
		Amount:    amount,
	})
	return nil
}

// GetInvoice returns the invoice, or nil when unknown.
func (e *Engine) GetInvoice(ctx context.Context, id checkout.InvoiceID) (*checkout.Invoice, error) {
	inv, err := e.store.FindInvoice(id)
	if err != nil {
		if errors.Cause(err) == checkout.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// GetPayment returns the settlement record, or nil when the invoice is
// unknown or unpaid.
func (e *Engine) GetPayment(ctx context.Context, id checkout.InvoiceID) (*checkout.Payment, error) {
	p, err := e.store.FindPayment(id)
	if err != nil {
		if errors.Cause(err) == checkout.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// GetInvoiceStatus returns the invoice status and whether the invoice
// exists.
func (e *Engine) GetInvoiceStatus(ctx context.Context, id checkout.InvoiceID) (checkout.InvoiceStatus, bool, error) {
	inv, err := e.GetInvoice(ctx, id)
	if err != nil || inv == nil {
		return "", false, err
	}
	return inv.Status, true, nil
}

// setStatus moves the invoice along the transition chart. A move the chart
// does not list is a bug in the caller's guards, not a user error.
func setStatus(inv *checkout.Invoice, next checkout.InvoiceStatus) error {
	if !checkout.StatusAllowed(inv.Status, next) {
		return errors.Errorf("status transition not allowed: %s -> %s", inv.Status, next)
	}
	inv.Status = next
	return nil
}

func (e *Engine) tokenAddress(tx store.Tx) (string, error) {
	token, err := tx.TokenAddress()
	if err != nil {
		if errors.Cause(err) == checkout.ErrNotFound {
			return "", checkout.ErrNotInitialized
		}
		return "", err
	}
	return token, nil
}

// publish runs after the transaction committed; a sink failure cannot undo
// the operation, so it is logged and swallowed.
func (e *Engine) publish(ctx context.Context, ev events.Event) {
	if err := e.sink.Publish(ctx, ev); err != nil {
		e.logger.Error("Failed publish event.",
			zap.String("name", ev.Name),
			zap.String("invoice_id", ev.InvoiceID.String()),
			zap.Error(err),
		)
	}
}
