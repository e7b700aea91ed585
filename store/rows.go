package store

import (
	"github.com/pkg/errors"

	"github.com/stelpay/checkout"
)

//go:generate reform

//reform:checkout.invoices
type invoiceRow struct {
	ID        string  `reform:"id,pk"`
	Merchant  string  `reform:"merchant"`
	Amount    int64   `reform:"amount"`
	Expiry    int64   `reform:"expiry"`
	Status    string  `reform:"status"`
	CreatedAt int64   `reform:"created_at"`
	Payer     *string `reform:"payer"`
}

func (r *invoiceRow) toDomain() (*checkout.Invoice, error) {
	id, err := checkout.ParseInvoiceID(r.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed parse stored invoice ID")
	}
	return &checkout.Invoice{
		ID:        id,
		Merchant:  r.Merchant,
		Amount:    r.Amount,
		Expiry:    r.Expiry,
		Status:    checkout.InvoiceStatus(r.Status),
		CreatedAt: r.CreatedAt,
		Payer:     r.Payer,
	}, nil
}

func newInvoiceRow(inv *checkout.Invoice) *invoiceRow {
	return &invoiceRow{
		ID:        inv.ID.String(),
		Merchant:  inv.Merchant,
		Amount:    inv.Amount,
		Expiry:    inv.Expiry,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		Payer:     inv.Payer,
	}
}

//reform:checkout.payments
type paymentRow struct {
	InvoiceID string `reform:"invoice_id,pk"`
	Payer     string `reform:"payer"`
	Amount    int64  `reform:"amount"`
	Timestamp int64  `reform:"timestamp"`
}

func (r *paymentRow) toDomain() (*checkout.Payment, error) {
	id, err := checkout.ParseInvoiceID(r.InvoiceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed parse stored invoice ID")
	}
	return &checkout.Payment{
		InvoiceID: id,
		Payer:     r.Payer,
		Amount:    r.Amount,
		Timestamp: r.Timestamp,
	}, nil
}

func newPaymentRow(p *checkout.Payment) *paymentRow {
	return &paymentRow{
		InvoiceID: p.InvoiceID.String(),
		Payer:     p.Payer,
		Amount:    p.Amount,
		Timestamp: p.Timestamp,
	}
}

// settingRow is the singleton configuration namespace. Today it holds only
// the token contract address under tokenAddressKey.
//
//reform:checkout.settings
type settingRow struct {
	Key   string `reform:"key,pk"`
	Value string `reform:"value"`
}

const tokenAddressKey = "token_address"
