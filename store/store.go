// Package store persists invoices, payments and the singleton token
// configuration slot. Absence is reported as checkout.ErrNotFound.
package store

import (
	"context"

	"github.com/stelpay/checkout"
)

// Tx is the set of record operations available inside one atomic unit of
// work. Writes performed through a Tx become visible all together on commit
// or not at all.
type Tx interface {
	FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error)
	SaveInvoice(inv *checkout.Invoice) error

	FindPayment(id checkout.InvoiceID) (*checkout.Payment, error)
	SavePayment(p *checkout.Payment) error

	TokenAddress() (string, error)
	SetTokenAddress(addr string) error
}

// Store gives direct reads for the query surface and a transactional
// boundary for the mutating operations.
type Store interface {
	Tx

	InTransaction(ctx context.Context, fn func(tx Tx) error) error
}
