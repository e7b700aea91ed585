package store

import (
	"context"
	"sync"

	"github.com/stelpay/checkout"
)

// NewMem returns an in-memory store. A single mutex linearizes transactions,
// which is exactly the execution model the engine assumes: one operation
// completes all its reads and writes before the next begins.
func NewMem() *Mem {
	return &Mem{
		invoices: make(map[checkout.InvoiceID]checkout.Invoice),
		payments: make(map[checkout.InvoiceID]checkout.Payment),
	}
}

type Mem struct {
	mu       sync.Mutex
	invoices map[checkout.InvoiceID]checkout.Invoice
	payments map[checkout.InvoiceID]checkout.Payment
	token    *string
}

var _ Store = (*Mem)(nil)

func (m *Mem) FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.FindInvoice(id)
}

func (m *Mem) SaveInvoice(inv *checkout.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.SaveInvoice(inv)
}

func (m *Mem) FindPayment(id checkout.InvoiceID) (*checkout.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.FindPayment(id)
}

func (m *Mem) SavePayment(p *checkout.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.SavePayment(p)
}

func (m *Mem) TokenAddress() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.TokenAddress()
}

func (m *Mem) SetTokenAddress(addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memTx{m}.SetTokenAddress(addr)
}

// InTransaction runs fn under the store lock. On error the maps are restored
// from a snapshot, so a failed operation leaves no partial writes behind.
func (m *Mem) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	invoices := make(map[checkout.InvoiceID]checkout.Invoice, len(m.invoices))
	for k, v := range m.invoices {
		invoices[k] = v
	}
	payments := make(map[checkout.InvoiceID]checkout.Payment, len(m.payments))
	for k, v := range m.payments {
		payments[k] = v
	}
	token := m.token

	if err := fn(memTx{m}); err != nil {
		m.invoices = invoices
		m.payments = payments
		m.token = token
		return err
	}
	return nil
}

// memTx assumes the caller holds m.mu.
type memTx struct {
	m *Mem
}

var _ Tx = memTx{}

func (t memTx) FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error) {
	inv, ok := t.m.invoices[id]
	if !ok {
		return nil, checkout.ErrNotFound
	}
	return &inv, nil
}

func (t memTx) SaveInvoice(inv *checkout.Invoice) error {
	t.m.invoices[inv.ID] = *inv
	return nil
}

func (t memTx) FindPayment(id checkout.InvoiceID) (*checkout.Payment, error) {
	p, ok := t.m.payments[id]
	if !ok {
		return nil, checkout.ErrNotFound
	}
	return &p, nil
}

func (t memTx) SavePayment(p *checkout.Payment) error {
	t.m.payments[p.InvoiceID] = *p
	return nil
}

func (t memTx) TokenAddress() (string, error) {
	if t.m.token == nil {
		return "", checkout.ErrNotFound
	}
	return *t.m.token, nil
}

func (t memTx) SetTokenAddress(addr string) error {
	t.m.token = &addr
	return nil
}
