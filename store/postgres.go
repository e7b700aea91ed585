package store

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/reform.v1"

	"github.com/stelpay/checkout"
)

// NewPostgres returns a store backed by PostgreSQL. Every mutating operation
// of the engine runs inside one reform transaction, which is the atomic
// boundary the lifecycle rules rely on.
func NewPostgres(db *reform.DB) *Postgres {
	return &Postgres{db: db}
}

type Postgres struct {
	db *reform.DB
}

var _ Store = (*Postgres)(nil)

func (s *Postgres) FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error) {
	return pgOps{s.db.Querier}.FindInvoice(id)
}

func (s *Postgres) SaveInvoice(inv *checkout.Invoice) error {
	return pgOps{s.db.Querier}.SaveInvoice(inv)
}

func (s *Postgres) FindPayment(id checkout.InvoiceID) (*checkout.Payment, error) {
	return pgOps{s.db.Querier}.FindPayment(id)
}

func (s *Postgres) SavePayment(p *checkout.Payment) error {
	return pgOps{s.db.Querier}.SavePayment(p)
}

func (s *Postgres) TokenAddress() (string, error) {
	return pgOps{s.db.Querier}.TokenAddress()
}

func (s *Postgres) SetTokenAddress(addr string) error {
	return pgOps{s.db.Querier}.SetTokenAddress(addr)
}

func (s *Postgres) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.InTransactionContext(ctx, nil, func(tx *reform.TX) error {
		return fn(&PgTx{q: tx})
	})
}

// NextSequence returns the next value of the persisted call counter. It backs
// the sequencer when the process has no host-supplied per-call sequence.
func (s *Postgres) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	row := s.db.WithContext(ctx).QueryRow("SELECT nextval('checkout.call_seq')")
	if err := row.Scan(&seq); err != nil {
		return 0, errors.Wrap(err, "failed next call sequence")
	}
	return seq, nil
}

// PgTx adapts one reform transaction to the store contract. The ledger joins
// the same transaction through Querier.
type PgTx struct {
	q *reform.TX
}

var _ Tx = (*PgTx)(nil)

func (t *PgTx) Querier() *reform.Querier {
	return t.q.Querier
}

func (t *PgTx) FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error) {
	return pgOps{t.q.Querier}.FindInvoice(id)
}

func (t *PgTx) SaveInvoice(inv *checkout.Invoice) error {
	return pgOps{t.q.Querier}.SaveInvoice(inv)
}

func (t *PgTx) FindPayment(id checkout.InvoiceID) (*checkout.Payment, error) {
	return pgOps{t.q.Querier}.FindPayment(id)
}

func (t *PgTx) SavePayment(p *checkout.Payment) error {
	return pgOps{t.q.Querier}.SavePayment(p)
}

func (t *PgTx) TokenAddress() (string, error) {
	return pgOps{t.q.Querier}.TokenAddress()
}

func (t *PgTx) SetTokenAddress(addr string) error {
	return pgOps{t.q.Querier}.SetTokenAddress(addr)
}

type pgOps struct {
	q *reform.Querier
}

func (o pgOps) FindInvoice(id checkout.InvoiceID) (*checkout.Invoice, error) {
	var row invoiceRow
	if err := o.q.FindByPrimaryKeyTo(&row, id.String()); err != nil {
		if err == reform.ErrNoRows {
			return nil, checkout.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed find invoice")
	}
	return row.toDomain()
}

func (o pgOps) SaveInvoice(inv *checkout.Invoice) error {
	row := newInvoiceRow(inv)
	var existing invoiceRow
	err := o.q.FindByPrimaryKeyTo(&existing, row.ID)
	switch err {
	case nil:
		if err := o.q.Update(row); err != nil {
			return errors.Wrap(err, "failed update invoice")
		}
	case reform.ErrNoRows:
		if err := o.q.Insert(row); err != nil {
			return errors.Wrap(err, "failed insert invoice")
		}
	default:
		return errors.Wrap(err, "failed find invoice")
	}
	return nil
}

func (o pgOps) FindPayment(id checkout.InvoiceID) (*checkout.Payment, error) {
	var row paymentRow
	if err := o.q.FindByPrimaryKeyTo(&row, id.String()); err != nil {
		if err == reform.ErrNoRows {
			return nil, checkout.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed find payment")
	}
	return row.toDomain()
}

func (o pgOps) SavePayment(p *checkout.Payment) error {
	if err := o.q.Insert(newPaymentRow(p)); err != nil {
		return errors.Wrap(err, "failed insert payment")
	}
	return nil
}

func (o pgOps) TokenAddress() (string, error) {
	var row settingRow
	if err := o.q.FindByPrimaryKeyTo(&row, tokenAddressKey); err != nil {
		if err == reform.ErrNoRows {
			return "", checkout.ErrNotFound
		}
		return "", errors.Wrap(err, "failed find token address")
	}
	return row.Value, nil
}

func (o pgOps) SetTokenAddress(addr string) error {
	row := &settingRow{Key: tokenAddressKey, Value: addr}
	var existing settingRow
	err := o.q.FindByPrimaryKeyTo(&existing, tokenAddressKey)
	switch err {
	case nil:
		if err := o.q.Update(row); err != nil {
			return errors.Wrap(err, "failed update token address")
		}
	case reform.ErrNoRows:
		if err := o.q.Insert(row); err != nil {
			return errors.Wrap(err, "failed insert token address")
		}
	default:
		return errors.Wrap(err, "failed find token address")
	}
	return nil
}
