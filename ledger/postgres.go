package ledger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/reform.v1"

	"github.com/stelpay/checkout"
	"github.com/stelpay/checkout/store"
)

// NewPostgres returns a ledger holding balances in the checkout.accounts
// table. Transfers join the caller's store transaction, so a rolled back
// operation rolls the balance movement back with it.
func NewPostgres() *Postgres {
	return &Postgres{logger: zap.L().Named("ledger")}
}

type Postgres struct {
	logger *zap.Logger
}

var _ Ledger = (*Postgres)(nil)

func (l *Postgres) Transfer(tx store.Tx, token, from, to string, amount int64) error {
	pgTx, ok := tx.(*store.PgTx)
	if !ok {
		return errors.New("postgres ledger requires a postgres store transaction")
	}
	q := pgTx.Querier()

	src, err := findAccountForUpdate(q, token, from)
	if err != nil {
		return err
	}
	if src == nil || src.Balance < amount {
		return checkout.ErrInsufficientFunds
	}

	dst, err := findAccountForUpdate(q, token, to)
	if err != nil {
		return err
	}
	if dst == nil {
		dst = &accountRow{Token: token, Identity: to}
		if err := q.Insert(dst); err != nil {
			return errors.Wrap(err, "failed create destination account")
		}
	}

	src.Balance -= amount
	dst.Balance += amount
	if err := q.Update(src); err != nil {
		return errors.Wrap(err, "failed update source balance")
	}
	if err := q.Update(dst); err != nil {
		return errors.Wrap(err, "failed update destination balance")
	}

	l.logger.Debug("Transferred.",
		zap.String("token", token),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int64("amount", amount),
	)
	return nil
}

// Deposit credits an identity outside any invoice operation. Used by
// operational tooling and tests against a live database.
func (l *Postgres) Deposit(db *reform.DB, token, identity string, amount int64) error {
	return db.InTransaction(func(tx *reform.TX) error {
		acc, err := findAccountForUpdate(tx.Querier, token, identity)
		if err != nil {
			return err
		}
		if acc == nil {
			acc = &accountRow{Token: token, Identity: identity}
			if err := tx.Insert(acc); err != nil {
				return errors.Wrap(err, "failed create account")
			}
		}
		acc.Balance += amount
		return errors.Wrap(tx.Update(acc), "failed update balance")
	})
}

// Balance returns the current balance, zero for unknown identities.
func (l *Postgres) Balance(db *reform.DB, token, identity string) (int64, error) {
	var acc accountRow
	err := db.SelectOneTo(&acc, "WHERE token = $1 AND identity = $2", token, identity)
	if err != nil {
		if err == reform.ErrNoRows {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed find account")
	}
	return acc.Balance, nil
}

func findAccountForUpdate(q *reform.Querier, token, identity string) (*accountRow, error) {
	var acc accountRow
	err := q.SelectOneTo(&acc, "WHERE token = $1 AND identity = $2 FOR UPDATE", token, identity)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed find account")
	}
	return &acc, nil
}
