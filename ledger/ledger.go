// Package ledger moves fungible-token balances between identities. The
// engine treats it as the external transfer primitive: a failed transfer
// aborts the whole operation.
package ledger

import (
	"sync"

	"github.com/stelpay/checkout"
	"github.com/stelpay/checkout/store"
)

// Ledger transfers amount of token from one identity to another. The store
// transaction is passed so that implementations sharing the invoice database
// can join the same atomic boundary.
type Ledger interface {
	Transfer(tx store.Tx, token, from, to string, amount int64) error
}

// NewMem returns an in-memory ledger. Balances start at zero; use Deposit to
// fund accounts.
func NewMem() *Mem {
	return &Mem{balances: make(map[memKey]int64)}
}

type Mem struct {
	mu       sync.Mutex
	balances map[memKey]int64
}

type memKey struct {
	token    string
	identity string
}

var _ Ledger = (*Mem)(nil)

func (m *Mem) Deposit(token, identity string, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[memKey{token, identity}] += amount
}

func (m *Mem) Balance(token, identity string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[memKey{token, identity}]
}

// Transfer applies the move immediately, outside the store transaction tx.
// Mem must therefore be paired with store.Mem, whose writes after a
// successful transfer cannot fail: a rollback never follows a completed
// move. Ledgers sharing a real database join tx instead (see Postgres).
func (m *Mem) Transfer(tx store.Tx, token, from, to string, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := memKey{token, from}
	if m.balances[src] < amount {
		return checkout.ErrInsufficientFunds
	}
	m.balances[src] -= amount
	m.balances[memKey{token, to}] += amount
	return nil
}
