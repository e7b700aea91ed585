// Package events delivers lifecycle notifications to external observers.
// The stream is append only; the engine publishes after its transaction
// commits and never reads events back.
package events

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stelpay/checkout"
)

const (
	CreatedEvent  = "created"
	PaidEvent     = "paid"
	RefundedEvent = "refunded"
)

// Event carries one lifecycle notification keyed by merchant.
type Event struct {
	Name      string             `json:"name"`
	Merchant  string             `json:"merchant"`
	InvoiceID checkout.InvoiceID `json:"-"`

	// Wire form of InvoiceID.
	InvoiceIDHex string `json:"invoice_id"`

	Payer  string `json:"payer,omitempty"`
	Amount int64  `json:"amount"`
	Expiry int64  `json:"expiry,omitempty"`
}

type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// NewMem returns a sink collecting events in memory, for tests and for the
// deterministic-host mode.
func NewMem() *Mem {
	return &Mem{}
}

type Mem struct {
	mu     sync.Mutex
	events []Event
}

var _ Sink = (*Mem)(nil)

func (m *Mem) Publish(ctx context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *Mem) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// NewLog returns a sink that only logs events. Used when the binary runs
// without a broker.
func NewLog() *Log {
	return &Log{logger: zap.L().Named("events")}
}

type Log struct {
	logger *zap.Logger
}

var _ Sink = (*Log)(nil)

func (l *Log) Publish(ctx context.Context, ev Event) error {
	l.logger.Info("Event.",
		zap.String("name", ev.Name),
		zap.String("merchant", ev.Merchant),
		zap.String("invoice_id", ev.InvoiceID.String()),
		zap.String("payer", ev.Payer),
		zap.Int64("amount", ev.Amount),
		zap.Int64("expiry", ev.Expiry),
	)
	return nil
}
