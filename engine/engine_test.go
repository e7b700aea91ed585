package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stelpay/checkout"
	"github.com/stelpay/checkout/auth"
	"github.com/stelpay/checkout/events"
	"github.com/stelpay/checkout/ledger"
	"github.com/stelpay/checkout/store"
)

const (
	tokenAddr = "USDC-TOKEN"
	merchant  = "GMERCHANT"
	payer     = "GPAYER"

	// 1 unit at 7 decimals.
	oneUnit = int64(10_000_000)
)

type testClock struct {
	now int64
}

func (c *testClock) Now() int64 { return c.now }

type testEnv struct {
	eng    *Engine
	store  *store.Mem
	ledger *ledger.Mem
	sink   *events.Mem
	clock  *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:  store.NewMem(),
		ledger: ledger.NewMem(),
		sink:   events.NewMem(),
		clock:  &testClock{now: 1_700_000_000},
	}
	verifier := auth.Static{
		merchant:    "proof-merchant",
		payer:       "proof-payer",
		"GINTRUDER": "proof-intruder",
	}
	env.eng = New(env.store, env.ledger, verifier, env.sink, env.clock, NewAtomicSequencer())
	require.NoError(t, env.eng.Initialize(context.Background(), tokenAddr))
	return env
}

func (env *testEnv) createInvoice(t *testing.T, amount int64) checkout.InvoiceID {
	t.Helper()
	id, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", amount, env.clock.now+600)
	require.NoError(t, err)
	return id
}

func TestInitialize_secondCallRejected(t *testing.T) {
	env := newTestEnv(t)
	err := env.eng.Initialize(context.Background(), "OTHER-TOKEN")
	assert.Equal(t, checkout.ErrAlreadyInitialized, err)
}

func TestCreateInvoice_invalidAmount(t *testing.T) {
	env := newTestEnv(t)
	for _, amount := range []int64{0, -1, -oneUnit} {
		_, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", amount, env.clock.now+600)
		assert.Equal(t, checkout.ErrInvalidAmount, err, "amount=%d", amount)
	}
}

func TestCreateInvoice_expiryBounds(t *testing.T) {
	env := newTestEnv(t)
	now := env.clock.now

	for _, expiry := range []int64{now + 299, now + 3601, now, now - 100} {
		_, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", oneUnit, expiry)
		assert.Equal(t, checkout.ErrInvalidExpiry, err, "expiry=now%+d", expiry-now)
	}
	for _, expiry := range []int64{now + 300, now + 3600} {
		_, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", oneUnit, expiry)
		assert.NoError(t, err, "expiry=now%+d", expiry-now)
	}
}

func TestCreateInvoice_badProof(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.eng.CreateInvoice(context.Background(), merchant, "wrong", oneUnit, env.clock.now+600)
	assert.Equal(t, checkout.ErrUnauthorizedAccess, err)
}

func TestCreateInvoice_uniqueIDsSameTimestamp(t *testing.T) {
	env := newTestEnv(t)
	id1 := env.createInvoice(t, oneUnit)
	id2 := env.createInvoice(t, oneUnit)
	assert.NotEqual(t, id1, id2)
}

func TestCreateInvoice_roundTrip(t *testing.T) {
	env := newTestEnv(t)
	id := env.createInvoice(t, oneUnit)

	inv, err := env.eng.GetInvoice(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, id, inv.ID)
	assert.Equal(t, merchant, inv.Merchant)
	assert.EqualValues(t, oneUnit, inv.Amount)
	assert.Equal(t, env.clock.now+600, inv.Expiry)
	assert.Equal(t, checkout.OPEN_I, inv.Status)
	assert.Equal(t, env.clock.now, inv.CreatedAt)
	assert.Nil(t, inv.Payer)

	evs := env.sink.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, events.CreatedEvent, evs[0].Name)
	assert.Equal(t, merchant, evs[0].Merchant)
	assert.Equal(t, id, evs[0].InvoiceID)
	assert.EqualValues(t, oneUnit, evs[0].Amount)
}

func TestPay_happyPath(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, 2*oneUnit)
	id := env.createInvoice(t, oneUnit)

	err := env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit)
	require.NoError(t, err)

	status, exists, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, checkout.PAID_I, status)

	assert.EqualValues(t, oneUnit, env.ledger.Balance(tokenAddr, payer))
	assert.EqualValues(t, oneUnit, env.ledger.Balance(tokenAddr, merchant))

	p, err := env.eng.GetPayment(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.InvoiceID)
	assert.Equal(t, payer, p.Payer)
	assert.EqualValues(t, oneUnit, p.Amount)
	assert.Equal(t, env.clock.now, p.Timestamp)

	inv, err := env.eng.GetInvoice(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, inv.Payer)
	assert.Equal(t, payer, *inv.Payer)

	evs := env.sink.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, events.PaidEvent, evs[1].Name)
	assert.Equal(t, payer, evs[1].Payer)
}

func TestPay_wrongAmount(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, 2*oneUnit)
	id := env.createInvoice(t, oneUnit)

	err := env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit/2)
	assert.Equal(t, checkout.ErrAmountMismatch, err)

	assert.EqualValues(t, 2*oneUnit, env.ledger.Balance(tokenAddr, payer))
	assert.EqualValues(t, 0, env.ledger.Balance(tokenAddr, merchant))

	status, _, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.OPEN_I, status)
}

func TestPay_expiredLazily(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit)
	id, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", oneUnit, env.clock.now+300)
	require.NoError(t, err)

	// Still open before the boundary; nothing flips on a timer.
	status, _, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.OPEN_I, status)

	env.clock.now += 301
	err = env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceExpired, err)

	// The failed call persisted the transition.
	status, _, err = env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.EXPIRED_I, status)

	assert.EqualValues(t, oneUnit, env.ledger.Balance(tokenAddr, payer))

	// A later pay attempt sees the terminal status, not the expiry path.
	err = env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceNotOpen, err)
}

func TestPay_exactlyAtExpiryStillPayable(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit)
	id, err := env.eng.CreateInvoice(context.Background(), merchant, "proof-merchant", oneUnit, env.clock.now+300)
	require.NoError(t, err)

	env.clock.now += 300
	assert.NoError(t, env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit))
}

func TestPay_doublePay(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, 3*oneUnit)
	id := env.createInvoice(t, oneUnit)

	require.NoError(t, env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit))
	err := env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceNotOpen, err)

	assert.EqualValues(t, 2*oneUnit, env.ledger.Balance(tokenAddr, payer))
}

func TestPay_unknownInvoice(t *testing.T) {
	env := newTestEnv(t)
	err := env.eng.Pay(context.Background(), checkout.InvoiceID{1, 2, 3}, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceNotFound, err)
}

func TestPay_insufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit/2)
	id := env.createInvoice(t, oneUnit)

	err := env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrInsufficientFunds, err)

	// Nothing committed: the invoice stays open, no payment record exists.
	status, _, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.OPEN_I, status)
	p, err := env.eng.GetPayment(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPay_notInitialized(t *testing.T) {
	env := &testEnv{
		store:  store.NewMem(),
		ledger: ledger.NewMem(),
		sink:   events.NewMem(),
		clock:  &testClock{now: 1_700_000_000},
	}
	env.eng = New(env.store, env.ledger, auth.Static{payer: "proof-payer"}, env.sink, env.clock, NewAtomicSequencer())

	err := env.eng.Pay(context.Background(), checkout.InvoiceID{1}, payer, "proof-payer", oneUnit)
	assert.Equal(t, checkout.ErrNotInitialized, err)
}

func TestRefund_happyPath(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit)
	id := env.createInvoice(t, oneUnit)
	require.NoError(t, env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit))

	err := env.eng.Refund(context.Background(), id, merchant, "proof-merchant", oneUnit)
	require.NoError(t, err)

	status, _, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.REFUNDED_I, status)

	assert.EqualValues(t, oneUnit, env.ledger.Balance(tokenAddr, payer))
	assert.EqualValues(t, 0, env.ledger.Balance(tokenAddr, merchant))

	// The payment record survives as evidence of the settlement.
	p, err := env.eng.GetPayment(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, payer, p.Payer)

	evs := env.sink.Events()
	require.Len(t, evs, 3)
	assert.Equal(t, events.RefundedEvent, evs[2].Name)
	assert.Equal(t, payer, evs[2].Payer)
}

func TestRefund_onlyOriginalMerchant(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit)
	id := env.createInvoice(t, oneUnit)
	require.NoError(t, env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit))

	err := env.eng.Refund(context.Background(), id, "GINTRUDER", "proof-intruder", oneUnit)
	assert.Equal(t, checkout.ErrUnauthorized, err)

	status, _, err := env.eng.GetInvoiceStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, checkout.PAID_I, status)
}

func TestRefund_beforePayment(t *testing.T) {
	env := newTestEnv(t)
	id := env.createInvoice(t, oneUnit)

	err := env.eng.Refund(context.Background(), id, merchant, "proof-merchant", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceNotOpen, err)
}

func TestRefund_partialRejected(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.Deposit(tokenAddr, payer, oneUnit)
	id := env.createInvoice(t, oneUnit)
	require.NoError(t, env.eng.Pay(context.Background(), id, payer, "proof-payer", oneUnit))

	err := env.eng.Refund(context.Background(), id, merchant, "proof-merchant", oneUnit/2)
	assert.Equal(t, checkout.ErrAmountMismatch, err)
	assert.EqualValues(t, oneUnit, env.ledger.Balance(tokenAddr, merchant))
}

func TestRefund_unknownInvoice(t *testing.T) {
	env := newTestEnv(t)
	err := env.eng.Refund(context.Background(), checkout.InvoiceID{9}, merchant, "proof-merchant", oneUnit)
	assert.Equal(t, checkout.ErrInvoiceNotFound, err)
}

func TestSetStatus_followsTransitionChart(t *testing.T) {
	inv := &checkout.Invoice{Status: checkout.PAID_I}

	err := setStatus(inv, checkout.EXPIRED_I)
	assert.Error(t, err)
	assert.Equal(t, checkout.PAID_I, inv.Status, "denied move must not touch the status")

	require.NoError(t, setStatus(inv, checkout.REFUNDED_I))
	assert.Equal(t, checkout.REFUNDED_I, inv.Status)

	err = setStatus(inv, checkout.OPEN_I)
	assert.Error(t, err, "refunded is terminal")
}

func TestQueries_absence(t *testing.T) {
	env := newTestEnv(t)
	unknown := checkout.InvoiceID{42}

	inv, err := env.eng.GetInvoice(context.Background(), unknown)
	require.NoError(t, err)
	assert.Nil(t, inv)

	p, err := env.eng.GetPayment(context.Background(), unknown)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, exists, err := env.eng.GetInvoiceStatus(context.Background(), unknown)
	require.NoError(t, err)
	assert.False(t, exists)
}
