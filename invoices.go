package checkout

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// InvoiceID is an opaque 32-byte invoice identifier.
type InvoiceID [32]byte

func (id InvoiceID) String() string {
	return hex.EncodeToString(id[:])
}

func (id InvoiceID) IsZero() bool {
	return id == InvoiceID{}
}

// ParseInvoiceID parses the hex text form of an invoice ID.
func ParseInvoiceID(s string) (InvoiceID, error) {
	var id InvoiceID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.Wrap(err, "failed decode invoice ID")
	}
	if len(b) != len(id) {
		return id, errors.Errorf("invalid invoice ID length %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

type InvoiceStatus string

func (s InvoiceStatus) Match(in InvoiceStatus) bool {
	return s == in
}

const (
	OPEN_I     InvoiceStatus = "open"
	PAID_I     InvoiceStatus = "paid"
	REFUNDED_I InvoiceStatus = "refunded"
	EXPIRED_I  InvoiceStatus = "expired"
)

// Invoice is a merchant's request for a fixed amount, payable only while
// open and before expiry. Amounts are fixed point with 7 fractional digits.
type Invoice struct {
	ID        InvoiceID
	Merchant  string
	Amount    int64
	Expiry    int64
	Status    InvoiceStatus
	CreatedAt int64
	Payer     *string
}

var transitionsStatusesOfInvoice = InvoicesStatusTransitionChart{
	OPEN_I: {PAID_I, EXPIRED_I},
	PAID_I: {REFUNDED_I},
}

type InvoicesStatusTransitionChart map[InvoiceStatus][]InvoiceStatus

func (s InvoicesStatusTransitionChart) Allowed(from, to InvoiceStatus) bool {
	list, exists := s[from]
	if !exists {
		return false
	}
	for _, status := range list {
		if status.Match(to) {
			return true
		}
	}
	return false
}

// StatusAllowed reports whether an invoice may move from one status to
// another. Refunded and expired are terminal.
func StatusAllowed(from, to InvoiceStatus) bool {
	return transitionsStatusesOfInvoice.Allowed(from, to)
}
