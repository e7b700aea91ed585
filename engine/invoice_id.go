package engine

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/stelpay/checkout"
)

// GenerateInvoiceID derives an invoice identifier from the merchant identity
// and the host-supplied (timestamp, sequence) pair: sha256 over the merchant
// bytes followed by both numbers big endian. The result is unpredictable to
// outsiders but reproducible for auditing; uniqueness is inherited from the
// host guarantee that no two calls share the same (timestamp, sequence).
func GenerateInvoiceID(merchant string, timestamp, sequence int64) checkout.InvoiceID {
	h := sha256.New()
	h.Write([]byte(merchant))

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(timestamp))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(sequence))
	h.Write(buf[:])

	var id checkout.InvoiceID
	copy(id[:], h.Sum(nil))
	return id
}
