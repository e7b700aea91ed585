package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAllowed(t *testing.T) {
	allowed := [][2]InvoiceStatus{
		{OPEN_I, PAID_I},
		{OPEN_I, EXPIRED_I},
		{PAID_I, REFUNDED_I},
	}
	for _, pair := range allowed {
		assert.True(t, StatusAllowed(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]InvoiceStatus{
		{OPEN_I, REFUNDED_I},
		{PAID_I, OPEN_I},
		{PAID_I, EXPIRED_I},
		{EXPIRED_I, OPEN_I},
		{EXPIRED_I, PAID_I},
		{REFUNDED_I, OPEN_I},
		{REFUNDED_I, PAID_I},
	}
	for _, pair := range denied {
		assert.False(t, StatusAllowed(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

func TestParseInvoiceID(t *testing.T) {
	var id InvoiceID
	copy(id[:], []byte("0123456789abcdef0123456789abcdef"))

	parsed, err := ParseInvoiceID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseInvoiceID_invalid(t *testing.T) {
	_, err := ParseInvoiceID("zz")
	assert.Error(t, err)

	_, err = ParseInvoiceID(strings.Repeat("ab", 16)[:30])
	assert.Error(t, err, "short input")
}
