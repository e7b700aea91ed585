package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowTables_metadata(t *testing.T) {
	assert.Equal(t, "invoices", invoiceRowTable.Name())
	assert.Equal(t, []string{"id", "merchant", "amount", "expiry", "status", "created_at", "payer"}, invoiceRowTable.Columns())
	assert.EqualValues(t, 0, invoiceRowTable.PKColumnIndex())

	assert.Equal(t, "payments", paymentRowTable.Name())
	assert.Equal(t, []string{"invoice_id", "payer", "amount", "timestamp"}, paymentRowTable.Columns())
	assert.EqualValues(t, 0, paymentRowTable.PKColumnIndex())

	assert.Equal(t, "settings", settingRowTable.Name())
	assert.Equal(t, []string{"key", "value"}, settingRowTable.Columns())
	assert.EqualValues(t, 0, settingRowTable.PKColumnIndex())
}
