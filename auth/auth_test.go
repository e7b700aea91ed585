package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stelpay/checkout"
)

func TestHMAC(t *testing.T) {
	v := NewHMAC([]byte("secret"))

	proof := v.ProofFor("GMERCHANT")
	assert.NoError(t, v.Verify("GMERCHANT", proof))

	assert.Equal(t, checkout.ErrUnauthorizedAccess, v.Verify("GOTHER", proof))
	assert.Equal(t, checkout.ErrUnauthorizedAccess, v.Verify("GMERCHANT", "deadbeef"))
	assert.Equal(t, checkout.ErrUnauthorizedAccess, v.Verify("GMERCHANT", "not hex"))

	other := NewHMAC([]byte("other secret"))
	assert.Equal(t, checkout.ErrUnauthorizedAccess, other.Verify("GMERCHANT", proof))
}

func TestStatic(t *testing.T) {
	v := Static{"GMERCHANT": "p1"}

	assert.NoError(t, v.Verify("GMERCHANT", "p1"))
	assert.Equal(t, checkout.ErrUnauthorizedAccess, v.Verify("GMERCHANT", "p2"))
	assert.Equal(t, checkout.ErrUnauthorizedAccess, v.Verify("GOTHER", "p1"))
}
