// Package auth verifies authorization proofs: evidence that the caller
// controls a given identity. The engine only needs the pass/fail answer.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/stelpay/checkout"
)

type Verifier interface {
	Verify(identity, proof string) error
}

// NewHMAC returns a verifier accepting hex(HMAC-SHA256(secret, identity))
// as the proof for identity. The secret is shared with callers out of band.
func NewHMAC(secret []byte) *HMAC {
	return &HMAC{secret: secret}
}

type HMAC struct {
	secret []byte
}

var _ Verifier = (*HMAC)(nil)

func (v *HMAC) Verify(identity, proof string) error {
	got, err := hex.DecodeString(proof)
	if err != nil {
		return checkout.ErrUnauthorizedAccess
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(identity))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return checkout.ErrUnauthorizedAccess
	}
	return nil
}

// ProofFor computes the proof a caller must present for identity. Exposed
// for tooling and tests.
func (v *HMAC) ProofFor(identity string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(identity))
	return hex.EncodeToString(mac.Sum(nil))
}

// Static is a fixed identity→proof table, for tests.
type Static map[string]string

var _ Verifier = Static{}

func (s Static) Verify(identity, proof string) error {
	want, ok := s[identity]
	if !ok || want != proof {
		return checkout.ErrUnauthorizedAccess
	}
	return nil
}
