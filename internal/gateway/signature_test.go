package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fixed vector produced with `openssl dgst -sha256 -hmac`
const (
	testSecret    = "test_key_secret"
	testOrderID   = "order_NxhBn3QKno1zTJ"
	testPaymentID = "pay_H8LmWqFzR2dYKc"
	testDigest    = "c4e50fd35edfc60246b2faafa1956ae0d7c183d8683ff7a8ef2e2ef1d6a98a6a"
)

func TestSignaturePayload(t *testing.T) {
	assert.Equal(t, "order_NxhBn3QKno1zTJ|pay_H8LmWqFzR2dYKc", SignaturePayload(testOrderID, testPaymentID))
}

func TestSignMatchesKnownVector(t *testing.T) {
	assert.Equal(t, testDigest, Sign(testSecret, SignaturePayload(testOrderID, testPaymentID)))
}

func TestVerifySignature(t *testing.T) {
	// The correct digest is accepted
	assert.True(t, VerifySignature(testSecret, testOrderID, testPaymentID, testDigest))

	// Anything else is rejected
	assert.False(t, VerifySignature(testSecret, testOrderID, testPaymentID, ""))
	assert.False(t, VerifySignature(testSecret, testOrderID, testPaymentID, "deadbeef"))
	// Digest computed under a different secret
	assert.False(t, VerifySignature("other_secret", testOrderID, testPaymentID, testDigest))
	// Digest for a different order/payment pair
	assert.False(t, VerifySignature(testSecret, "order_other", testPaymentID, testDigest))
	assert.False(t, VerifySignature(testSecret, testOrderID, "pay_other", testDigest))
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	sig := Sign("s3cret", SignaturePayload("order_1", "pay_1"))
	assert.True(t, VerifySignature("s3cret", "order_1", "pay_1", sig))
	assert.False(t, VerifySignature("s3cret", "order_1", "pay_2", sig))
}
