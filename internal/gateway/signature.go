package gateway

import (
	"crypto/hmac"   // Constant-time comparison and HMAC construction
	"crypto/sha256" // Hash underlying the gateway signature scheme
	"encoding/hex"  // Signatures travel as hex digests
)

// SignaturePayload joins the order and payment ids the way the gateway signs
// them: "<order_id>|<payment_id>".
func SignaturePayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

// Sign computes the hex HMAC-SHA256 digest of the payload under secret
func Sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret)) // Keyed with the merchant secret
	mac.Write([]byte(payload))                  // Hash the payload
	return hex.EncodeToString(mac.Sum(nil))     // Hex digest as sent by the gateway
}

// VerifySignature recomputes the expected signature for the order/payment
// pair and compares it to the client-supplied one in constant time.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := Sign(secret, SignaturePayload(orderID, paymentID))
	return hmac.Equal([]byte(expected), []byte(signature)) // Constant-time compare
}
