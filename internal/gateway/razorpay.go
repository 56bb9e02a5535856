package gateway

import (
	"github.com/razorpay/razorpay-go" // Razorpay server-side SDK
)

// OrderCreator creates a payment order with the gateway. Handlers depend on
// this interface so tests can swap in a stub.
type OrderCreator interface {
	// CreateOrder asks the gateway for a new order over amount minor units.
	// The returned map is the gateway's order object (id, amount, currency,
	// receipt, ...), passed through to the browser verbatim.
	CreateOrder(amount int64, currency, receipt string) (map[string]interface{}, error)
}

// RazorpayGateway wraps the Razorpay SDK client
type RazorpayGateway struct {
	client *razorpay.Client // Authenticated SDK client
}

// NewRazorpayGateway builds a gateway from the key pair
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates an order via the SDK; single attempt, no retry
func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amount,   // Minor units (paise for INR)
		"currency": currency, // ISO currency code
		"receipt":  receipt,  // Merchant receipt reference
	}
	return g.client.Order.Create(data, nil) // Delegate to the gateway
}
