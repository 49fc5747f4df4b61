// Package payment holds the payment-gateway integration: order creation
// against the provider and local HMAC verification of its callbacks.
package payment

import "context"

// OrderRequest describes the gateway order to open for a booking. Amount is
// in minor currency units (paise).
type OrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string
	Notes            map[string]string
}

// Order is the gateway's order descriptor handed back to the client so it
// can complete checkout.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Gateway creates payment orders with the provider. Signature verification
// is not part of this interface: it is computed locally by Verifier.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}
