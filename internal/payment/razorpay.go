package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway implements Gateway against the Razorpay Orders API.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway creates a gateway with the given API credentials.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a Razorpay order for the given amount and receipt.
func (g *RazorpayGateway) CreateOrder(_ context.Context, req OrderRequest) (Order, error) {
	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	data := map[string]interface{}{
		"amount":   req.AmountMinorUnits,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return Order{}, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	id, _ := resp["id"].(string)
	if id == "" {
		return Order{}, fmt.Errorf("razorpay order response missing id")
	}

	return Order{
		ID:       id,
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
	}, nil
}
