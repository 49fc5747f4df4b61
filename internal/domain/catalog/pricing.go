package catalog

import (
	"math"

	"github.com/bubbleflash/service-movers/internal/domain"
)

// DistanceTier is one band of the per-item distance schedule, exposed so
// clients can render the pricing table.
type DistanceTier struct {
	Range       string   `json:"range"`
	MinKm       float64  `json:"min_km"`
	MaxKm       *float64 `json:"max_km,omitempty"`
	Charge      float64  `json:"charge"`
	PerKm       bool     `json:"per_km,omitempty"`
	Description string   `json:"description"`
}

// ItemQuote is the itemized result of a per-item price calculation.
type ItemQuote struct {
	ServiceID      string  `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	BasePrice      float64 `json:"base_price"`
	DistanceCharge float64 `json:"distance_charge"`
	TotalPrice     float64 `json:"total_price"`
	DistanceKm     float64 `json:"distance_km"`
}

// DistanceCharge returns the banded surcharge for a per-item move. Band
// upper bounds are inclusive: exactly 5, 10, 20 and 30 km fall into the
// lower band. Beyond 30 km the charge is per-km with a ceiling, unlike the
// home-move engine which never rounds up.
func DistanceCharge(distanceKm float64) (float64, error) {
	if distanceKm < 0 {
		return 0, domain.NewValidationError("distance cannot be negative")
	}
	switch {
	case distanceKm <= 5:
		return 0, nil
	case distanceKm <= 10:
		return 150, nil
	case distanceKm <= 20:
		return 250, nil
	case distanceKm <= 30:
		return 350, nil
	default:
		return math.Ceil((distanceKm - 30) * 10), nil
	}
}

// Quote prices a single item service over the given distance.
func (c *Catalog) Quote(serviceID string, distanceKm float64) (ItemQuote, error) {
	svc, err := c.Get(serviceID)
	if err != nil {
		return ItemQuote{}, err
	}
	charge, err := DistanceCharge(distanceKm)
	if err != nil {
		return ItemQuote{}, err
	}
	return ItemQuote{
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		BasePrice:      svc.BasePrice,
		DistanceCharge: charge,
		TotalPrice:     svc.BasePrice + charge,
		DistanceKm:     distanceKm,
	}, nil
}

// DistanceTiers returns the banded schedule for display.
func DistanceTiers() []DistanceTier {
	f := func(v float64) *float64 { return &v }
	return []DistanceTier{
		{Range: "0-5 km", MinKm: 0, MaxKm: f(5), Charge: 0, Description: "Base price includes 0-5 km"},
		{Range: "5-10 km", MinKm: 5, MaxKm: f(10), Charge: 150, Description: "Additional 150 for 5-10 km"},
		{Range: "10-20 km", MinKm: 10, MaxKm: f(20), Charge: 250, Description: "Additional 250 for 10-20 km"},
		{Range: "20-30 km", MinKm: 20, MaxKm: f(30), Charge: 350, Description: "Additional 350 for 20-30 km"},
		{Range: "30+ km", MinKm: 30, Charge: 10, PerKm: true, Description: "10 per km after 30 km"},
	}
}
