package booking

import (
	"fmt"
	"math"

	"github.com/bubbleflash/service-movers/internal/domain"
)

// homeBasePrices is the base price table keyed by home size and move type,
// in rupees.
var homeBasePrices = map[HomeSize]map[MoveType]float64{
	Home1BHK:  {MoveWithinCity: 3999, MoveIntercity: 8999},
	Home2BHK:  {MoveWithinCity: 5999, MoveIntercity: 12999},
	Home3BHK:  {MoveWithinCity: 8999, MoveIntercity: 17999},
	Home4BHK:  {MoveWithinCity: 11999, MoveIntercity: 22999},
	HomeVilla: {MoveWithinCity: 15999, MoveIntercity: 29999},
}

// vehicleCharges is the flat add-on charge per shifted vehicle type.
var vehicleCharges = map[VehicleType]float64{
	VehicleBike: 1500,
	VehicleCar:  3000,
	VehicleBoth: 4000,
}

// Painting add-on charges. Flags are independent and additive.
const (
	paintingInteriorCharge = 5000
	paintingExteriorCharge = 7000
	paintingWoodCharge     = 3000
)

// Intercity distance surcharge: the base price covers the first 100 km,
// every km beyond is charged per-km. Within-city moves are flat regardless
// of distance.
const (
	intercityFreeKm    = 100.0
	intercityRatePerKm = 15.0
)

// HomeMoveQuoter computes itemized quotes for full home moves. It is pure
// and safe for concurrent use.
type HomeMoveQuoter struct{}

// NewHomeMoveQuoter creates a new HomeMoveQuoter.
func NewHomeMoveQuoter() *HomeMoveQuoter {
	return &HomeMoveQuoter{}
}

// Quote returns the itemized price breakdown for a home move. All enum
// inputs are validated strictly; unrecognized values are rejected rather
// than silently priced at a default.
func (q *HomeMoveQuoter) Quote(
	homeSize HomeSize,
	moveType MoveType,
	distanceKm float64,
	vehicle VehicleSelection,
	painting PaintingSelection,
) (PriceBreakdown, error) {
	if !homeSize.IsValid() {
		return PriceBreakdown{}, domain.NewValidationError(fmt.Sprintf("invalid home size: %s", homeSize))
	}
	if !moveType.IsValid() {
		return PriceBreakdown{}, domain.NewValidationError(fmt.Sprintf("invalid move type: %s", moveType))
	}
	if distanceKm < 0 {
		return PriceBreakdown{}, domain.NewValidationError("distance cannot be negative")
	}

	basePrice := homeBasePrices[homeSize][moveType]

	vehicleCharge, err := vehicleShiftingCharge(vehicle)
	if err != nil {
		return PriceBreakdown{}, err
	}

	paintingCharge := paintingServicesCharge(painting)
	distanceCharge := homeMoveDistanceCharge(moveType, distanceKm)

	total := roundPaise(basePrice + vehicleCharge + paintingCharge + distanceCharge)
	return PriceBreakdown{
		BasePrice:      basePrice,
		VehicleCharge:  vehicleCharge,
		PaintingCharge: paintingCharge,
		DistanceCharge: distanceCharge,
		TotalAmount:    total,
	}, nil
}

// vehicleShiftingCharge returns the add-on charge for shifted vehicles.
func vehicleShiftingCharge(vehicle VehicleSelection) (float64, error) {
	if !vehicle.Enabled {
		return 0, nil
	}
	charge, ok := vehicleCharges[vehicle.VehicleType]
	if !ok {
		return 0, domain.NewValidationError(fmt.Sprintf("invalid vehicle type: %s", vehicle.VehicleType))
	}
	return charge, nil
}

// paintingServicesCharge sums the charges for the selected painting flags.
func paintingServicesCharge(painting PaintingSelection) float64 {
	var charge float64
	if painting.Interior {
		charge += paintingInteriorCharge
	}
	if painting.Exterior {
		charge += paintingExteriorCharge
	}
	if painting.Wood {
		charge += paintingWoodCharge
	}
	return charge
}

// homeMoveDistanceCharge applies the intercity per-km surcharge beyond the
// free radius. Within-city moves never accrue a distance charge.
func homeMoveDistanceCharge(moveType MoveType, distanceKm float64) float64 {
	if moveType != MoveIntercity || distanceKm <= intercityFreeKm {
		return 0
	}
	return roundPaise((distanceKm - intercityFreeKm) * intercityRatePerKm)
}

// roundPaise rounds an amount to the currency's smallest unit (2 decimals).
func roundPaise(v float64) float64 {
	return math.Round(v*100) / 100
}
