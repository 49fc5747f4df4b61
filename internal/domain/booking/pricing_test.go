package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bubbleflash/service-movers/internal/domain"
)

func TestQuoteBasePrices(t *testing.T) {
	q := NewHomeMoveQuoter()

	tests := []struct {
		homeSize HomeSize
		moveType MoveType
		want     float64
	}{
		{Home1BHK, MoveWithinCity, 3999},
		{Home1BHK, MoveIntercity, 8999},
		{Home2BHK, MoveWithinCity, 5999},
		{Home2BHK, MoveIntercity, 12999},
		{Home3BHK, MoveWithinCity, 8999},
		{Home3BHK, MoveIntercity, 17999},
		{Home4BHK, MoveWithinCity, 11999},
		{Home4BHK, MoveIntercity, 22999},
		{HomeVilla, MoveWithinCity, 15999},
		{HomeVilla, MoveIntercity, 29999},
	}
	for _, tt := range tests {
		t.Run(string(tt.homeSize)+"/"+string(tt.moveType), func(t *testing.T) {
			got, err := q.Quote(tt.homeSize, tt.moveType, 0, VehicleSelection{}, PaintingSelection{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.BasePrice)
			assert.Equal(t, tt.want, got.TotalAmount)
		})
	}
}

func TestQuoteVehicleCharges(t *testing.T) {
	q := NewHomeMoveQuoter()

	tests := []struct {
		vehicleType VehicleType
		want        float64
	}{
		{VehicleBike, 1500},
		{VehicleCar, 3000},
		{VehicleBoth, 4000},
	}
	for _, tt := range tests {
		t.Run(string(tt.vehicleType), func(t *testing.T) {
			got, err := q.Quote(Home1BHK, MoveWithinCity, 0, VehicleSelection{Enabled: true, VehicleType: tt.vehicleType}, PaintingSelection{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.VehicleCharge)
		})
	}
}

func TestQuoteVehicleDisabledIgnoresType(t *testing.T) {
	q := NewHomeMoveQuoter()

	got, err := q.Quote(Home1BHK, MoveWithinCity, 0, VehicleSelection{Enabled: false, VehicleType: "tractor"}, PaintingSelection{})
	require.NoError(t, err)
	assert.Zero(t, got.VehicleCharge)
}

func TestQuotePaintingChargesAreAdditive(t *testing.T) {
	q := NewHomeMoveQuoter()

	tests := []struct {
		name      string
		selection PaintingSelection
		want      float64
	}{
		{"none", PaintingSelection{}, 0},
		{"interior", PaintingSelection{Interior: true}, 5000},
		{"exterior", PaintingSelection{Exterior: true}, 7000},
		{"wood", PaintingSelection{Wood: true}, 3000},
		{"interior+exterior", PaintingSelection{Interior: true, Exterior: true}, 12000},
		{"all", PaintingSelection{Interior: true, Exterior: true, Wood: true}, 15000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Quote(Home2BHK, MoveWithinCity, 0, VehicleSelection{}, tt.selection)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.PaintingCharge)
		})
	}
}

func TestQuoteDistanceCharge(t *testing.T) {
	q := NewHomeMoveQuoter()

	tests := []struct {
		name       string
		moveType   MoveType
		distanceKm float64
		want       float64
	}{
		{"within city ignores distance", MoveWithinCity, 500, 0},
		{"intercity below threshold", MoveIntercity, 80, 0},
		{"intercity at threshold", MoveIntercity, 100, 0},
		{"intercity just past threshold", MoveIntercity, 100.01, 0.15},
		{"intercity 150 km", MoveIntercity, 150, 750},
		{"intercity 250 km", MoveIntercity, 250, 2250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Quote(Home1BHK, tt.moveType, tt.distanceKm, VehicleSelection{}, PaintingSelection{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DistanceCharge)
		})
	}
}

func TestQuoteTotalIsSumOfComponents(t *testing.T) {
	q := NewHomeMoveQuoter()

	got, err := q.Quote(
		Home3BHK,
		MoveIntercity,
		150,
		VehicleSelection{Enabled: true, VehicleType: VehicleBoth},
		PaintingSelection{Interior: true, Wood: true},
	)
	require.NoError(t, err)

	assert.Equal(t, 17999.0, got.BasePrice)
	assert.Equal(t, 4000.0, got.VehicleCharge)
	assert.Equal(t, 8000.0, got.PaintingCharge)
	assert.Equal(t, 750.0, got.DistanceCharge)
	assert.Equal(t, got.BasePrice+got.VehicleCharge+got.PaintingCharge+got.DistanceCharge, got.TotalAmount)
}

func TestQuoteIsDeterministic(t *testing.T) {
	q := NewHomeMoveQuoter()

	first, err := q.Quote(Home2BHK, MoveIntercity, 123.45, VehicleSelection{Enabled: true, VehicleType: VehicleCar}, PaintingSelection{Exterior: true})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := q.Quote(Home2BHK, MoveIntercity, 123.45, VehicleSelection{Enabled: true, VehicleType: VehicleCar}, PaintingSelection{Exterior: true})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuoteRejectsInvalidInput(t *testing.T) {
	q := NewHomeMoveQuoter()

	tests := []struct {
		name     string
		homeSize HomeSize
		moveType MoveType
		distance float64
		vehicle  VehicleSelection
	}{
		{"unknown home size", "5bhk", MoveWithinCity, 0, VehicleSelection{}},
		{"empty home size", "", MoveWithinCity, 0, VehicleSelection{}},
		{"unknown move type", Home1BHK, "interstate", 0, VehicleSelection{}},
		{"negative distance", Home1BHK, MoveIntercity, -1, VehicleSelection{}},
		{"unknown vehicle type", Home1BHK, MoveWithinCity, 0, VehicleSelection{Enabled: true, VehicleType: "truck"}},
		{"empty vehicle type when enabled", Home1BHK, MoveWithinCity, 0, VehicleSelection{Enabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.Quote(tt.homeSize, tt.moveType, tt.distance, tt.vehicle, PaintingSelection{})
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}
