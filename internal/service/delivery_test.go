package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

func testZones() []models.DeliveryZone {
	return []models.DeliveryZone{
		{ID: 1, Name: "Zona 1 (Céntrica)", MaxDistanceKm: 5, Cost: 150},
		{ID: 2, Name: "Zona 2 (Periferia)", MaxDistanceKm: 10, Cost: 300},
		{ID: 3, Name: "Zona 3 (Lejana)", MaxDistanceKm: 20, Cost: 500},
	}
}

func TestResolveDeliveryCost(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
		wantErr  bool
	}{
		{"inside first zone", 3, 150, false},
		{"zone boundary applies", 5, 150, false},
		{"second zone", 7, 300, false},
		{"last zone ceiling", 20, 500, false},
		{"beyond all zones", 25, 0, true},
		{"zero distance", 0, 0, true},
		{"negative distance", -4, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := ResolveDeliveryCost(tt.distance, testZones())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfZone)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestResolveDeliveryCostUnsortedZones(t *testing.T) {
	zones := []models.DeliveryZone{
		{ID: 3, Name: "Lejana", MaxDistanceKm: 20, Cost: 500},
		{ID: 1, Name: "Céntrica", MaxDistanceKm: 5, Cost: 150},
		{ID: 2, Name: "Periferia", MaxDistanceKm: 10, Cost: 300},
	}

	cost, err := ResolveDeliveryCost(7, zones)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, cost)
}

func TestResolveDeliveryCostNoZones(t *testing.T) {
	_, err := ResolveDeliveryCost(1, nil)
	assert.ErrorIs(t, err, ErrOutOfZone)
}

func TestResolveDeliveryCostNonFinite(t *testing.T) {
	_, err := ResolveDeliveryCost(math.NaN(), testZones())
	assert.ErrorIs(t, err, ErrOutOfZone)

	_, err = ResolveDeliveryCost(math.Inf(1), testZones())
	assert.ErrorIs(t, err, ErrOutOfZone)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1350.00, Round2(1350.004))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 100.0, Round2(99.999))
}
