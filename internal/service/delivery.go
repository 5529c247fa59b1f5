package service

import (
	"errors"
	"math"
	"sort"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

// ErrOutOfZone reports a distance that no configured zone covers
var ErrOutOfZone = errors.New("Fuera de la zona de entrega.")

// ResolveDeliveryCost returns the flat fee of the cheapest zone covering
// the distance: zones are ordered ascending by their ceiling and the
// first one whose ceiling is >= distance applies. A non-positive or
// non-finite distance, or one above every ceiling, is out of zone.
func ResolveDeliveryCost(distanceKm float64, zones []models.DeliveryZone) (float64, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm <= 0 {
		return 0, ErrOutOfZone
	}

	sorted := make([]models.DeliveryZone, len(zones))
	copy(sorted, zones)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MaxDistanceKm < sorted[j].MaxDistanceKm
	})

	for _, zone := range sorted {
		if distanceKm <= zone.MaxDistanceKm {
			return zone.Cost, nil
		}
	}
	return 0, ErrOutOfZone
}

// Round2 rounds a monetary amount to 2 decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
