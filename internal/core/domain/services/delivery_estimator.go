package services

import (
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// DeliveryEstimator is a domain service that computes the estimated delivery
// time for a shipment. The estimate has two parts:
//
//   - A distance leg derived from how far the destination is from the brand's
//     origin: 24h for a matching city name, 48h within the same country, 72h
//     otherwise. Localities compare by name, not geography, so the city match
//     does not look at the country.
//   - A carrier leg derived from the chosen shipping method's promised window:
//     the midpoint of [minDays, maxDays], rounded to the nearest whole day,
//     in 24h increments. Orders without a chosen method get no carrier leg.
//
// The estimator is pure: same inputs always produce the same estimate.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Estimate returns the estimated delivery time for a shipment departing from
// origin towards destination at the given start time. method may be nil when
// the buyer did not pick a shipping option for the brand.
func (e DeliveryEstimator) Estimate(
	origin kernel.Locality,
	destination kernel.Locality,
	start time.Time,
	method *shipping.Method,
) (time.Time, error) {
	if err := origin.Validate(); err != nil {
		return time.Time{}, err
	}
	if err := destination.Validate(); err != nil {
		return time.Time{}, err
	}

	transit := e.distanceLeg(origin, destination)

	if method != nil {
		if err := method.Validate(); err != nil {
			return time.Time{}, err
		}
		transit += e.carrierLeg(method)
	}

	return start.Add(transit), nil
}

func (e DeliveryEstimator) distanceLeg(origin, destination kernel.Locality) time.Duration {
	switch {
	case origin.SameCity(destination):
		return 24 * time.Hour
	case origin.SameCountry(destination):
		return 48 * time.Hour
	default:
		return 72 * time.Hour
	}
}

func (e DeliveryEstimator) carrierLeg(method *shipping.Method) time.Duration {
	midDays := math.Round(float64(method.MinDays()+method.MaxDays()) / 2)
	return time.Duration(midDays) * 24 * time.Hour
}
