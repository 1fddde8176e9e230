package shipping

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMethodIsNotConstructed indicates that the Method was not created
// through the NewMethod constructor function.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

// Method represents a shipping option offered by a carrier: a flat price
// and a promised delivery window expressed in whole days.
//
// The window is inclusive on both ends and the carrier adjustment applied
// during delivery estimation is derived from its midpoint. Methods are
// catalog data: they are read by the fulfillment flow but never modified
// by it.
//
// Key business rules:
//   - Must be constructed through NewMethod
//   - The window must satisfy 0 < minDays <= maxDays
//   - Price is a flat fee in minor currency units and must not be negative
//   - maxWeight, when present, caps the shipment weight in grams
type Method struct {
	// id uniquely identifies the shipping method
	id kernel.UUID

	// name is a human-readable identifier, e.g. "DHL Express"
	name string

	// price is the flat shipping fee in minor currency units
	price int64

	// minDays is the lower bound of the promised delivery window
	minDays int

	// maxDays is the upper bound of the promised delivery window
	maxDays int

	// maxWeight caps the shipment weight in grams, nil means no cap
	maxWeight *int

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewMethod creates a validated shipping method.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable carrier/service name (must not be empty)
//   - price: Flat fee in minor units (must not be negative)
//   - minDays, maxDays: Promised delivery window (0 < minDays <= maxDays)
//   - maxWeight: Optional weight cap in grams (must be positive when set)
func NewMethod(id kernel.UUID, name string, price int64, minDays, maxDays int, maxWeight *int) (*Method, error) {
	method := &Method{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		method.setID(id),
		method.setName(name),
		method.setPrice(price),
		method.setWindow(minDays, maxDays),
		method.setMaxWeight(maxWeight),
	); err != nil {
		return nil, err
	}

	return method, nil
}

// IsEqual compares two methods by identity.
func (m *Method) IsEqual(other *Method) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the unique identifier of the shipping method.
func (m *Method) ID() kernel.UUID {
	return m.id
}

// Name returns the human-readable name of the shipping method.
func (m *Method) Name() string {
	return m.name
}

// Price returns the flat shipping fee in minor currency units.
func (m *Method) Price() int64 {
	return m.price
}

// MinDays returns the lower bound of the promised delivery window.
func (m *Method) MinDays() int {
	return m.minDays
}

// MaxDays returns the upper bound of the promised delivery window.
func (m *Method) MaxDays() int {
	return m.maxDays
}

// MaxWeight returns the weight cap in grams, or nil when the method
// carries shipments of any weight.
func (m *Method) MaxWeight() *int {
	return m.maxWeight
}

// CanCarry reports whether a shipment of the given weight fits this
// method's weight cap. A method without a cap carries any positive weight.
func (m *Method) CanCarry(weight int) (bool, error) {
	if weight <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%d is not greater than 0", weight),
		)
	}

	return m.maxWeight == nil || weight <= *m.maxWeight, nil
}

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	return nil
}

func (m *Method) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	m.name = name
	return nil
}

func (m *Method) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", price),
		)
	}

	m.price = price
	return nil
}

func (m *Method) setWindow(minDays, maxDays int) error {
	if minDays <= 0 {
		return errs.NewValueIsOutOfRangeError("minDays", minDays, 1, maxDays)
	}
	if maxDays < minDays {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxDays",
			fmt.Errorf("%d is less than minDays %d", maxDays, minDays),
		)
	}

	m.minDays = minDays
	m.maxDays = maxDays
	return nil
}

func (m *Method) setMaxWeight(maxWeight *int) error {
	if maxWeight != nil && *maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight",
			fmt.Errorf("%d is not greater than 0", *maxWeight),
		)
	}

	m.maxWeight = maxWeight
	return nil
}

// Validate checks that the method was created through NewMethod.
func (m *Method) Validate() error {
	if m == nil {
		return ErrMethodIsNotConstructed
	}
	return m.guard.Validate(ErrMethodIsNotConstructed)
}
