package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"fulfillment/internal/pkg/guard"
)

// ErrLocalityIsNotConstructed is returned when attempting to use an improperly initialized Locality.
// Localities must be created using the NewLocality constructor to ensure validity.
var ErrLocalityIsNotConstructed = errs.NewValueIsRequiredError(
	"locality must be created via NewLocality constructor")

// Locality represents the place a shipment departs from or arrives at,
// reduced to the two fields the delivery estimate depends on: city and country.
// It is an immutable value object; comparisons are case-insensitive exact
// string matches, not geographic distance.
//
// The zero value of Locality is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	origin, err := kernel.NewLocality("Brussels", "BE")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(origin) // Output: Brussels, BE
type Locality struct { //nolint:recvcheck //using for validation
	city    string
	country string
	guard   guard.ConstructorGuard
}

// NewLocality creates a new Locality from a city and a country.
// Both fields are required; surrounding whitespace is trimmed.
// Returns an error if either field is blank.
func NewLocality(city string, country string) (Locality, error) {
	loc := Locality{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setCity(city), loc.setCountry(country)); err != nil {
		return Locality{}, err
	}

	return loc, nil
}

// City returns the locality's city.
func (l Locality) City() string {
	return l.city
}

// Country returns the locality's country.
func (l Locality) Country() string {
	return l.country
}

// SameCity reports whether both localities name the same city,
// compared case-insensitively.
func (l Locality) SameCity(other Locality) bool {
	return strings.EqualFold(l.city, other.city)
}

// SameCountry reports whether both localities name the same country,
// compared case-insensitively.
func (l Locality) SameCountry(other Locality) bool {
	return strings.EqualFold(l.country, other.country)
}

// String returns a human-readable "city, country" representation.
func (l Locality) String() string {
	return fmt.Sprintf("%s, %s", l.city, l.country)
}

// Validate ensures the Locality was created through its constructor.
// Returns ErrLocalityIsNotConstructed for zero-value instances.
func (l Locality) Validate() error {
	return l.guard.Validate(ErrLocalityIsNotConstructed)
}

func (l *Locality) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Locality) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	l.country = country
	return nil
}
