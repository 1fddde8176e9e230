package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// DefaultCurrency is applied when an order is created without an explicit currency.
const DefaultCurrency = "EUR"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when constructing an order with an empty item list.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the immutable record of a purchase: who bought, where it ships to,
// the line items, and the total owed. It is the aggregate root that the
// per-brand delivery units and invoices hang off.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, user and shipping address reference
//   - Must contain at least one item
//   - Total equals the sum of quantity x unit price over all items, fixed at
//     creation time and never recomputed afterwards
//   - Items must not be mutated after creation; only the coarse status changes
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated constructors.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the customer who placed the order
	userID kernel.UUID

	// shippingAddressID references the destination address (owned externally)
	shippingAddressID kernel.UUID

	// currency is the ISO 4217 code all amounts are denominated in
	currency string

	// total is the sum of item subtotals in minor units, fixed at creation
	total int64

	// placedAt is the order placement timestamp
	placedAt time.Time

	// status is the coarse lifecycle status, derived from the delivery units
	status Status

	// items is the ordered sequence of purchased line items
	items []*Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// The total is computed once here as the sum of item subtotals; callers must
// not mutate the items afterwards. An empty currency falls back to
// DefaultCurrency. The initial status is Pending.
//
// Returns a validation error if the identifier, user, address or any item
// is invalid, or if the item list is empty.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddressID kernel.UUID,
	currency string,
	items []*Item,
	placedAt time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	o := &Order{
		status:        Pending,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setShippingAddressID(shippingAddressID),
		o.setCurrency(currency),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		o.total += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recomputing the
// total. The stored total is trusted; it was fixed at creation time.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddressID kernel.UUID,
	currency string,
	total int64,
	placedAt time.Time,
	status Status,
	items []*Item,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		placedAt:      placedAt,
		total:         total,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setShippingAddressID(shippingAddressID),
		o.setCurrency(currency),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ShippingAddressID returns the destination address reference.
func (o *Order) ShippingAddressID() kernel.UUID {
	return o.shippingAddressID
}

// Currency returns the order's ISO 4217 currency code.
func (o *Order) Currency() string {
	return o.currency
}

// Total returns the order total in minor units.
// It equals the sum of item subtotals at creation time.
func (o *Order) Total() int64 {
	return o.total
}

// PlacedAt returns the order placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current coarse status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
// The returned slice must be treated as read-only.
func (o *Order) Items() []*Item {
	return o.items
}

// ItemsForDelivery returns the items assigned to the given delivery unit.
func (o *Order) ItemsForDelivery(deliveryID kernel.UUID) []*Item {
	assigned := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if id := item.DeliveryID(); id != nil && id.IsEqual(deliveryID) {
			assigned = append(assigned, item)
		}
	}
	return assigned
}

// ChangeStatus replaces the coarse status with a derived one.
//
// Order defines no transition rules of its own: the coarse status always
// follows the delivery units (see DeriveOrderStatus in the services package),
// so the only validation here is that the new status is a known value.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setShippingAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shippingAddressId", err)
	}
	o.shippingAddressID = addressID
	return nil
}

func (o *Order) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidError("currency")
	}
	o.currency = currency
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
