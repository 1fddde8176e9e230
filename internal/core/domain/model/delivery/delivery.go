package delivery

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDeliveryUnitIsNotConstructed is returned when a DeliveryUnit was not
	// created through NewDeliveryUnit or RestoreDeliveryUnit.
	ErrDeliveryUnitIsNotConstructed = errors.New(
		"DeliveryUnit must be created via NewDeliveryUnit or RestoreDeliveryUnit")

	// ErrDeliveryUnitHasNoItems is returned when constructing a unit without
	// any assigned items. A delivery unit only exists because a brand has
	// items to ship.
	ErrDeliveryUnitHasNoItems = errors.New("delivery unit must have at least one assigned item")
)

// DeliveryUnit is the independently-tracked shipment of one brand's items
// within a single order. Each unit owns its shipping fee, estimated arrival,
// tracking number, and lifecycle status; units of the same order progress
// independently of each other.
//
// Units are created exclusively when the order is split, are mutated only
// through the lifecycle transition methods, and are never deleted - a unit
// that will not ship is cancelled.
//
// Concurrency: the version field is an optimistic-concurrency stamp. Both the
// progression scheduler and manual operator transitions read a unit, apply a
// transition, and write it back guarded by the version they read; a
// concurrent writer makes the second write fail instead of silently
// overwriting the first.
type DeliveryUnit struct {
	// id is the unique identifier for the delivery unit
	id kernel.UUID

	// orderID references the order this unit was split from
	orderID kernel.UUID

	// brandID references the vendor shipping this unit
	brandID kernel.UUID

	// shippingMethodID references the chosen carrier (nil if none chosen)
	shippingMethodID *kernel.UUID

	// shippingFee is the carrier price in minor units (zero if no method chosen)
	shippingFee int64

	// itemIDs are the order items assigned to this unit
	itemIDs []kernel.UUID

	// description is free text shown to the customer
	description string

	// trackingNumber is the carrier tracking reference (blank until shipped)
	trackingNumber string

	// status is the current lifecycle state
	status Status

	// createdAt is when the unit was created (order split time)
	createdAt time.Time

	// updatedAt is bumped on every transition; the scheduler measures dwell
	// time from it
	updatedAt time.Time

	// shippedAt is recorded by MarkShipped (nil before)
	shippedAt *time.Time

	// deliveredAt is recorded by MarkDelivered (nil before)
	deliveredAt *time.Time

	// estimatedDeliveryAt is the computed arrival estimate (nil if unknown)
	estimatedDeliveryAt *time.Time

	// version is the optimistic-concurrency stamp, bumped by the repository
	version int

	// policy selects permissive or strict transition checking
	policy TransitionPolicy

	// isConstructed ensures the unit was created via a factory function
	isConstructed bool
}

// NewDeliveryUnit creates a delivery unit in Pending status at order-split
// time. The item list must not be empty, the fee must not be negative, and
// all identifiers must be valid.
func NewDeliveryUnit(
	id kernel.UUID,
	orderID kernel.UUID,
	brandID kernel.UUID,
	shippingMethodID *kernel.UUID,
	shippingFee int64,
	itemIDs []kernel.UUID,
	description string,
	estimatedDeliveryAt *time.Time,
	now time.Time,
	policy TransitionPolicy,
) (*DeliveryUnit, error) {
	if len(itemIDs) == 0 {
		return nil, ErrDeliveryUnitHasNoItems
	}

	u := &DeliveryUnit{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		description:   description,
		isConstructed: true,
	}

	if estimatedDeliveryAt != nil {
		eta := *estimatedDeliveryAt
		u.estimatedDeliveryAt = &eta
	}

	if err := errors.Join(
		u.setID(id),
		u.setOrderID(orderID),
		u.setBrandID(brandID),
		u.setShippingMethodID(shippingMethodID),
		u.setShippingFee(shippingFee),
		u.setItemIDs(itemIDs),
		u.setPolicy(policy),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreDeliveryUnit reconstructs a unit from persistence, including its
// recorded timestamps, tracking number, and optimistic-concurrency version.
func RestoreDeliveryUnit(
	id kernel.UUID,
	orderID kernel.UUID,
	brandID kernel.UUID,
	shippingMethodID *kernel.UUID,
	shippingFee int64,
	itemIDs []kernel.UUID,
	description string,
	trackingNumber string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	estimatedDeliveryAt *time.Time,
	version int,
	policy TransitionPolicy,
) (*DeliveryUnit, error) {
	u, err := NewDeliveryUnit(
		id, orderID, brandID, shippingMethodID, shippingFee, itemIDs,
		description, estimatedDeliveryAt, createdAt, policy)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	u.status = status
	u.trackingNumber = trackingNumber
	u.updatedAt = updatedAt
	u.shippedAt = shippedAt
	u.deliveredAt = deliveredAt
	u.version = version
	return u, nil
}

// Validate ensures the unit was created through a factory function.
func (u *DeliveryUnit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrDeliveryUnitIsNotConstructed
	}
	return nil
}

// IsEqual compares two delivery units by their unique identifiers.
func (u *DeliveryUnit) IsEqual(other *DeliveryUnit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *DeliveryUnit) ID() kernel.UUID {
	return u.id
}

// OrderID returns the identifier of the order this unit was split from.
func (u *DeliveryUnit) OrderID() kernel.UUID {
	return u.orderID
}

// BrandID returns the identifier of the vendor shipping this unit.
func (u *DeliveryUnit) BrandID() kernel.UUID {
	return u.brandID
}

// ShippingMethodID returns the chosen carrier reference, or nil if none was chosen.
func (u *DeliveryUnit) ShippingMethodID() *kernel.UUID {
	return u.shippingMethodID
}

// ShippingFee returns the carrier price in minor units.
func (u *DeliveryUnit) ShippingFee() int64 {
	return u.shippingFee
}

// ItemIDs returns the identifiers of the order items assigned to this unit.
// The returned slice must be treated as read-only.
func (u *DeliveryUnit) ItemIDs() []kernel.UUID {
	return u.itemIDs
}

// Description returns the customer-facing free-text description.
func (u *DeliveryUnit) Description() string {
	return u.description
}

// TrackingNumber returns the carrier tracking reference, blank until shipped.
func (u *DeliveryUnit) TrackingNumber() string {
	return u.trackingNumber
}

// Status returns the unit's current lifecycle status.
func (u *DeliveryUnit) Status() Status {
	return u.status
}

// CreatedAt returns when the unit was created.
func (u *DeliveryUnit) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the unit last changed status.
func (u *DeliveryUnit) UpdatedAt() time.Time {
	return u.updatedAt
}

// ShippedAt returns when the unit was marked shipped, or nil.
func (u *DeliveryUnit) ShippedAt() *time.Time {
	return u.shippedAt
}

// DeliveredAt returns when the unit was marked delivered, or nil.
func (u *DeliveryUnit) DeliveredAt() *time.Time {
	return u.deliveredAt
}

// EstimatedDeliveryAt returns the computed arrival estimate, or nil.
func (u *DeliveryUnit) EstimatedDeliveryAt() *time.Time {
	return u.estimatedDeliveryAt
}

// Version returns the optimistic-concurrency stamp last read from storage.
func (u *DeliveryUnit) Version() int {
	return u.version
}

// Policy returns the transition policy the unit enforces.
func (u *DeliveryUnit) Policy() TransitionPolicy {
	return u.policy
}

// MarkPreparing moves the unit to Preparing.
func (u *DeliveryUnit) MarkPreparing(now time.Time) error {
	return u.transition(Preparing, now)
}

// MarkShipped moves the unit to Shipped, recording the ship time and the
// carrier tracking number. A blank tracking number is rejected and leaves
// the unit unchanged.
func (u *DeliveryUnit) MarkShipped(shippedAt time.Time, trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	if err := u.transition(Shipped, shippedAt); err != nil {
		return err
	}

	shipped := shippedAt
	u.shippedAt = &shipped
	u.trackingNumber = trackingNumber
	return nil
}

// MarkInTransit moves the unit to InTransit.
func (u *DeliveryUnit) MarkInTransit(now time.Time) error {
	return u.transition(InTransit, now)
}

// MarkOutForDelivery moves the unit to OutForDelivery.
func (u *DeliveryUnit) MarkOutForDelivery(now time.Time) error {
	return u.transition(OutForDelivery, now)
}

// MarkDelivered moves the unit to Delivered and records the delivery time.
func (u *DeliveryUnit) MarkDelivered(now time.Time) error {
	if err := u.transition(Delivered, now); err != nil {
		return err
	}

	delivered := now
	u.deliveredAt = &delivered
	return nil
}

// MarkCancelled moves the unit to Cancelled.
func (u *DeliveryUnit) MarkCancelled(now time.Time) error {
	return u.transition(Cancelled, now)
}

// transition applies the status change and bumps the last-updated timestamp.
// Under the strict policy the change must respect the lifecycle ordering;
// under the permissive policy it is applied unconditionally.
func (u *DeliveryUnit) transition(target Status, now time.Time) error {
	if u.policy == Strict && !u.status.CanTransitionTo(target) {
		return errs.NewInvalidStateTransitionError(u.status.String(), target.String())
	}

	u.status = target
	u.updatedAt = now
	return nil
}

func (u *DeliveryUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *DeliveryUnit) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	u.orderID = orderID
	return nil
}

func (u *DeliveryUnit) setBrandID(brandID kernel.UUID) error {
	if err := brandID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("brandId", err)
	}
	u.brandID = brandID
	return nil
}

func (u *DeliveryUnit) setShippingMethodID(methodID *kernel.UUID) error {
	if methodID == nil {
		return nil
	}
	if err := methodID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shippingMethodId", err)
	}
	u.shippingMethodID = methodID
	return nil
}

func (u *DeliveryUnit) setShippingFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingFee",
			errs.NewValueIsOutOfRangeError("shippingFee", fee, 0, "unbounded"))
	}
	u.shippingFee = fee
	return nil
}

func (u *DeliveryUnit) setItemIDs(itemIDs []kernel.UUID) error {
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("itemId", err)
		}
	}
	u.itemIDs = itemIDs
	return nil
}

func (u *DeliveryUnit) setPolicy(policy TransitionPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	u.policy = policy
	return nil
}
