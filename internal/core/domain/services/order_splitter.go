package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
)

// BrandDeliverySplitter is a domain service that splits a freshly placed
// order into per-brand delivery units.
//
// Key responsibilities:
//   - Grouping order items by the brand that sells their product
//   - Creating exactly one delivery unit per distinct brand
//   - Pricing each unit from the buyer's chosen shipping method
//   - Estimating each unit's delivery time from the brand's origin
//   - Assigning every item to exactly one unit
//
// Business rules:
//   - Splitting is all-or-nothing: an unresolvable product leaves the order
//     untouched
//   - An order whose items already belong to delivery units cannot be split
//     again
//   - Brands without a chosen shipping method ship free of charge and get no
//     carrier leg in their estimate
//   - Units preserve the order in which their brands first appear among the
//     order's items
type BrandDeliverySplitter struct {
	estimator DeliveryEstimator
}

// NewBrandDeliverySplitter creates a new BrandDeliverySplitter instance.
func NewBrandDeliverySplitter() BrandDeliverySplitter {
	return BrandDeliverySplitter{
		estimator: NewDeliveryEstimator(),
	}
}

// Split groups the order's items by brand and creates one pending delivery
// unit per brand, assigning each item to its unit.
//
// Parameters:
//   - ord: The order to split (must be valid and not yet split)
//   - productBrands: productID -> brandID mapping resolved from the catalog
//   - origins: brandID -> shipping origin locality
//   - choices: brandID -> chosen shipping method (nil or missing means none)
//   - destination: the buyer's shipping address locality
//   - now: creation timestamp for the units
//   - policy: transition policy the units will enforce
//
// Returns the created units in brand-first-appearance order. Fails with an
// ObjectNotFound error when any item's product has no brand mapping or a
// brand has no origin, without creating any unit or touching any item.
func (s BrandDeliverySplitter) Split(
	ord *order.Order,
	productBrands map[kernel.UUID]kernel.UUID,
	origins map[kernel.UUID]kernel.Locality,
	choices map[kernel.UUID]*shipping.Method,
	destination kernel.Locality,
	now time.Time,
	policy delivery.TransitionPolicy,
) ([]*delivery.DeliveryUnit, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	groups, brandOrder, err := s.groupByBrand(ord, productBrands)
	if err != nil {
		return nil, err
	}

	units := make([]*delivery.DeliveryUnit, 0, len(brandOrder))
	for _, brandID := range brandOrder {
		unit, buildErr := s.buildUnit(ord, brandID, groups[brandID], origins, choices, destination, now, policy)
		if buildErr != nil {
			return nil, buildErr
		}
		units = append(units, unit)
	}

	// All units constructed; item assignment can no longer fail because
	// groupByBrand rejected already-assigned items up front.
	for i, brandID := range brandOrder {
		for _, item := range groups[brandID] {
			if assignErr := item.AssignToDelivery(units[i].ID()); assignErr != nil {
				return nil, assignErr
			}
		}
	}

	return units, nil
}

// groupByBrand buckets the order's items by brand, preserving the order in
// which brands first appear. Every item must resolve to a brand and must not
// already belong to a delivery unit.
func (s BrandDeliverySplitter) groupByBrand(
	ord *order.Order,
	productBrands map[kernel.UUID]kernel.UUID,
) (map[kernel.UUID][]*order.Item, []kernel.UUID, error) {
	groups := make(map[kernel.UUID][]*order.Item)
	brandOrder := make([]kernel.UUID, 0)

	for _, item := range ord.Items() {
		if item.DeliveryID() != nil {
			return nil, nil, order.ErrItemAlreadyAssigned
		}

		brandID, ok := productBrands[item.ProductID()]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("brand for product", item.ProductID().String())
		}

		if _, seen := groups[brandID]; !seen {
			brandOrder = append(brandOrder, brandID)
		}
		groups[brandID] = append(groups[brandID], item)
	}

	return groups, brandOrder, nil
}

func (s BrandDeliverySplitter) buildUnit(
	ord *order.Order,
	brandID kernel.UUID,
	items []*order.Item,
	origins map[kernel.UUID]kernel.Locality,
	choices map[kernel.UUID]*shipping.Method,
	destination kernel.Locality,
	now time.Time,
	policy delivery.TransitionPolicy,
) (*delivery.DeliveryUnit, error) {
	origin, ok := origins[brandID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("origin for brand", brandID.String())
	}

	method := choices[brandID]

	var (
		fee      int64
		methodID *kernel.UUID
	)
	if method != nil {
		if err := method.Validate(); err != nil {
			return nil, err
		}
		fee = method.Price()
		id := method.ID()
		methodID = &id
	}

	eta, err := s.estimator.Estimate(origin, destination, now, method)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(items))
	quantity := 0
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID())
		quantity += item.Quantity()
	}

	description := fmt.Sprintf("%d item(s) shipping from %s", quantity, origin)

	return delivery.NewDeliveryUnit(
		kernel.NewUUID(),
		ord.ID(),
		brandID,
		methodID,
		fee,
		itemIDs,
		description,
		&eta,
		now,
		policy,
	)
}
