package delivery

import "time"

// TimelineStep is one milestone of the customer-facing tracking timeline.
// Steps are derived on demand from the unit's status and recorded
// timestamps; they are never stored.
type TimelineStep struct {
	Status      Status
	Label       string
	Description string
	CompletedAt *time.Time
	IsCompleted bool
	IsCurrent   bool
}

// happyPath is the ordered list of milestones a delivery moves through.
var happyPath = []Status{Pending, Preparing, Shipped, InTransit, OutForDelivery, Delivered}

var stepLabels = map[Status]string{
	Pending:        "Order placed",
	Preparing:      "Preparing",
	Shipped:        "Shipped",
	InTransit:      "In transit",
	OutForDelivery: "Out for delivery",
	Delivered:      "Delivered",
	Cancelled:      "Cancelled",
}

var stepDescriptions = map[Status]string{
	Pending:        "We received your order",
	Preparing:      "The vendor is preparing your parcel",
	Shipped:        "Your parcel left the vendor",
	InTransit:      "Your parcel is on its way",
	OutForDelivery: "The courier is delivering your parcel",
	Delivered:      "Your parcel was delivered",
	Cancelled:      "This delivery was cancelled",
}

// TimelineSteps derives the tracking timeline for a delivery unit.
//
// For units on the happy path it returns the six milestones with completion
// flags up to the current status. A cancelled unit collapses to two steps,
// order placed and cancelled, because the remaining milestones will never
// happen.
func TimelineSteps(u *DeliveryUnit) []TimelineStep {
	if u.Status() == Cancelled {
		createdAt := u.CreatedAt()
		updatedAt := u.UpdatedAt()
		return []TimelineStep{
			{
				Status:      Pending,
				Label:       stepLabels[Pending],
				Description: stepDescriptions[Pending],
				CompletedAt: &createdAt,
				IsCompleted: true,
			},
			{
				Status:      Cancelled,
				Label:       stepLabels[Cancelled],
				Description: stepDescriptions[Cancelled],
				CompletedAt: &updatedAt,
				IsCompleted: true,
				IsCurrent:   true,
			},
		}
	}

	current := stepIndex(u.Status())
	steps := make([]TimelineStep, 0, len(happyPath))
	for i, status := range happyPath {
		step := TimelineStep{
			Status:      status,
			Label:       stepLabels[status],
			Description: stepDescriptions[status],
			IsCompleted: i <= current,
			IsCurrent:   i == current,
		}
		if step.IsCompleted {
			step.CompletedAt = stepTimestamp(u, status)
		}
		steps = append(steps, step)
	}
	return steps
}

// stepIndex returns the position of a status on the happy path, or -1 for
// statuses that are not milestones.
func stepIndex(s Status) int {
	for i, status := range happyPath {
		if status == s {
			return i
		}
	}
	return -1
}

// stepTimestamp picks the recorded timestamp for a reached milestone.
// Only a few milestones have dedicated timestamps; the current step falls
// back to the unit's last update, earlier ones without a record stay nil.
func stepTimestamp(u *DeliveryUnit, s Status) *time.Time {
	switch s {
	case Pending:
		createdAt := u.CreatedAt()
		return &createdAt
	case Shipped:
		return u.ShippedAt()
	case Delivered:
		return u.DeliveredAt()
	default:
		if s == u.Status() {
			updatedAt := u.UpdatedAt()
			return &updatedAt
		}
		return nil
	}
}
