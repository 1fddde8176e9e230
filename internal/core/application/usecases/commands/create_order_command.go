package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemLineIsNotConstructed = errors.New(
		"ItemLine must be created via NewItemLine constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order must contain at least one item line")
)

// ItemLine is one requested line of a new order: which product, how many,
// and the unit price quoted at checkout.
type ItemLine struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	variantID   *kernel.UUID
	productName string
	quantity    int
	unitPrice   int64

	guard guard.ConstructorGuard
}

// NewItemLine creates a validated order line.
// Quantity must be positive and unit price must not be negative.
func NewItemLine(
	productID kernel.UUID,
	variantID *kernel.UUID,
	productName string,
	quantity int,
	unitPrice int64,
) (ItemLine, error) {
	line := ItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setVariantID(variantID),
		line.setProductName(productName),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return ItemLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// ProductID returns the purchased product's identifier.
func (l ItemLine) ProductID() kernel.UUID {
	return l.productID
}

// VariantID returns the product variant identifier, or nil if none.
func (l ItemLine) VariantID() *kernel.UUID {
	return l.variantID
}

// ProductName returns the product name quoted at checkout.
func (l ItemLine) ProductName() string {
	return l.productName
}

// Quantity returns the number of units requested.
func (l ItemLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price in minor units.
func (l ItemLine) UnitPrice() int64 {
	return l.unitPrice
}

func (l *ItemLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	l.productID = productID
	return nil
}

func (l *ItemLine) setVariantID(variantID *kernel.UUID) error {
	if variantID == nil {
		return nil
	}
	if err := variantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("variantId", err)
	}

	l.variantID = variantID
	return nil
}

func (l *ItemLine) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	l.productName = productName
	return nil
}

func (l *ItemLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	l.quantity = quantity
	return nil
}

func (l *ItemLine) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, "unbounded")
	}

	l.unitPrice = unitPrice
	return nil
}

// CreateOrderCommand represents a request to place a new marketplace order.
// Encapsulates the buyer, the destination address, the requested item lines
// and the shipping method chosen per brand.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	line, _ := NewItemLine(productID, nil, "Canvas Tote", 2, 1500)
//	cmd, err := NewCreateOrderCommand(orderID, userID, addressID, "EUR",
//	    []ItemLine{line}, map[kernel.UUID]kernel.UUID{brandID: methodID})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, methods, addresses, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	userID            kernel.UUID
	shippingAddressID kernel.UUID
	currency          string
	lines             []ItemLine
	deliveryChoices   map[kernel.UUID]kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// deliveryChoices maps brandID to the shipping method chosen for that brand;
// brands without an entry ship with no method (free, longest estimate).
// An empty currency falls back to the order default.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	shippingAddressID kernel.UUID,
	currency string,
	lines []ItemLine,
	deliveryChoices map[kernel.UUID]kernel.UUID,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUserID(userID),
		command.setShippingAddressID(shippingAddressID),
		command.setLines(lines),
		command.setDeliveryChoices(deliveryChoices),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the buyer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ShippingAddressID returns the destination address reference.
func (c CreateOrderCommand) ShippingAddressID() kernel.UUID {
	return c.shippingAddressID
}

// Currency returns the requested currency code, possibly empty.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// Lines returns the requested item lines.
func (c CreateOrderCommand) Lines() []ItemLine {
	return c.lines
}

// DeliveryChoices returns the brandID -> shipping method ID choices.
func (c CreateOrderCommand) DeliveryChoices() map[kernel.UUID]kernel.UUID {
	return c.deliveryChoices
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setShippingAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shippingAddressId", err)
	}

	c.shippingAddressID = addressID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeliveryChoices(choices map[kernel.UUID]kernel.UUID) error {
	for brandID, methodID := range choices {
		if err := brandID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("brandId", err)
		}
		if err := methodID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("shippingMethodId", err)
		}
	}

	c.deliveryChoices = choices
	return nil
}
