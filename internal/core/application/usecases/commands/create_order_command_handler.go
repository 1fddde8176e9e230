package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves catalog data, builds the order aggregate, splits it into per-brand
// delivery units, generates one invoice per unit and persists everything in a
// single transaction. A failure anywhere leaves no partial state behind.
type CreateOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	catalog    ports.CatalogReader
	methods    ports.ShippingMethodReader
	addresses  ports.AddressReader
	policy     delivery.TransitionPolicy

	splitter  services.BrandDeliverySplitter
	generator services.InvoiceGenerator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a FulfillmentUoWFactory for transactional persistence and read
// access to the catalog, shipping methods and addresses.
func NewCreateOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	catalog ports.CatalogReader,
	methods ports.ShippingMethodReader,
	addresses ports.AddressReader,
	policy delivery.TransitionPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		methods:    methods,
		addresses:  addresses,
		policy:     policy,
		splitter:   services.NewBrandDeliverySplitter(),
		generator:  services.NewInvoiceGenerator(),
	}
}

// Handle processes the order placement command.
// Any unresolvable product, brand, address or shipping method fails the whole
// placement before anything is written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	destination, err := h.addresses.GetLocality(ctx, cmd.ShippingAddressID())
	if err != nil {
		return err
	}

	items, productBrands, err := h.resolveItems(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	origins, err := h.resolveOrigins(ctx, productBrands)
	if err != nil {
		return err
	}

	choices, err := h.resolveChoices(ctx, cmd.DeliveryChoices())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.ShippingAddressID(), cmd.Currency(), items, now)
	if err != nil {
		return err
	}

	units, err := h.splitter.Split(newOrder, productBrands, origins, choices, destination, now, h.policy)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	invoiceRepo := uow.InvoiceRepository()
	for _, unit := range units {
		if err = deliveryRepo.Add(ctx, unit); err != nil {
			return err
		}

		inv, invErr := h.generator.Generate(newOrder, unit)
		if invErr != nil {
			return invErr
		}
		if err = invoiceRepo.Add(ctx, inv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// resolveItems builds the order items from the requested lines and collects
// the productID -> brandID mapping the splitter needs.
func (h *CreateOrderCommandHandler) resolveItems(
	ctx context.Context,
	lines []ItemLine,
) ([]*order.Item, map[kernel.UUID]kernel.UUID, error) {
	items := make([]*order.Item, 0, len(lines))
	productBrands := make(map[kernel.UUID]kernel.UUID, len(lines))

	for _, line := range lines {
		product, err := h.catalog.GetProduct(ctx, line.ProductID())
		if err != nil {
			return nil, nil, err
		}
		productBrands[product.ID()] = product.BrandID()

		item, err := order.NewItem(
			kernel.NewUUID(),
			line.ProductID(),
			line.VariantID(),
			line.ProductName(),
			line.Quantity(),
			line.UnitPrice(),
		)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	return items, productBrands, nil
}

func (h *CreateOrderCommandHandler) resolveOrigins(
	ctx context.Context,
	productBrands map[kernel.UUID]kernel.UUID,
) (map[kernel.UUID]kernel.Locality, error) {
	origins := make(map[kernel.UUID]kernel.Locality)
	for _, brandID := range productBrands {
		if _, seen := origins[brandID]; seen {
			continue
		}

		b, err := h.catalog.GetBrand(ctx, brandID)
		if err != nil {
			return nil, err
		}
		origins[brandID] = b.Origin()
	}

	return origins, nil
}

func (h *CreateOrderCommandHandler) resolveChoices(
	ctx context.Context,
	deliveryChoices map[kernel.UUID]kernel.UUID,
) (map[kernel.UUID]*shipping.Method, error) {
	choices := make(map[kernel.UUID]*shipping.Method, len(deliveryChoices))
	for brandID, methodID := range deliveryChoices {
		method, err := h.methods.Get(ctx, methodID)
		if err != nil {
			return nil, err
		}
		choices[brandID] = method
	}

	return choices, nil
}
