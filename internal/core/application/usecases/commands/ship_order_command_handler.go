package commands

import (
	"context"
	"time"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"
	"comptoirs/internal/core/domain/model/product"
)

// ShipOrderCommandHandler finalizes the one-time shipment of an order.
//
// Business rules:
//   - The order must exist and not be shipped yet
//   - Every line's product stock must cover the line quantity; any shortfall
//     fails the whole operation before a single counter is touched
//   - On success the shipment date is stamped and each line's product stock
//     decremented; order and products commit as a single unit of work
//
// A concurrent shipment of the same order cannot double-decrement stock: the
// second transaction's order update affects zero rows and rolls back.
type ShipOrderCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipment finalization.
func NewShipOrderCommandHandler(uowFactory OrderInventoryUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command and returns the updated order.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product)
	for _, line := range o.Lines() {
		if _, ok := products[line.ProductID()]; ok {
			continue
		}
		p, getErr := productRepo.Get(ctx, line.ProductID())
		if getErr != nil {
			return nil, getErr
		}
		products[line.ProductID()] = p
	}

	if err = o.Ship(time.Now(), products); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
