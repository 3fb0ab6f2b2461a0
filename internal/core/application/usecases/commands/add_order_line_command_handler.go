package commands

import (
	"context"

	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler appends a line to an open order and bumps the
// product's cumulative on-order counter.
//
// Business rules:
//   - The order and the product must exist
//   - The order must not be shipped yet
//   - The product's on-order counter grows by the line quantity
//   - No stock sufficiency check happens here; availability is enforced only
//     at shipment time
type AddOrderLineCommandHandler struct {
	uowFactory OrderInventoryUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line addition operations.
func NewAddOrderLineCommandHandler(uowFactory OrderInventoryUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command and returns the persisted line
// with its generated key. Order state, line, and product counter are committed
// together or not at all.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) (*order.Line, error) {
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

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.PlaceOnOrder(cmd.Quantity()); err != nil {
		return nil, err
	}

	line, err := o.AddLine(kernel.NewUUID(), p.ID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
