package commands

import (
	"context"

	"comptoirs/internal/core/domain/model/order"
	"comptoirs/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
//
// Business rules:
//   - The client must exist
//   - The delivery address is initialized as a copy of the client's address
//   - Clients whose historical ordered-article total exceeds the volume
//     threshold get the volume discount; everyone else gets none
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewVolumeDiscountPolicy())
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), clientID)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory     CreateOrderUoWFactory
	discountPolicy services.VolumeDiscountPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence and the
// discount policy to apply.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	discountPolicy services.VolumeDiscountPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		discountPolicy: discountPolicy,
	}
}

// Handle processes the order creation command and returns the persisted order,
// fully populated with its generated key, discount, and copied delivery address.
// Uses a transaction so the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	clientRepo := uow.ClientRepository()
	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	totalOrdered, err := clientRepo.TotalArticlesOrdered(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		c.ID(),
		c.Address(),
		h.discountPolicy.ForTotalOrdered(totalOrdered),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
