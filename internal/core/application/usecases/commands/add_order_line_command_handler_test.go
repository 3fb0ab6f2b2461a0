package commands_test

import (
	"testing"
	"time"

	"comptoirs/internal/core/application/usecases/commands"
	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"
	"comptoirs/internal/core/domain/model/product"
	"comptoirs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOpenOrder(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, kernel.NewUUID(), addr, order.NoDiscount)
	require.NoError(t, err)
	return o
}

func testShippedOrder(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "12209")
	require.NoError(t, err)
	shippedOn := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(orderID, kernel.NewUUID(), addr, order.NoDiscount, &shippedOn, nil)
	require.NoError(t, err)
	return o
}

func testProduct(t *testing.T, productID kernel.UUID, unitsInStock int, unitsOnOrder int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(productID, "Chai", unitsInStock, unitsOnOrder)
	require.NoError(t, err)
	return p
}

func TestAddOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, 7)
	require.NoError(t, err)

	o := testOpenOrder(t, orderID)
	p := testProduct(t, productID, 10, 5)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(p, nil).Once(),
		productRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, line.ID().Validate(), "line gets a generated key")
	assert.True(t, orderID.IsEqual(line.OrderID()))
	assert.True(t, productID.IsEqual(line.ProductID()))
	assert.Equal(t, 7, line.Quantity())
	assert.Equal(t, 12, p.UnitsOnOrder(), "on-order counter grows by the line quantity")
	assert.Equal(t, 10, p.UnitsInStock(), "stock is untouched by line addition")
	require.Len(t, o.Lines(), 1)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_QuantityExceedingStockIsAccepted(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, 500)
	require.NoError(t, err)

	o := testOpenOrder(t, orderID)
	p := testProduct(t, productID, 3, 0)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderInventoryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once()
	productRepo.On("Get", mock.Anything, productID).Return(p, nil).Once()
	productRepo.On("Update", mock.Anything, p).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)
	require.NoError(t, err, "availability is enforced only at shipment time")
	assert.Equal(t, 500, line.Quantity())
	assert.Equal(t, 500, p.UnitsOnOrder())
}

func TestAddOrderLineCommandHandler_Handle_OrderAlreadyShipped(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, 1)
	require.NoError(t, err)

	o := testShippedOrder(t, orderID)
	p := testProduct(t, productID, 10, 0)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	line, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
	assert.Nil(t, line)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, kernel.NewUUID(), 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, 1)
	require.NoError(t, err)

	o := testOpenOrder(t, orderID)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, o.Lines())
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderInventoryUoWFactory)
	h := commands.NewAddOrderLineCommandHandler(factory)
	_, err := h.Handle(ctx, commands.AddOrderLineCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAddOrderLineCommand_InvalidQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewAddOrderLineCommand(kernel.NewUUID(), kernel.NewUUID(), tc.quantity)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
