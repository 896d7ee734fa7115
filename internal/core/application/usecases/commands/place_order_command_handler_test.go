package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

func newStockedProduct(t *testing.T, id kernel.UUID, name string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name, "", decimal.NewFromInt(10), stock, nil)
	require.NoError(t, err)
	return p
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, []commands.PlaceOrderLineInput{
		{ProductID: productID, Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")},
	})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Exists", ctx, clientID).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(newStockedProduct(t, productID, "widget", 5), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, placed.Status())
	require.True(t, placed.Total().Equal(decimal.RequireFromString("30.00")))
	clientRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, []commands.PlaceOrderLineInput{
		{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Exists", ctx, clientID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NoLines(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, nil)
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Exists", ctx, clientID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	productID := kernel.NewUUID()
	// Two lines for the same product: quantities aggregate before the check.
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, []commands.PlaceOrderLineInput{
		{ProductID: productID, Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: productID, Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Exists", ctx, clientID).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(newStockedProduct(t, productID, "widget", 5), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	require.Contains(t, err.Error(), "widget")
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InvalidQuantity(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, []commands.PlaceOrderLineInput{
		{ProductID: productID, Quantity: 0, UnitPrice: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Exists", ctx, clientID).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(newStockedProduct(t, productID, "widget", 5), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdmissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockAdmissionUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
