package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
)

func TestFlagDelayedDeliveriesCommandHandler_Handle_FlagsOverdue(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now()
	cmd, err := commands.NewFlagDelayedDeliveriesCommand(asOf)
	require.NoError(t, err)

	past := asOf.Add(-72 * time.Hour)
	first, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil, &past, "7 Oak Avenue", decimal.NewFromInt(5), delivery.Pending,
	)
	require.NoError(t, err)
	second, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil, &past, "9 Elm Street", decimal.NewFromInt(5), delivery.EnRoute,
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetOverdue", ctx, asOf).
			Return([]*delivery.Delivery{first, second}, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagDelayedDeliveriesCommandHandler(factory, discardLogger())
	flagged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, flagged)
	require.Equal(t, delivery.Delayed, first.Status())
	require.Equal(t, delivery.Delayed, second.Status())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFlagDelayedDeliveriesCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now()
	cmd, err := commands.NewFlagDelayedDeliveriesCommand(asOf)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetOverdue", ctx, asOf).Return([]*delivery.Delivery{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagDelayedDeliveriesCommandHandler(factory, discardLogger())
	flagged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, flagged)
	uow.AssertExpectations(t)
}
