package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

func TestAssignTransporterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	transporterID := kernel.NewUUID()
	cmd, err := commands.NewAssignTransporterCommand(deliveryID, transporterID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	transporterRepo := new(MockTransporterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(newPendingDelivery(t, deliveryID, kernel.NewUUID()), nil).Once(),
		uow.On("TransporterRepository").Return(transporterRepo).Once(),
		transporterRepo.On("Exists", ctx, transporterID).Return(true, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignTransporterCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, d.Transporter())
	require.True(t, d.Transporter().IsEqual(transporterID))
	deliveryRepo.AssertExpectations(t)
	transporterRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignTransporterCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAssignTransporterCommand(deliveryID, kernel.NewUUID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignTransporterCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAssignTransporterCommandHandler_Handle_TransporterNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	transporterID := kernel.NewUUID()
	cmd, err := commands.NewAssignTransporterCommand(deliveryID, transporterID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	transporterRepo := new(MockTransporterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(newPendingDelivery(t, deliveryID, kernel.NewUUID()), nil).Once(),
		uow.On("TransporterRepository").Return(transporterRepo).Once(),
		transporterRepo.On("Exists", ctx, transporterID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignTransporterCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
