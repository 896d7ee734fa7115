package commands

import (
	"context"

	"commerce/internal/core/domain/model/transporter"
)

// CreateTransporterCommandHandler registers new transporters.
type CreateTransporterCommandHandler struct {
	uowFactory TransporterUoWFactory
}

// NewCreateTransporterCommandHandler creates a handler for transporter
// registration.
func NewCreateTransporterCommandHandler(uowFactory TransporterUoWFactory) CreateTransporterCommandHandler {
	return CreateTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the transporter and returns it.
func (h *CreateTransporterCommandHandler) Handle(
	ctx context.Context, cmd CreateTransporterCommand,
) (*transporter.Transporter, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := transporter.NewTransporter(cmd.TransporterID(), cmd.Name(), cmd.Phone(), cmd.Rating())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransporterRepository().Add(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
