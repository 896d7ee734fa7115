package commands

import (
	"context"

	"commerce/internal/core/domain/model/client"
	"commerce/internal/pkg/errs"
)

// CreateClientCommandHandler registers new clients. Emails are unique
// case-insensitively; the aggregate stores them lower-cased.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the client and returns it.
func (h *CreateClientCommandHandler) Handle(
	ctx context.Context, cmd CreateClientCommand,
) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Email(), cmd.Address())
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

	clientRepo := uow.ClientRepository()
	taken, err := clientRepo.ExistsByEmail(ctx, c.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidError("email is already registered")
	}

	if err = clientRepo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
