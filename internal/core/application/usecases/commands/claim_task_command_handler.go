package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ClaimTaskCommandHandler resolves a rider's claim on a pending task. The
// decisive step is the repository's conditional write: when several riders
// race for the same task, exactly one claim lands and every other rider
// gets a TaskAlreadyClaimedError to re-poll on.
type ClaimTaskCommandHandler struct {
	uowFactory ClaimUoWFactory
	publisher  ports.ChangePublisher
}

// NewClaimTaskCommandHandler creates a handler for task claims.
func NewClaimTaskCommandHandler(
	uowFactory ClaimUoWFactory, publisher ports.ChangePublisher,
) ClaimTaskCommandHandler {
	return ClaimTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle claims the task for the rider. The rider must be approved and
// assigned to the task's vendor zone; otherwise the claim fails with an
// UnauthorizedError before any write happens.
func (h *ClaimTaskCommandHandler) Handle(ctx context.Context, cmd ClaimTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if !r.IsCandidateFor(t.VendorZone()) {
		return errs.NewUnauthorizedError("riderId", cmd.RiderID().String())
	}

	if err = t.Claim(cmd.RiderID()); err != nil {
		return err
	}

	if err = taskRepo.Claim(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.Change{
		EntityType: ports.EntityTask,
		EntityID:   t.ID().String(),
		NewState:   t.Status().String(),
	})

	return nil
}
