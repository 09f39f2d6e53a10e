package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClaimTaskCommandIsNotConstructed = errors.New(
	"ClaimTaskCommand must be created via NewClaimTaskCommand constructor",
)

// ClaimTaskCommand represents a rider's attempt to take a pending delivery
// task from the candidate pool.
type ClaimTaskCommand struct { //nolint:recvcheck //using for validation
	taskID  kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimTaskCommand creates a command for a rider's claim attempt.
func NewClaimTaskCommand(taskID, riderID kernel.UUID) (ClaimTaskCommand, error) {
	claimCommand := ClaimTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setTaskID(taskID),
		claimCommand.setRiderID(riderID),
	); err != nil {
		return ClaimTaskCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimTaskCommand) Validate() error {
	return c.guard.Validate(ErrClaimTaskCommandIsNotConstructed)
}

// TaskID returns the task being claimed.
func (c ClaimTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// RiderID returns the claiming rider.
func (c ClaimTaskCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *ClaimTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ClaimTaskCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
