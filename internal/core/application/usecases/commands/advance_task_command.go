package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceTaskCommandIsNotConstructed = errors.New(
	"AdvanceTaskCommand must be created via NewAdvanceTaskCommand constructor",
)

// AdvanceTaskCommand represents the assigned rider reporting progress on a
// delivery task: pickup confirmed or delivery completed.
type AdvanceTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	riderID  kernel.UUID
	toStatus task.Status

	guard guard.ConstructorGuard
}

// NewAdvanceTaskCommand creates a command to advance a task to the given
// status. The status itself is validated here; whether the edge is legal
// from the task's current state is the aggregate's call.
func NewAdvanceTaskCommand(taskID, riderID kernel.UUID, toStatus task.Status) (AdvanceTaskCommand, error) {
	advanceCommand := AdvanceTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setTaskID(taskID),
		advanceCommand.setRiderID(riderID),
		advanceCommand.setToStatus(toStatus),
	); err != nil {
		return AdvanceTaskCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTaskCommandIsNotConstructed)
}

// TaskID returns the task being advanced.
func (c AdvanceTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// RiderID returns the caller, who must be the assigned rider.
func (c AdvanceTaskCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ToStatus returns the target lifecycle state.
func (c AdvanceTaskCommand) ToStatus() task.Status {
	return c.toStatus
}

func (c *AdvanceTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AdvanceTaskCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AdvanceTaskCommand) setToStatus(toStatus task.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	c.toStatus = toStatus
	return nil
}
