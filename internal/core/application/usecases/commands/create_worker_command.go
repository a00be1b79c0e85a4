package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
	ErrWorkerNameIsRequired = errors.New("worker name is required")
)

// CreateWorkerCommand represents a request to register a new fulfillment worker.
// Role and shift may be empty; the domain applies its defaults ("OFA", "day").
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	name     string
	role     string
	shift    string

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a new worker.
// Validates that the worker ID is valid and the name is not empty.
func NewCreateWorkerCommand(workerID kernel.UUID, name, role, shift string) (CreateWorkerCommand, error) {
	cmd := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setName(name),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	cmd.role = role
	cmd.shift = shift
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Name returns the worker's name.
func (c CreateWorkerCommand) Name() string {
	return c.name
}

// Role returns the worker's role tag, possibly empty.
func (c CreateWorkerCommand) Role() string {
	return c.role
}

// Shift returns the worker's shift, possibly empty.
func (c CreateWorkerCommand) Shift() string {
	return c.shift
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setName(name string) error {
	if name == "" {
		return ErrWorkerNameIsRequired
	}

	c.name = name
	return nil
}
