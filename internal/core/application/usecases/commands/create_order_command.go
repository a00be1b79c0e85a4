package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new customer order.
//
// The caller supplies the fulfillment channel, the SLA target, an optional
// worker assignment, and the creation timestamp. Zero values for channel and
// promisedMinutes mean "use the domain default". The order always starts
// pending with no recorded pick time; there is no way to express otherwise.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	channel         order.Channel
	promisedMinutes int
	workerID        *kernel.UUID
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// workerID may be nil (unassigned); when supplied it must be a well-formed id.
// Whether the worker exists is checked by the handler against the record store.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	channel order.Channel,
	promisedMinutes int,
	workerID *kernel.UUID,
	createdAt time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPromisedMinutes(promisedMinutes),
		cmd.setWorkerID(workerID),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.channel = channel
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Channel returns the fulfillment channel, possibly ChannelUnknown for "use default".
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// PromisedMinutes returns the SLA target, 0 for "use default".
func (c CreateOrderCommand) PromisedMinutes() int {
	return c.promisedMinutes
}

// WorkerID returns the optional worker assignment.
func (c CreateOrderCommand) WorkerID() *kernel.UUID {
	return c.workerID
}

// CreatedAt returns the order's creation timestamp.
func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPromisedMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"promisedMinutes",
			fmt.Errorf("%d is negative", minutes),
		)
	}

	c.promisedMinutes = minutes
	return nil
}

func (c *CreateOrderCommand) setWorkerID(workerID *kernel.UUID) error {
	if workerID == nil {
		return nil
	}
	if err := workerID.Validate(); err != nil {
		return err
	}

	id := *workerID
	c.workerID = &id
	return nil
}

func (c *CreateOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	c.createdAt = createdAt
	return nil
}
