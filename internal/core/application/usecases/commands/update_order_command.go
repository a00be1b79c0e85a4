package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
	"fulfillment/internal/pkg/patch"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update to an existing order.
//
// Optional fields use patch.Field so "field omitted" and "field set to null"
// remain distinguishable: an undefined field leaves the order's value
// untouched, a cleared field removes it. Status cannot be cleared, so it is a
// plain pointer (nil means omitted).
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   *order.Status
	pickTime patch.Field[int]
	workerID patch.Field[kernel.UUID]

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to partially update an order.
// Supplied values are validated; undefined patches carry no constraint.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *order.Status,
	pickTime patch.Field[int],
	workerID patch.Field[kernel.UUID],
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setWorkerID(workerID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.pickTime = pickTime
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the new status, or nil when the status is untouched.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// PickTime returns the pick time patch.
func (c UpdateOrderCommand) PickTime() patch.Field[int] {
	return c.pickTime
}

// WorkerID returns the worker assignment patch.
func (c UpdateOrderCommand) WorkerID() patch.Field[kernel.UUID] {
	return c.workerID
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}

func (c *UpdateOrderCommand) setWorkerID(workerID patch.Field[kernel.UUID]) error {
	if workerID.Defined() && workerID.Value() != nil {
		if err := workerID.Value().Validate(); err != nil {
			return err
		}
	}

	c.workerID = workerID
	return nil
}
