package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultPromisedMinutes is the SLA target applied when no promised time is supplied.
const DefaultPromisedMinutes = 60

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCreatedAtIsRequired is returned when an order is constructed without a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order represents a customer order moving through the fulfillment lifecycle.
// It is the aggregate root for order state: status, channel, SLA target,
// recorded pick time, and worker assignment.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and creation timestamp
//   - Status and channel always belong to their closed sets
//   - Promised minutes is positive; a recorded pick time is non-negative
//   - New orders start pending with no recorded pick time
//
// Whether an assigned worker actually exists is a referential concern checked
// by the lifecycle handlers against the record store; the aggregate only
// guarantees that an assigned id is well-formed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current state in the fulfillment lifecycle
	status Status

	// channel is how the order reaches the customer
	channel Channel

	// promisedMinutes is the SLA target for picking the order
	promisedMinutes int

	// pickTimeMinutes is the actual elapsed pick time (nil until recorded)
	pickTimeMinutes *int

	// createdAt is the creation timestamp, immutable after construction
	createdAt time.Time

	// workerID is the assigned worker's ID (nil if unassigned)
	workerID *kernel.UUID

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation.
//
// The order starts in pending status with no recorded pick time regardless of
// caller intent. A zero channel defaults to pickup and a zero promisedMinutes
// defaults to DefaultPromisedMinutes; explicit invalid values are rejected.
// workerID may be nil (unassigned).
func NewOrder(
	id kernel.UUID,
	channel Channel,
	promisedMinutes int,
	workerID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	if channel == ChannelUnknown {
		channel = ChannelPickup
	}
	if promisedMinutes == 0 {
		promisedMinutes = DefaultPromisedMinutes
	}

	order := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setChannel(channel),
		order.setPromisedMinutes(promisedMinutes),
		order.setWorkerID(workerID),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All fields are validated; unlike NewOrder, status and pick time come from
// the stored record instead of being forced to their initial values.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	channel Channel,
	promisedMinutes int,
	pickTimeMinutes *int,
	createdAt time.Time,
	workerID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setChannel(channel),
		order.setPromisedMinutes(promisedMinutes),
		order.setPickTimeMinutes(pickTimeMinutes),
		order.setWorkerID(workerID),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Channel returns the order's fulfillment channel.
func (o *Order) Channel() Channel {
	return o.channel
}

// PromisedMinutes returns the SLA target in minutes.
func (o *Order) PromisedMinutes() int {
	return o.promisedMinutes
}

// PickTimeMinutes returns the recorded pick time in minutes.
// Returns nil if no pick time has been recorded.
func (o *Order) PickTimeMinutes() *int {
	if o.pickTimeMinutes == nil {
		return nil
	}
	v := *o.pickTimeMinutes
	return &v
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Worker returns the assigned worker's ID.
// Returns nil if no worker is assigned.
func (o *Order) Worker() *kernel.UUID {
	if o.workerID == nil {
		return nil
	}
	v := *o.workerID
	return &v
}

// ChangeStatus moves the order to the given status.
//
// Any member of the closed status set is accepted from any current status;
// there is no transition guard. Only values outside the set are rejected.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// RecordPickTime records the actual elapsed pick time in minutes.
// The value must be non-negative. Recording a pick time does not change the
// order's status; the two are deliberately uncoupled.
func (o *Order) RecordPickTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickTimeMinutes",
			fmt.Errorf("%d is negative", minutes),
		)
	}
	o.pickTimeMinutes = &minutes
	return nil
}

// ClearPickTime removes the recorded pick time.
func (o *Order) ClearPickTime() {
	o.pickTimeMinutes = nil
}

// AssignWorker assigns the order to a worker.
// The id must be well-formed; whether the worker exists is checked by the caller.
func (o *Order) AssignWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	o.workerID = &workerID
	return nil
}

// UnassignWorker removes the worker assignment.
func (o *Order) UnassignWorker() {
	o.workerID = nil
}

// HasPickTime reports whether a pick time has been recorded.
func (o *Order) HasPickTime() bool {
	return o.pickTimeMinutes != nil
}

// IsOnTime reports whether the order was picked within its promised time.
// Returns false when no pick time has been recorded.
func (o *Order) IsOnTime() bool {
	return o.pickTimeMinutes != nil && *o.pickTimeMinutes <= o.promisedMinutes
}

// IsCompleted reports whether the order's status counts as completed.
func (o *Order) IsCompleted() bool {
	return o.status.IsCompleted()
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setChannel validates and sets the order's channel.
func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

// setPromisedMinutes validates and sets the SLA target.
// The promised time must be positive.
func (o *Order) setPromisedMinutes(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"promisedMinutes",
			fmt.Errorf("%d is not greater than 0", minutes),
		)
	}
	o.promisedMinutes = minutes
	return nil
}

// setPickTimeMinutes validates and sets the recorded pick time. nil means absent.
func (o *Order) setPickTimeMinutes(minutes *int) error {
	if minutes == nil {
		o.pickTimeMinutes = nil
		return nil
	}
	return o.RecordPickTime(*minutes)
}

// setWorkerID validates and sets the worker assignment. nil means unassigned.
func (o *Order) setWorkerID(workerID *kernel.UUID) error {
	if workerID == nil {
		o.workerID = nil
		return nil
	}
	return o.AssignWorker(*workerID)
}

// setCreatedAt validates and sets the creation timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt.UTC()
	return nil
}
