package worker

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// DefaultRole is the role applied when none is supplied.
	// "OFA" stands for order fulfillment associate.
	DefaultRole = "OFA"
	// DefaultShift is the shift applied when none is supplied.
	DefaultShift = "day"
)

var (
	// ErrNameIsRequired is returned when attempting to create a worker without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWorkerIsNotConstructed is returned when using an improperly initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker")
)

// Worker represents a fulfillment worker in the system.
// It is an aggregate root managing worker identity and scheduling attributes.
//
// Business rules:
//   - Worker must have a valid UUID and non-empty name
//   - Role and shift are free-text tags with defaults ("OFA", "day")
//   - There is no uniqueness constraint on names
type Worker struct {
	// id uniquely identifies the worker
	id kernel.UUID
	// name is the human-readable name of the worker
	name string
	// role is a free-text role tag
	role string
	// shift is the worker's shift ("day", "night", ...)
	shift string
	// guard ensures the worker was properly constructed
	guard guard.ConstructorGuard
}

// NewWorker creates a new Worker with validation.
// An empty role or shift falls back to the corresponding default.
func NewWorker(id kernel.UUID, name, role, shift string) (*Worker, error) {
	if role == "" {
		role = DefaultRole
	}
	if shift == "" {
		shift = DefaultShift
	}

	w := &Worker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	w.role = role
	w.shift = shift
	return w, nil
}

// RestoreWorker reconstructs a Worker from persistence.
func RestoreWorker(id kernel.UUID, name, role, shift string) (*Worker, error) {
	return NewWorker(id, name, role, shift)
}

// Validate ensures the Worker instance was properly constructed.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares two workers by their unique identifiers.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's name.
func (w *Worker) Name() string {
	return w.name
}

// Role returns the worker's role tag.
func (w *Worker) Role() string {
	return w.role
}

// Shift returns the worker's shift.
func (w *Worker) Shift() string {
	return w.shift
}

// setID validates and sets the worker's unique identifier.
func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

// setName validates and sets the worker's name.
func (w *Worker) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}
