// Package order provides domain entities and business logic for order management
// in the fulfillment system. It implements the Order aggregate root with its
// lifecycle state and on-time semantics.
//
// The package includes:
//   - Order: The aggregate root managing order identity, assignment, and pick time
//   - Status: A closed set of lifecycle states (pending, picked, packed, ready, cancelled)
//   - Channel: A closed set of fulfillment channels (pickup, delivery)
//
// Key business rules:
//   - Orders are created in pending status with no recorded pick time
//   - Any status in the closed set may follow any other; there are no forbidden
//     transitions (a deliberate simplification carried over from the source system)
//   - A recorded pick time must be non-negative; the promised time must be positive
//   - An order is on time when its recorded pick time does not exceed its promised time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
