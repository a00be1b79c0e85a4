// Package worker provides the Worker aggregate for the fulfillment system.
// Workers are the people picking and packing orders; orders reference them
// by id when assigned.
//
// Business rules:
//   - Workers must have a valid UUID and a non-empty name
//   - Role defaults to "OFA" and shift defaults to "day" when not supplied
//   - Names are not unique; two workers may share a name
//   - Workers are never deleted, so order references cannot be orphaned
package worker
