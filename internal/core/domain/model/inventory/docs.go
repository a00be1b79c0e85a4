// Package inventory provides the Item aggregate for stock tracking.
//
// Business rules:
//   - Items must have a valid UUID, a non-empty sku, and a non-empty name
//   - Quantity is a non-negative integer, defaulting to 0
//   - Location is free text, defaulting to "Aisle ?"
//   - The sku is a natural unique key enforced by the record store; the
//     idempotent upsert path looks items up by sku before creating
package inventory
