// Package services provides domain services that derive information across
// multiple domain entities in the fulfillment system. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - KpiCalculator: Reduces a population of orders to windowed operational KPIs
//   - PerformanceCalculator: Reduces a worker's order history to a performance summary
//
// Both services are pure: they take fully restored aggregates and return value
// summaries without touching storage, making the KPI formulas independently
// testable.
package services
