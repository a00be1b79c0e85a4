package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// KpiSummary carries the windowed operational KPIs derived from a population
// of orders.
//
// AvgPickTimeMinutes is nil when no order in the population has a recorded
// pick time; callers must be able to distinguish "no data" from a zero
// average. OnTimeRate is always in [0.0, 1.0] and exactly 0.0 for an empty
// population.
type KpiSummary struct {
	OrdersCount        int
	CompletedCount     int
	OnTimeCount        int
	OnTimeRate         float64
	AvgPickTimeMinutes *float64
}

// PerformanceSummary carries a single worker's all-time performance figures.
// Semantics of OnTimeRate and AvgPickTimeMinutes match KpiSummary.
type PerformanceSummary struct {
	WorkerID           kernel.UUID
	OrdersAssigned     int
	OnTimeOrders       int
	OnTimeRate         float64
	AvgPickTimeMinutes *float64
}

// KpiCalculator is a domain service that reduces a population of orders to
// operational KPIs. The caller scopes the population (typically to a creation
// time window); the calculator only aggregates.
//
// Formulas:
//   - CompletedCount counts orders whose status is picked, packed, or ready
//   - OnTimeCount counts orders with a recorded pick time within the promised time
//   - OnTimeRate is OnTimeCount / OrdersCount, 0.0 when the population is empty
//   - AvgPickTimeMinutes averages recorded pick times, absent when there are none
type KpiCalculator struct{}

// NewKpiCalculator creates a new KpiCalculator instance.
func NewKpiCalculator() KpiCalculator {
	return KpiCalculator{}
}

// Summarize reduces the given orders to a KpiSummary.
// Every order must be a properly constructed aggregate.
func (c KpiCalculator) Summarize(orders []*order.Order) (KpiSummary, error) {
	summary := KpiSummary{}

	var pickTimeSum int
	var pickTimeCount int

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return KpiSummary{}, err
		}

		summary.OrdersCount++
		if o.IsCompleted() {
			summary.CompletedCount++
		}
		if o.IsOnTime() {
			summary.OnTimeCount++
		}
		if pt := o.PickTimeMinutes(); pt != nil {
			pickTimeSum += *pt
			pickTimeCount++
		}
	}

	if summary.OrdersCount > 0 {
		summary.OnTimeRate = float64(summary.OnTimeCount) / float64(summary.OrdersCount)
	}
	if pickTimeCount > 0 {
		avg := float64(pickTimeSum) / float64(pickTimeCount)
		summary.AvgPickTimeMinutes = &avg
	}

	return summary, nil
}

// PerformanceCalculator is a domain service that reduces a worker's order
// history to a PerformanceSummary. The caller supplies the orders assigned to
// the worker; verifying that the worker exists is the caller's concern.
type PerformanceCalculator struct{}

// NewPerformanceCalculator creates a new PerformanceCalculator instance.
func NewPerformanceCalculator() PerformanceCalculator {
	return PerformanceCalculator{}
}

// Summarize reduces the given worker's orders to a PerformanceSummary.
// Every order must be a properly constructed aggregate assigned to the worker.
func (c PerformanceCalculator) Summarize(
	workerID kernel.UUID,
	orders []*order.Order,
) (PerformanceSummary, error) {
	if err := workerID.Validate(); err != nil {
		return PerformanceSummary{}, err
	}

	summary := PerformanceSummary{WorkerID: workerID}

	var pickTimeSum int
	var pickTimeCount int

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return PerformanceSummary{}, err
		}

		summary.OrdersAssigned++
		if o.IsOnTime() {
			summary.OnTimeOrders++
		}
		if pt := o.PickTimeMinutes(); pt != nil {
			pickTimeSum += *pt
			pickTimeCount++
		}
	}

	if summary.OrdersAssigned > 0 {
		summary.OnTimeRate = float64(summary.OnTimeOrders) / float64(summary.OrdersAssigned)
	}
	if pickTimeCount > 0 {
		avg := float64(pickTimeSum) / float64(pickTimeCount)
		summary.AvgPickTimeMinutes = &avg
	}

	return summary, nil
}
