package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultKpiWindow is the reporting window applied when callers have no
// reason to pick another one.
const DefaultKpiWindow = 24 * time.Hour

var (
	ErrGetKpisQueryIsNotConstructed = errors.New(
		"GetKpisQuery must be created via NewGetKpisQuery constructor",
	)
)

// GetKpisQuery computes operational KPIs over orders created in the
// half-open window [now-window, now). An order created exactly at the lower
// bound is included; one created exactly at now is not.
//
// Example:
//
//	query, err := NewGetKpisQuery(time.Now().UTC(), DefaultKpiWindow)
//	if err != nil {
//	    return err
//	}
//
//	kpis, err := handler.Handle(ctx, query)
type GetKpisQuery struct {
	now    time.Time
	window time.Duration

	guard guard.ConstructorGuard
}

// NewGetKpisQuery creates a query to compute windowed KPIs.
// The reference time must be set and the window must be positive.
func NewGetKpisQuery(now time.Time, window time.Duration) (GetKpisQuery, error) {
	var err error

	if now.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("now"))
	}

	if window <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"window",
			fmt.Errorf("%s is not positive", window),
		))
	}

	if err != nil {
		return GetKpisQuery{}, err
	}

	return GetKpisQuery{
		now:    now,
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKpisQuery) Validate() error {
	return q.guard.Validate(ErrGetKpisQueryIsNotConstructed)
}

// Now returns the reference time, the exclusive upper bound of the window.
func (q GetKpisQuery) Now() time.Time {
	return q.now
}

// Window returns the reporting window length.
func (q GetKpisQuery) Window() time.Duration {
	return q.window
}

// GetKpisQueryResponse carries the computed KPI figures.
// AvgPickTimeMinutes is nil when no order in the window has a recorded pick
// time; OnTimeRate is exactly 0.0 for an empty window.
type GetKpisQueryResponse struct {
	OrdersCount        int
	CompletedCount     int
	OnTimeCount        int
	OnTimeRate         float64
	AvgPickTimeMinutes *float64
}
