package entities

import "time"

// PaymentCalendarEntry is a user-defined cutoff date. The ordered set
// of entries only serves as bucket boundaries for ledger aggregation;
// it carries no workflow state.
//
// Storage model (DynamoDB):
//   - PK: date (YYYY-MM-DD, unique)

type PaymentCalendarEntry struct {
	Date time.Time `json:"date"`
}

// AggregateDimension selects how ledger buckets are split.

type AggregateDimension string

const (
	DimensionNone        AggregateDimension = "nenhuma"
	DimensionCoordinator AggregateDimension = "coordenador"
	DimensionProject     AggregateDimension = "projeto"
)

// LedgerSeries is one track (forecast or actual) of the bucketed
// report: per-bucket and cumulative totals keyed by dimension value.

type LedgerSeries struct {
	Cutoffs    []time.Time          `json:"cutoffs"`
	PerBucket  map[string][]float64 `json:"per_bucket"`
	Cumulative map[string][]float64 `json:"cumulative"`
}

// LedgerReport holds both tracks over the same calendar.

type LedgerReport struct {
	Dimension AggregateDimension `json:"dimension"`
	Forecast  LedgerSeries       `json:"forecast"`
	Actual    LedgerSeries       `json:"actual"`
}
