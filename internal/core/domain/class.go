package domain

import "github.com/shopspring/decimal"

// Class is one billing bucket. Name is unique case-insensitively within the
// collection and is the lookup key used when jobs reference a class.
//
// TotalUnpaid is an incrementally maintained aggregate: it is adjusted by a
// signed delta on every job creation, paid toggle and deletion, and clamped at
// zero. It is never recomputed from job history on read; RecomputeBalances is
// the explicit repair path.
type Class struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalUnpaid decimal.Decimal `json:"totalUnpaid"`
}
