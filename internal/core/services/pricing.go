package services

import (
	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculatePrice maps job attributes and the price table in force to a
// monetary total. It is a pure function: no rounding is applied here (callers
// round for display only) and non-positive page or copy counts are rejected
// upstream, never clamped silently.
//
// For the "Both" print type the two sub-counts are authoritative; the overall
// page count is advisory and must equal their sum, which the ledger validates
// before pricing.
func CalculatePrice(printType domain.PrintType, pages, rectoPages, rectoVersoPages, copies int, prices domain.PriceTable) decimal.Decimal {
	var total decimal.Decimal

	switch printType {
	case domain.Recto:
		total = decimal.NewFromInt(int64(pages)).Mul(prices.Recto)
	case domain.RectoVerso:
		total = decimal.NewFromInt(int64(pages)).Mul(prices.RectoVerso)
	case domain.Both:
		total = decimal.NewFromInt(int64(rectoPages)).Mul(prices.Recto).
			Add(decimal.NewFromInt(int64(rectoVersoPages)).Mul(prices.RectoVerso))
	}

	return total.Mul(decimal.NewFromInt(int64(copies)))
}
