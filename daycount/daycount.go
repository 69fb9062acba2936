// Package daycount converts calendar date gaps into the fixed ACT/365 year
// fractions used by the date-weighted (XNPV/XIRR) calculations.
//
// The year length is a flat 365 days, not 365.25 and not actual/actual.
// This matches the Excel XIRR convention and is deliberate: changing it
// would silently change every solved rate.
package daycount

import "time"

// DaysInYear is the fixed denominator of the ACT/365 convention.
const DaysInYear = 365.0

// DaysBetween returns the signed whole-day count from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// YearFraction returns the ACT/365 year fraction from start to end.
func YearFraction(start, end time.Time) float64 {
	return float64(DaysBetween(start, end)) / DaysInYear
}
