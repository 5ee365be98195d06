// Package models defines data structures for the long-format resistance table.
package models

import "fmt"

// ReportingPeriod is the (year, month) a worksheet's data pertains to.
type ReportingPeriod struct {
	// Year is the calendar year (Jaar).
	Year int `json:"jaar"`
	// Month is the calendar month, 1-12 (Maand).
	Month int `json:"maand"`
}

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
