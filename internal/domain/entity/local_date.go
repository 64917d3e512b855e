package entity

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date without a time or zone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) LocalDate {
	y, m, d := t.Date()

	return LocalDate{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
