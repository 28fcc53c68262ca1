package playerfolio

import (
	"fmt"
	"time"
)

// Period is a predefined reporting period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "unknown"
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "day", "d":
		return Daily, nil
	case "week", "w":
		return Weekly, nil
	case "month", "m":
		return Monthly, nil
	case "quarter", "q":
		return Quarterly, nil
	case "year", "y":
		return Yearly, nil
	default:
		return 0, fmt.Errorf("unknown period: %q", s)
	}
}

// StartOf returns the date of the beginning of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		offset := int(d.Weekday() - time.Monday)
		for offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Monthly:
		return NewDate(d.Year(), d.Month(), 1)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		return NewDate(d.Year(), time.Month(quarter*3+1), 1)
	case Yearly:
		return NewDate(d.Year(), time.January, 1)
	default:
		panic("unknown period")
	}
}

// Range is an inclusive range of dates.
type Range struct {
	From, To Date
}

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Range returns the period's range ending on the given date.
func (p Period) Range(end Date) Range { return NewRange(end.StartOf(p), end) }

// Contains reports whether the date falls within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
