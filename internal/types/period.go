// Package types implements special types for the ledger backend.
package types

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidMonth = errors.New("could not parse the specified month, use a month name like 'January', a number from 1 to 12 or YYYY-MM")

// Period is a key in the period map of a ledger entry.
//
// For income entries, periods are always one of the twelve month names.
// Outcome entries may use any non-empty key.
type Period string

// Months holds the month periods in calendar order.
var Months = []Period{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthOf returns the month period a time falls in, in that time's location.
func MonthOf(t time.Time) Period {
	return Months[t.Month()-1]
}

// ParseMonth parses a month period.
//
// Accepted are full or three letter month names in any case,
// the month number and a YYYY-MM string.
func ParseMonth(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidMonth
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return "", ErrInvalidMonth
		}
		return Months[n-1], nil
	}

	if t, err := time.Parse("2006-01", s); err == nil {
		return MonthOf(t), nil
	}

	lower := strings.ToLower(s)
	for _, m := range Months {
		name := strings.ToLower(string(m))
		if lower == name || (len(lower) == 3 && strings.HasPrefix(name, lower)) {
			return m, nil
		}
	}

	return "", ErrInvalidMonth
}

// Index returns the calendar number of the month, 1 for January.
// It returns 0 for periods that are not month names.
func (p Period) Index() int {
	for i, m := range Months {
		if m == p {
			return i + 1
		}
	}
	return 0
}

// IsMonth reports if the period is one of the twelve month names.
func (p Period) IsMonth() bool {
	return p.Index() != 0
}

// String returns the period key.
func (p Period) String() string {
	return string(p)
}

// MonthsThrough returns all months from January up to and including m.
func MonthsThrough(m time.Month) []Period {
	if m < time.January {
		return []Period{}
	}
	if m > time.December {
		m = time.December
	}

	through := make([]Period, 0, int(m))
	return append(through, Months[:m]...)
}
