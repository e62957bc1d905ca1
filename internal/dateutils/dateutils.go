// Package dateutils provides date handling for Brazilian bank statement
// dates. Statements carry dates as "DD/MM" or "DD/MM/YYYY", not always
// zero-padded; the ledger stores the normalized "DD/MM/YYYY" form.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LayoutLedger is the canonical date layout stored in the ledger.
const LayoutLedger = "02/01/2006"

// parseLayouts are the layouts accepted when interpreting a stored or
// extracted date. Day-first, as used on Brazilian statements.
var parseLayouts = []string{
	LayoutLedger,
	"2/1/2006",
	"02/01/06",
	"2006-01-02",
	"02-01-2006",
	"02.01.2006",
}

// Normalize converts a raw statement date into the canonical DD/MM/YYYY
// form, zero-padding day and month and resolving a missing year to refYear
// (the year of the requested statement period). Input it cannot make sense
// of is returned trimmed but otherwise untouched.
func Normalize(raw string, refYear int) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	sep := "/"
	if !strings.Contains(s, "/") {
		switch {
		case strings.Contains(s, "-"):
			sep = "-"
		case strings.Contains(s, "."):
			sep = "."
		default:
			return s
		}
	}

	parts := strings.Split(s, sep)
	switch len(parts) {
	case 2:
		day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errD != nil || errM != nil || !validDayMonth(day, month) {
			return s
		}
		if refYear <= 0 {
			refYear = time.Now().Year()
		}
		return fmt.Sprintf("%02d/%02d/%04d", day, month, refYear)
	case 3:
		// ISO order when the first field is a 4-digit year.
		if len(strings.TrimSpace(parts[0])) == 4 {
			parts[0], parts[2] = parts[2], parts[0]
		}
		day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errD != nil || errM != nil || errY != nil || !validDayMonth(day, month) {
			return s
		}
		if year < 100 {
			year += 2000
		}
		return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
	default:
		return s
	}
}

// Parse interprets a stored date string as a calendar date.
func Parse(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Before reports whether date a falls before date b in calendar order.
// When either side cannot be parsed it falls back to string comparison so
// that ordering stays total.
func Before(a, b string) bool {
	ta, errA := Parse(a)
	tb, errB := Parse(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}

// YearOf extracts the year from a stored date, or zero if it has none.
func YearOf(s string) int {
	t, err := Parse(s)
	if err != nil {
		return 0
	}
	return t.Year()
}

func validDayMonth(day, month int) bool {
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}
