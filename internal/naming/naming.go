// Package naming extracts acquisition dates from Landsat Collection 2
// filenames.
//
// Landsat product IDs embed two YYYYMMDD tokens, acquisition date first:
//
//	LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF
//	                 ^^^^^^^^
//
// The year of the first such token decides which year folder a file
// belongs to.
package naming

import (
	"errors"
	"strings"
)

// ErrNoYear is returned when a filename contains no YYYYMMDD token.
var ErrNoYear = errors.New("no year found")

// ExtractYear returns the 4-digit year from the first underscore-delimited
// segment of filename that is exactly 8 characters long and all decimal
// digits. The token is trusted as-is: no calendar plausibility check is
// applied, so "99991231" yields "9999". Returns ErrNoYear if no qualifying
// segment exists.
func ExtractYear(filename string) (string, error) {
	for _, part := range strings.Split(filename, "_") {
		if len(part) == 8 && isAllDigits(part) {
			return part[:4], nil
		}
	}
	return "", ErrNoYear
}

// HasYearToken reports whether filename contains a qualifying YYYYMMDD token.
func HasYearToken(filename string) bool {
	_, err := ExtractYear(filename)
	return err == nil
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
