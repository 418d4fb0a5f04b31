package admin

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// parseFormInt reads a form number the way a browser's parseInt would: leading
// whitespace is ignored and everything after the leading digits is dropped, so
// "12000.75", "12000 rupiah" and "12e3" all give the digits before the first
// non-digit. Values outside int64 are rejected.
func parseFormInt(s string) (int64, bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(m, "+"))
	if err != nil || d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, false
	}
	return d.IntPart(), true
}
