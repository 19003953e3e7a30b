// Package parsing holds the loose value coercions chart files rely on.
//
// Chart JSON is written by hand, by editors in several languages and by
// converters, so numbers show up as strings and flags show up as 0/1. The
// helpers here apply the same loose rules everywhere.
package parsing

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Truthy reports whether a JSON value counts as set.
//
// Missing values, null, false, 0, NaN and "" are not set. Objects and
// arrays are set even when empty.
func Truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0 && !math.IsNaN(r.Num)
	case gjson.String:
		return r.Str != ""
	default:
		// JSON objects and arrays
		return true
	}
}

// Float returns the numeric value of r.
//
// Numbers are returned as is. Strings are accepted when the whole string
// (ignoring surrounding whitespace) is a decimal number.
func Float(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, !math.IsNaN(r.Num)
	case gjson.String:
		s := strings.TrimSpace(r.Str)
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// Lane returns r as a lane index. Integral numbers are lanes, and so are
// strings holding one ("1", " 6 "), which some chart editors write.
func Lane(r gjson.Result) (int, bool) {
	v, ok := Float(r)
	if !ok || v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(v), true
}

// LeadingFloat parses the longest decimal prefix of s, after leading
// whitespace, the way event arguments typed into chart editors are read.
// "1.5x" yields 1.5; "x1.5" yields false.
func LeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	if strings.HasPrefix(s, "Infinity") || strings.HasPrefix(s, "+Infinity") {
		return math.Inf(1), true
	}
	if strings.HasPrefix(s, "-Infinity") {
		return math.Inf(-1), true
	}

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	// Exponent only counts when at least one digit follows it.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			exp++
		}
		if exp > start {
			end = exp
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatNumber renders v without trailing zeros: 150, 1.5, 0.25.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed renders v with exactly places decimals: 1.5 becomes "1.50".
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// FormatNumbers renders each value with FormatNumber.
func FormatNumbers(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = FormatNumber(v)
	}
	return out
}
