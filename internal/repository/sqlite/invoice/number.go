package invoice

import (
	"strings"
)

const firstInvoiceNo = "001"

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// canonical drops leading zeros: "002" -> "2", "000" -> "0".
func canonical(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}

// compareNumeric compares two canonical digit strings by value.
func compareNumeric(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// splitDigitSuffix splits "INV005" into "INV" and "005".
func splitDigitSuffix(s string) (prefix, digits string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}

// increment adds one to a digit string of any length.
func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

func pad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// LastNumber picks the most recent invoice number among values.
//
// The largest all-digit value (by value, in canonical form) wins unless
// some other value carries a digit suffix wider than it, as in "INV005"
// against "10"; then, or when nothing is all-digit, the lexicographic
// maximum of the raw values is used. Empty input yields "".
func LastNumber(values []string) string {
	last, _ := pick(values)
	return last
}

// NextAfter suggests the number following LastNumber(values). An
// all-digit maximum is padded to its widest stored spelling, so "001"
// is followed by "002".
func NextAfter(values []string) string {
	last, width := pick(values)
	if width > 0 {
		return pad(increment(last), width)
	}

	return NextNumber(last)
}

// pick returns the last number and, when it came from the all-digit
// values, the widest raw length among the values equal to it.
func pick(values []string) (last string, width int) {
	var (
		numericMax string
		lexMax     string
		hasNumeric bool
		rawWidth   int
		widest     int
	)

	for _, v := range values {
		if v == "" {
			continue
		}
		if v > lexMax {
			lexMax = v
		}

		if isDigits(v) {
			c := canonical(v)
			switch {
			case !hasNumeric || compareNumeric(c, numericMax) > 0:
				numericMax = c
				rawWidth = len(v)
			case c == numericMax && len(v) > rawWidth:
				rawWidth = len(v)
			}
			hasNumeric = true
			continue
		}

		if _, d := splitDigitSuffix(v); len(d) > widest {
			widest = len(d)
		}
	}

	if hasNumeric && len(numericMax) >= widest {
		return numericMax, rawWidth
	}

	return lexMax, 0
}

// NextNumber derives the number following last, keeping its width and
// prefix. Without a numeric tail it starts over at "001".
func NextNumber(last string) string {
	if last == "" {
		return firstInvoiceNo
	}

	prefix, digits := splitDigitSuffix(last)
	if digits == "" {
		return firstInvoiceNo
	}

	return prefix + pad(increment(digits), len(digits))
}
