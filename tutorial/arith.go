package tutorial

import (
	"errors"
	"strings"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Divide performs true (floating point) division of a by b.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

// FloorDiv returns a divided by b rounded toward negative infinity.
// b must not be zero.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Mod returns the floored remainder of a divided by b. The result carries
// the sign of b, so FloorDiv(a, b)*b + Mod(a, b) == a.
func Mod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// Pow raises base to a non-negative integer exponent.
func Pow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Greet returns a greeting for the given person.
func Greet(person string) string {
	return "Hello, " + person + "!"
}

// FormatList renders items as "[a, b, c]".
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
