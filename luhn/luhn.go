// Package luhn implements the Luhn check digit algorithm over decimal
// digit strings.
package luhn

import "fmt"

// Checksum computes the Luhn check digit for the given digit sequence.
// Starting from the rightmost digit, every second digit is doubled; doubled
// values of ten or more are reduced by nine. The check digit is the value
// that brings the total sum to a multiple of ten.
func Checksum(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("luhn: digit sequence is required")
	}
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("luhn: non-digit character %q at position %d", c, i)
		}
		v := int(c - '0')
		if double {
			v *= 2
			if v >= 10 {
				v -= 9
			}
		}
		double = !double
		sum += v
	}
	return (10 - (sum % 10)) % 10, nil
}

// Valid reports whether check is the correct Luhn check digit for digits.
func Valid(digits string, check int) bool {
	computed, err := Checksum(digits)
	if err != nil {
		return false
	}
	return computed == check
}
