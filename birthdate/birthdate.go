// Package birthdate reconstructs calendar birth dates from the two-digit
// year, month and day fields of a Swedish identity number.
package birthdate

import "time"

// CoordinationOffset is added to the day field of coordination numbers to
// mark a person without a confirmed identity.
const CoordinationOffset = 60

// Reconstruct produces a UTC midnight birth date from two-digit components.
// When hasCentury is false the century is inferred as the most recent one
// that does not place the year after now. Day values 61-91 are coordination
// days and are shifted back by the coordination offset before validation.
// The boolean reports whether the components form a real calendar date.
func Reconstruct(year, month, day, century int, hasCentury bool, now time.Time) (time.Time, bool) {
	fullYear := century*100 + year
	if !hasCentury {
		nowYear := now.UTC().Year()
		fullYear = nowYear - ((nowYear - year) % 100)
	}

	calendarDay := day
	if day > CoordinationOffset {
		calendarDay = day - CoordinationOffset
	}

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if calendarDay < 1 || calendarDay > daysInMonth(fullYear, month) {
		return time.Time{}, false
	}
	return time.Date(fullYear, time.Month(month), calendarDay, 0, 0, 0, 0, time.UTC), true
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
