package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// renderTemplate substitutes each placeholder exactly once, longest token
// first so YYYY is consumed before YY. A single '-' or '+' in the template
// is the separator slot; digit substitutions happen first so the slot scan
// cannot collide with substituted values.
func renderTemplate(template string, fields Fields, date time.Time, separator Separator) string {
	out := template
	out = strings.Replace(out, "YYYY", fmt.Sprintf("%04d", date.Year()), 1)
	out = strings.Replace(out, "NNNN", fields.SerialDigits+strconv.Itoa(fields.GenderDigit)+strconv.Itoa(fields.Checksum), 1)
	out = strings.Replace(out, "YY", fields.YearDigits, 1)
	out = strings.Replace(out, "MM", fields.MonthDigits, 1)
	out = strings.Replace(out, "DD", fields.DayDigits, 1)
	if idx := strings.IndexAny(out, "-+"); idx >= 0 {
		out = out[:idx] + string(separator) + out[idx+1:]
	}
	return out
}
