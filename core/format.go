package core

import "strconv"

// matchFormat tokenizes a raw identity number against the grammar
// [century(2)]? year(2) month(2) day(2) [separator]? serial(2) gender(1)
// checksum(1). The grammar binds deterministically: eight digits ahead of
// the separator mean the century is present, six mean it is absent. Any
// leading or trailing garbage rejects the whole input.
func matchFormat(input string) (Fields, error) {
	if input == "" {
		return Fields{}, formatError("core: input is empty")
	}

	sepIdx := -1
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if (c == '-' || c == '+') && sepIdx == -1 {
			sepIdx = i
			continue
		}
		return Fields{}, formatError("core: unexpected character " + strconv.Quote(string(c)))
	}

	var head, tail string
	separator := SeparatorNone
	if sepIdx >= 0 {
		head = input[:sepIdx]
		tail = input[sepIdx+1:]
		separator = Separator(input[sepIdx])
		if len(tail) != 4 {
			return Fields{}, formatError("core: expected four digits after separator")
		}
	} else {
		if len(input) != 10 && len(input) != 12 {
			return Fields{}, formatError("core: expected 10 or 12 digits")
		}
		head = input[:len(input)-4]
		tail = input[len(input)-4:]
	}
	if len(head) != 6 && len(head) != 8 {
		return Fields{}, formatError("core: expected six or eight digits before the serial")
	}

	fields := Fields{Separator: separator}
	if len(head) == 8 {
		fields.HasCentury = true
		fields.Century = parseDigits(head[:2])
		head = head[2:]
	}
	fields.YearDigits = head[0:2]
	fields.MonthDigits = head[2:4]
	fields.DayDigits = head[4:6]
	fields.Year = parseDigits(fields.YearDigits)
	fields.Month = parseDigits(fields.MonthDigits)
	fields.Day = parseDigits(fields.DayDigits)
	fields.SerialDigits = tail[:2]
	fields.Serial = parseDigits(tail[:2])
	fields.GenderDigit = parseDigits(tail[2:3])
	fields.Checksum = parseDigits(tail[3:4])
	return fields, nil
}

// parseDigits assumes the caller already verified the bytes are decimal
// digits.
func parseDigits(digits string) int {
	value := 0
	for i := 0; i < len(digits); i++ {
		value = value*10 + int(digits[i]-'0')
	}
	return value
}
