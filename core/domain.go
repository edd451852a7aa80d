package core

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type NumberType string

const (
	TypePersonalNumber     NumberType = "personal_number"
	TypeCoordinationNumber NumberType = "coordination_number"
)

type Separator string

const (
	SeparatorNone   Separator = ""
	SeparatorHyphen Separator = "-"
	SeparatorPlus   Separator = "+"
)

// Fields is the structured record produced by the format matcher. Digit
// groups are kept both as parsed integers and as the raw two-digit strings
// so checksum and normalization operate on the exact input digits.
type Fields struct {
	Century     int
	HasCentury  bool
	Year        int
	Month       int
	Day         int
	Separator   Separator
	Serial      int
	GenderDigit int
	Checksum    int

	YearDigits   string
	MonthDigits  string
	DayDigits    string
	SerialDigits string
}

// Result is the sole output of the validation pipeline. On failure only
// Valid, Reason and Input are populated.
type Result struct {
	Valid      bool       `json:"valid"`
	Reason     string     `json:"reason,omitempty"`
	Input      string     `json:"input"`
	Type       NumberType `json:"type,omitempty"`
	Normalized string     `json:"normalized,omitempty"`
	Date       time.Time  `json:"date,omitzero"`
	Age        int        `json:"age"`
	Gender     Gender     `json:"gender,omitempty"`
	Separator  Separator  `json:"separator"`
	Birthplace string     `json:"birthplace,omitempty"`
}

// ValidationActivity is one recorded parse outcome.
type ValidationActivity struct {
	ID         string     `json:"id"`
	Input      string     `json:"input"`
	Valid      bool       `json:"valid"`
	Reason     string     `json:"reason,omitempty"`
	NumberType NumberType `json:"number_type,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

type ValidationActivityFilter struct {
	Valid      *bool
	Reason     string
	NumberType NumberType
	Page       int
	PerPage    int
}

type ValidationActivityPage struct {
	Items   []ValidationActivity
	Total   int
	Page    int
	PerPage int
}
