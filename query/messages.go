package query

import "github.com/goliatone/go-personnummer/core"

const (
	TypeParseNumber            = "personnummer.query.number.parse"
	TypeListValidationActivity = "personnummer.query.activity.list"
)

type ParseNumberMessage struct {
	Input any
}

func (ParseNumberMessage) Type() string { return TypeParseNumber }

func (m ParseNumberMessage) Validate() error {
	if m.Input == nil {
		return queryValidationError("input", "input is required")
	}
	return nil
}

type ListValidationActivityMessage struct {
	Filter core.ValidationActivityFilter
}

func (ListValidationActivityMessage) Type() string { return TypeListValidationActivity }

func (m ListValidationActivityMessage) Validate() error {
	if m.Filter.Page < 0 {
		return queryValidationError("page", "page must be >= 0")
	}
	if m.Filter.PerPage < 0 {
		return queryValidationError("per_page", "per_page must be >= 0")
	}
	return nil
}
