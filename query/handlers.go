package query

import (
	"context"

	"github.com/goliatone/go-personnummer/core"
)

// NumberParser runs the validation pipeline over one raw input.
type NumberParser interface {
	Parse(ctx context.Context, input any) (core.Result, error)
}

// ActivityReader lists recorded parse outcomes.
type ActivityReader interface {
	List(ctx context.Context, filter core.ValidationActivityFilter) (core.ValidationActivityPage, error)
}

type ParseNumberQuery struct {
	parser NumberParser
}

func NewParseNumberQuery(parser NumberParser) *ParseNumberQuery {
	return &ParseNumberQuery{parser: parser}
}

func (q *ParseNumberQuery) Query(ctx context.Context, msg ParseNumberMessage) (core.Result, error) {
	if q == nil || q.parser == nil {
		return core.Result{}, queryDependencyError("query: number parser is required")
	}
	return q.parser.Parse(ctx, msg.Input)
}

type ListValidationActivityQuery struct {
	reader ActivityReader
}

func NewListValidationActivityQuery(reader ActivityReader) *ListValidationActivityQuery {
	return &ListValidationActivityQuery{reader: reader}
}

func (q *ListValidationActivityQuery) Query(
	ctx context.Context,
	msg ListValidationActivityMessage,
) (core.ValidationActivityPage, error) {
	if q == nil || q.reader == nil {
		return core.ValidationActivityPage{}, queryDependencyError("query: activity reader is required")
	}
	return q.reader.List(ctx, msg.Filter)
}
