package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-personnummer/core"
)

var (
	_ gocmd.Querier[ParseNumberMessage, core.Result]                            = (*ParseNumberQuery)(nil)
	_ gocmd.Querier[ListValidationActivityMessage, core.ValidationActivityPage] = (*ListValidationActivityQuery)(nil)
)
