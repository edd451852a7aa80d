package personnummer

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-personnummer/core"
	pnrquery "github.com/goliatone/go-personnummer/query"
)

// ParseQueryService is the read surface the facade wires queries against.
type ParseQueryService interface {
	pnrquery.NumberParser
	pnrquery.ActivityReader
}

type Queries struct {
	ParseNumber            *pnrquery.ParseNumberQuery
	ListValidationActivity *pnrquery.ListValidationActivityQuery
}

type Facade struct {
	service ParseQueryService
	queries Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	activityReader pnrquery.ActivityReader
}

func WithActivityReader(reader pnrquery.ActivityReader) FacadeOption {
	return func(options *facadeOptions) {
		options.activityReader = reader
	}
}

func NewFacade(service ParseQueryService, opts ...FacadeOption) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("personnummer: parse/query service is required")
	}
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	reader := cfg.activityReader
	if reader == nil {
		reader = service
	}

	facade := &Facade{service: service}
	facade.queries = Queries{
		ParseNumber:            pnrquery.NewParseNumberQuery(service),
		ListValidationActivity: pnrquery.NewListValidationActivityQuery(reader),
	}
	return facade, nil
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() ParseQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var defaultService = sync.OnceValues(func() (*Service, error) {
	return NewService(DefaultConfig())
})

// Parse validates input against the default service configuration.
func Parse(ctx context.Context, input any) (Result, error) {
	svc, err := defaultService()
	if err != nil {
		return core.Result{}, err
	}
	return svc.Parse(ctx, input)
}

// Valid reports whether input passes validation under the default
// service configuration.
func Valid(input any) bool {
	result, err := Parse(context.Background(), input)
	return err == nil && result.Valid
}
