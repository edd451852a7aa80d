package gocommand

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-personnummer/query"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) AddResolver(key string, resolver command.Resolver) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.AddResolver(strings.TrimSpace(key), resolver)
}

func (a *RegistryAdapter) HasResolver(key string) bool {
	if a == nil || a.registry == nil {
		return false
	}
	return a.registry.HasResolver(strings.TrimSpace(key))
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

func SubscribeQuery[T any, R any](qry command.Querier[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

func SubscribeQueryFunc[T any, R any](qry command.QueryFunc[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}

func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if qry == nil {
		return nil, fmt.Errorf("gocommand: query is required")
	}
	subscription := SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

// Subscriptions holds the dispatcher subscriptions for the validation queries.
type Subscriptions struct {
	ParseNumber  commanddispatcher.Subscription
	ListActivity commanddispatcher.Subscription
}

func (s Subscriptions) Unsubscribe() {
	if s.ParseNumber != nil {
		s.ParseNumber.Unsubscribe()
	}
	if s.ListActivity != nil {
		s.ListActivity.Unsubscribe()
	}
}

// RegisterQueries wires the parse and activity queries onto the dispatcher
// and into the registry in one step.
func RegisterQueries(
	adapter *RegistryAdapter,
	parser query.NumberParser,
	reader query.ActivityReader,
	runnerOpts ...runner.Option,
) (Subscriptions, error) {
	if adapter == nil || adapter.registry == nil {
		return Subscriptions{}, fmt.Errorf("gocommand: registry is not configured")
	}
	if parser == nil {
		return Subscriptions{}, fmt.Errorf("gocommand: number parser is required")
	}
	if reader == nil {
		return Subscriptions{}, fmt.Errorf("gocommand: activity reader is required")
	}

	subs := Subscriptions{}
	parseSub, err := RegisterAndSubscribeQuery(adapter, query.NewParseNumberQuery(parser), runnerOpts...)
	if err != nil {
		return Subscriptions{}, err
	}
	subs.ParseNumber = parseSub

	listSub, err := RegisterAndSubscribeQuery(adapter, query.NewListValidationActivityQuery(reader), runnerOpts...)
	if err != nil {
		subs.Unsubscribe()
		return Subscriptions{}, err
	}
	subs.ListActivity = listSub
	return subs, nil
}
