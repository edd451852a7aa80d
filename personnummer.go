package personnummer

import "github.com/goliatone/go-personnummer/core"

type Config = core.Config

type Option = core.Option

type Service = core.Service

type Result = core.Result

type Fields = core.Fields

type Gender = core.Gender

type NumberType = core.NumberType

type Separator = core.Separator

type ValidationActivity = core.ValidationActivity
type ValidationActivityFilter = core.ValidationActivityFilter
type ValidationActivityPage = core.ValidationActivityPage

type ActivityRecorder = core.ActivityRecorder
type MetricsRecorder = core.MetricsRecorder
type ConfigProvider = core.ConfigProvider
type OptionsResolver = core.OptionsResolver

const (
	GenderMale   = core.GenderMale
	GenderFemale = core.GenderFemale

	TypePersonalNumber     = core.TypePersonalNumber
	TypeCoordinationNumber = core.TypeCoordinationNumber
)

var (
	WithLogger           = core.WithLogger
	WithLoggerProvider   = core.WithLoggerProvider
	WithMetricsRecorder  = core.WithMetricsRecorder
	WithErrorFactory     = core.WithErrorFactory
	WithErrorMapper      = core.WithErrorMapper
	WithConfigProvider   = core.WithConfigProvider
	WithOptionsResolver  = core.WithOptionsResolver
	WithActivityRecorder = core.WithActivityRecorder
	WithNowFunc          = core.WithNowFunc
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	return core.NewService(cfg, options...)
}

func Setup(cfg Config, options ...Option) (*Service, error) {
	return core.Setup(cfg, options...)
}
