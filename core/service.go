package core

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-personnummer/birthdate"
	"github.com/goliatone/go-personnummer/county"
	"github.com/goliatone/go-personnummer/luhn"
)

// meanYearMs is the fixed mean year length used for age computation. Age is
// floor((now - birthDate) / meanYearMs), an approximation rather than a
// calendar-aware age, preserved as the documented contract.
const meanYearMs = int64(365.25 * 24 * 60 * 60 * 1000)

// birthplaceCutoff is when the serial stopped encoding the birth county.
var birthplaceCutoff = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

type Service struct {
	config           Config
	logger           Logger
	loggerProvider   LoggerProvider
	metricsRecorder  MetricsRecorder
	errorFactory     ErrorFactory
	errorMapper      ErrorMapper
	configProvider   ConfigProvider
	optionsResolver  OptionsResolver
	activityRecorder ActivityRecorder
	nowFunc          func() time.Time
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("personnummer", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("personnummer"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.nowFunc == nil {
		builder.nowFunc = func() time.Time { return time.Now().UTC() }
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	return &Service{
		config:           finalConfig,
		logger:           logger,
		loggerProvider:   provider,
		metricsRecorder:  builder.metricsRecorder,
		errorFactory:     builder.errorFactory,
		errorMapper:      builder.errorMapper,
		configProvider:   builder.configProvider,
		optionsResolver:  builder.optionsResolver,
		activityRecorder: builder.activityRecorder,
		nowFunc:          builder.nowFunc,
	}, nil
}

func Setup(cfg Config, options ...Option) (*Service, error) {
	return NewService(cfg, options...)
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

// ListActivity pages through recorded parse outcomes when an activity
// recorder is configured.
func (s *Service) ListActivity(ctx context.Context, filter ValidationActivityFilter) (ValidationActivityPage, error) {
	if s == nil {
		return ValidationActivityPage{}, internalError("core: service is not configured")
	}
	if s.activityRecorder == nil {
		factory := s.errorFactory
		if factory == nil {
			factory = goerrors.New
		}
		wrapped := factory("core: activity recorder is not configured", goerrors.CategoryInternal).
			WithTextCode(ErrorInternal)
		return ValidationActivityPage{}, ensureErrorEnvelope(wrapped)
	}
	return s.activityRecorder.List(ctx, filter)
}

// Parse runs the full validation pipeline over input, which must be a
// string or an integer kind. Every failure is terminal: the result carries
// the reason text code and echoes the coerced input, and the returned error
// holds the categorized envelope for callers that prefer error flow.
func (s *Service) Parse(ctx context.Context, input any) (Result, error) {
	startedAt := s.now()

	raw, coerceErr := coerceInput(input)
	result, err := s.parse(ctx, raw, coerceErr)
	s.observeParse(ctx, startedAt, result, err)
	s.recordActivity(ctx, result)
	return result, err
}

func (s *Service) parse(ctx context.Context, raw string, coerceErr error) (Result, error) {
	if coerceErr != nil {
		return s.failure(raw, coerceErr)
	}

	fields, err := matchFormat(raw)
	if err != nil {
		return s.failure(raw, err)
	}

	now := s.now()
	date, ok := birthdate.Reconstruct(
		fields.Year, fields.Month, fields.Day,
		fields.Century, fields.HasCentury, now,
	)
	if !ok {
		return s.failure(raw, incorrectDateError("core: reconstructed date is not a real calendar date"))
	}

	sequence := fields.YearDigits + fields.MonthDigits + fields.DayDigits +
		fields.SerialDigits + strconv.Itoa(fields.GenderDigit)
	if !luhn.Valid(sequence, fields.Checksum) {
		return s.failure(raw, checksumError("core: checksum digit mismatch"))
	}

	age := approximateAge(date, now)

	separator, err := resolveSeparator(
		age >= 100,
		fields.Separator,
		fields.HasCentury,
		s.config.Forgiving,
		s.config.Strict,
	)
	if err != nil {
		return s.failure(raw, err)
	}
	if s.config.Strict && date.After(now) {
		return s.failure(raw, futureDateError("core: birth date is in the future"))
	}

	result := Result{
		Valid:      true,
		Input:      raw,
		Type:       TypePersonalNumber,
		Normalized: renderTemplate(s.config.NormalizeFormat, fields, date, separator),
		Date:       date,
		Age:        age,
		Gender:     GenderFemale,
		Separator:  separator,
	}
	if fields.Day > birthdate.CoordinationOffset {
		result.Type = TypeCoordinationNumber
	}
	if fields.GenderDigit%2 != 0 {
		result.Gender = GenderMale
	}
	if date.Before(birthplaceCutoff) {
		if label, found := county.Lookup(fields.Serial); found {
			result.Birthplace = label
		}
	}
	return result, nil
}

func (s *Service) failure(input string, err error) (Result, error) {
	mapped := mapBuildError(s.errorMapper, err)
	return Result{
		Valid:  false,
		Reason: Reason(mapped),
		Input:  input,
	}, mapped
}

func (s *Service) now() time.Time {
	if s == nil || s.nowFunc == nil {
		return time.Now().UTC()
	}
	return s.nowFunc().UTC()
}

func approximateAge(birthDate, now time.Time) int {
	elapsed := now.UnixMilli() - birthDate.UnixMilli()
	return int(math.Floor(float64(elapsed) / float64(meanYearMs)))
}

func coerceInput(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return coerceFloat(float64(v))
	case float64:
		return coerceFloat(v)
	default:
		return fmt.Sprint(input), inputTypeError(
			fmt.Sprintf("core: input must be a string or a number, got %T", input),
		)
	}
}

func coerceFloat(v float64) (string, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprint(v), inputTypeError("core: numeric input must be an integer value")
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}
