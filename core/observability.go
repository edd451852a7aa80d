package core

import (
	"context"
	"sort"
	"strings"
	"time"
)

func (s *Service) observeParse(ctx context.Context, startedAt time.Time, result Result, err error) {
	if s == nil {
		return
	}
	status := "valid"
	if !result.Valid {
		status = "invalid"
	}

	elapsed := s.now().Sub(startedAt)
	fields := map[string]any{
		"event_type":  "parse",
		"status":      status,
		"duration_ms": elapsed.Milliseconds(),
	}
	if result.Reason != "" {
		fields["reason"] = result.Reason
	}
	if result.Type != "" {
		fields["number_type"] = string(result.Type)
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	tags := map[string]string{
		"operation": "parse",
		"status":    status,
	}
	if result.Reason != "" {
		tags["reason"] = result.Reason
	}

	s.recordCounter(ctx, "personnummer.parse.total", 1, tags)
	s.recordHistogram(ctx, "personnummer.parse.duration_ms", float64(elapsed.Milliseconds()), tags)

	if err != nil {
		s.logError(ctx, "parse rejected", fields)
		return
	}
	s.logInfo(ctx, "parse accepted", fields)
}

func (s *Service) recordActivity(ctx context.Context, result Result) {
	if s == nil || s.activityRecorder == nil {
		return
	}
	activity := ValidationActivity{
		Input:      result.Input,
		Valid:      result.Valid,
		Reason:     result.Reason,
		NumberType: result.Type,
		RecordedAt: s.now(),
	}
	if recordErr := s.activityRecorder.Record(ctx, activity); recordErr != nil {
		s.logError(ctx, "activity record failed", map[string]any{
			"event_type": "activity_record",
			"error":      recordErr.Error(),
		})
	}
}

func (s *Service) logInfo(ctx context.Context, message string, fields map[string]any) {
	s.logWithLevel(ctx, "info", message, fields)
}

func (s *Service) logError(ctx context.Context, message string, fields map[string]any) {
	s.logWithLevel(ctx, "error", message, fields)
}

func (s *Service) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if s == nil || s.logger == nil {
		return
	}
	logger := s.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func (s *Service) recordCounter(ctx context.Context, name string, value int64, tags map[string]string) {
	if s == nil || s.metricsRecorder == nil {
		return
	}
	s.metricsRecorder.IncCounter(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func (s *Service) recordHistogram(ctx context.Context, name string, value float64, tags map[string]string) {
	if s == nil || s.metricsRecorder == nil {
		return
	}
	s.metricsRecorder.ObserveHistogram(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
