package core

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const defaultActivityCapacity = 256

// MemoryActivityRecorder keeps the most recent parse outcomes in a bounded
// in-memory window. Safe for concurrent use.
type MemoryActivityRecorder struct {
	mu       sync.Mutex
	capacity int
	items    []ValidationActivity
}

func NewMemoryActivityRecorder(capacity int) *MemoryActivityRecorder {
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}
	return &MemoryActivityRecorder{capacity: capacity}
}

func (r *MemoryActivityRecorder) Record(_ context.Context, activity ValidationActivity) error {
	if r == nil {
		return nil
	}
	if strings.TrimSpace(activity.ID) == "" {
		activity.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, activity)
	if len(r.items) > r.capacity {
		r.items = r.items[len(r.items)-r.capacity:]
	}
	return nil
}

func (r *MemoryActivityRecorder) List(_ context.Context, filter ValidationActivityFilter) (ValidationActivityPage, error) {
	if r == nil {
		return ValidationActivityPage{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]ValidationActivity, 0, len(r.items))
	for _, item := range r.items {
		if filter.Valid != nil && item.Valid != *filter.Valid {
			continue
		}
		if filter.Reason != "" && item.Reason != filter.Reason {
			continue
		}
		if filter.NumberType != "" && item.NumberType != filter.NumberType {
			continue
		}
		matched = append(matched, item)
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 50
	}
	page := filter.Page
	if page < 0 {
		page = 0
	}
	start := page * perPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]ValidationActivity, end-start)
	copy(items, matched[start:end])
	return ValidationActivityPage{
		Items:   items,
		Total:   len(matched),
		Page:    page,
		PerPage: perPage,
	}, nil
}

var _ ActivityRecorder = (*MemoryActivityRecorder)(nil)
