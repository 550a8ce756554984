package database

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/shows/api/internal/metrics"
)

// Operation outcome labels
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// instrumentedStore wraps a Store and records Prometheus metrics for every
// operation under the given driver label.
type instrumentedStore struct {
	inner  Store
	driver string
}

// Instrument wraps store with operation counters and latency histograms
func Instrument(store Store, driver string) Store {
	return &instrumentedStore{inner: store, driver: driver}
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	result := resultOK
	switch {
	case errors.Is(err, ErrNotFound):
		result = resultNotFound
	case err != nil:
		result = resultError
	}
	metrics.StoreOperationsTotal.WithLabelValues(s.driver, op, result).Inc()
	metrics.StoreOperationDuration.WithLabelValues(s.driver, op).Observe(time.Since(start).Seconds())
}

func (s *instrumentedStore) Get(ctx context.Context, collection string) ([]Record, error) {
	start := time.Now()
	records, err := s.inner.Get(ctx, collection)
	s.observe("get", start, err)
	return records, err
}

func (s *instrumentedStore) GetByID(ctx context.Context, collection string, id int) (Record, error) {
	start := time.Now()
	rec, err := s.inner.GetByID(ctx, collection, id)
	s.observe("get_by_id", start, err)
	return rec, err
}

func (s *instrumentedStore) Create(ctx context.Context, collection string, obj Record) (Record, error) {
	start := time.Now()
	rec, err := s.inner.Create(ctx, collection, obj)
	s.observe("create", start, err)
	return rec, err
}

func (s *instrumentedStore) UpdateByID(ctx context.Context, collection string, id int, patch Record) (Record, error) {
	start := time.Now()
	rec, err := s.inner.UpdateByID(ctx, collection, id, patch)
	s.observe("update_by_id", start, err)
	return rec, err
}

func (s *instrumentedStore) DeleteByID(ctx context.Context, collection string, id int) error {
	start := time.Now()
	err := s.inner.DeleteByID(ctx, collection, id)
	s.observe("delete_by_id", start, err)
	return err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.inner.Close()
}
