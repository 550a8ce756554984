package repository

import (
	"encoding/json"
	"fmt"

	"github.com/forgo/shows/api/internal/database"
)

// decodeRecord converts a store record into a model struct via JSON
func decodeRecord[T any](rec database.Record) (*T, error) {
	if rec == nil {
		return nil, database.ErrNotFound
	}

	jsonBytes, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrInvalidRecord, err)
	}

	var out T
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrInvalidRecord, err)
	}
	return &out, nil
}

// decodeRecords converts a slice of store records, preserving order
func decodeRecords[T any](records []database.Record) ([]*T, error) {
	out := make([]*T, 0, len(records))
	for _, rec := range records {
		item, err := decodeRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
