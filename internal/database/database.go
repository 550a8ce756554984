package database

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the backend.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")

	// ErrInvalidRecord indicates a record could not be encoded or decoded.
	ErrInvalidRecord = errors.New("invalid record")
)

// IDField is the key every stored record carries its identifier under.
const IDField = "id"

// Record is a single schemaless document in a collection
type Record map[string]interface{}

// ID returns the record's integer identifier
func (r Record) ID() (int, bool) {
	return toInt(r[IDField])
}

// withoutID returns a shallow copy of the record with the id key removed
func (r Record) withoutID() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if k != IDField {
			out[k] = v
		}
	}
	return out
}

// clone returns a shallow copy of the record
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Store is the persistence collaborator for collections of records.
// Identifiers are assigned by the store, start at 1 and are never reused
// within a collection.
type Store interface {
	// Get returns every record in the collection ordered by ascending id
	Get(ctx context.Context, collection string) ([]Record, error)

	// GetByID returns the record or ErrNotFound
	GetByID(ctx context.Context, collection string, id int) (Record, error)

	// Create stores obj under a newly assigned id and returns the stored record
	Create(ctx context.Context, collection string, obj Record) (Record, error)

	// UpdateByID merges patch into the record and returns the result, or ErrNotFound
	UpdateByID(ctx context.Context, collection string, id int, patch Record) (Record, error)

	// DeleteByID removes the record or returns ErrNotFound
	DeleteByID(ctx context.Context, collection string, id int) error

	Ping(ctx context.Context) error
	Close() error
}

// Config holds SurrealDB connection settings
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// toInt converts the numeric types produced by JSON, YAML and CBOR decoders to int
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case float32:
		if n != float32(int(n)) {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, false
		}
		return i, true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
