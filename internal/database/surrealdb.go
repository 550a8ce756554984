package database

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// sequenceTable holds one counter record per collection
const sequenceTable = "sequence"

// SurrealStore implements Store on SurrealDB, one table per collection.
// Record ids are SurrealDB record ids with an integer key.
type SurrealStore struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealStore creates a new SurrealDB store; call Connect before use
func NewSurrealStore(cfg Config) *SurrealStore {
	return &SurrealStore{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealStore) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealStore) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Get returns all records of the collection's table
func (s *SurrealStore) Get(ctx context.Context, collection string) ([]Record, error) {
	records, err := s.query(ctx, `SELECT * FROM type::table($collection)`, map[string]interface{}{
		"collection": collection,
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b Record) int {
		ai, _ := a.ID()
		bi, _ := b.ID()
		return ai - bi
	})
	return records, nil
}

// GetByID selects a single record
func (s *SurrealStore) GetByID(ctx context.Context, collection string, id int) (Record, error) {
	records, err := s.query(ctx, `SELECT * FROM type::thing($collection, $id)`, map[string]interface{}{
		"collection": collection,
		"id":         id,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Create bumps the collection sequence and creates the record under the new id
func (s *SurrealStore) Create(ctx context.Context, collection string, obj Record) (Record, error) {
	query := transaction(
		`LET $next = (UPSERT type::thing($sequence, $collection) SET value = (value ?? 0) + 1 RETURN AFTER)[0].value`,
		`CREATE type::thing($collection, $next) CONTENT $content RETURN AFTER`,
	)
	records, err := s.query(ctx, query, map[string]interface{}{
		"sequence":   sequenceTable,
		"collection": collection,
		"content":    map[string]interface{}(obj.withoutID()),
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: create returned no record", ErrQuery)
	}
	return records[0], nil
}

// UpdateByID merges patch into an existing record.
// On SurrealDB 2.x UPDATE never creates a missing record, so an empty result
// means the id does not exist.
func (s *SurrealStore) UpdateByID(ctx context.Context, collection string, id int, patch Record) (Record, error) {
	records, err := s.query(ctx, `UPDATE type::thing($collection, $id) MERGE $patch RETURN AFTER`, map[string]interface{}{
		"collection": collection,
		"id":         id,
		"patch":      map[string]interface{}(patch.withoutID()),
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// DeleteByID deletes a record, reporting ErrNotFound when nothing was removed
func (s *SurrealStore) DeleteByID(ctx context.Context, collection string, id int) error {
	records, err := s.query(ctx, `DELETE type::thing($collection, $id) RETURN BEFORE`, map[string]interface{}{
		"collection": collection,
		"id":         id,
	})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrNotFound
	}
	return nil
}

// query runs a SurrealQL script and returns the records produced by its last statement
func (s *SurrealStore) query(ctx context.Context, query string, vars map[string]interface{}) ([]Record, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}

	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
	}

	last := (*results)[len(*results)-1].Result
	return parseSurrealRecords(last)
}

// parseSurrealRecords converts a statement result into records with integer ids
func parseSurrealRecords(result interface{}) ([]Record, error) {
	var items []interface{}
	switch v := result.(type) {
	case nil:
		return []Record{}, nil
	case []interface{}:
		items = v
	case map[string]interface{}:
		items = []interface{}{v}
	default:
		return nil, fmt.Errorf("%w: unexpected result format %T", ErrInvalidRecord, result)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: unexpected record format %T", ErrInvalidRecord, item)
		}
		rec := Record(m)
		id, err := surrealRecordKey(m[IDField])
		if err != nil {
			return nil, err
		}
		rec[IDField] = id
		records = append(records, rec)
	}
	return records, nil
}

// surrealRecordKey extracts the integer key from a SurrealDB record id
func surrealRecordKey(id interface{}) (int, error) {
	var key interface{}
	switch v := id.(type) {
	case models.RecordID:
		key = v.ID
	case *models.RecordID:
		if v == nil {
			return 0, errors.New("nil record id")
		}
		key = v.ID
	case map[string]interface{}:
		// {"tb": "table", "id": 1} format
		key = v["id"]
	default:
		key = v
	}

	n, ok := toInt(key)
	if !ok {
		return 0, fmt.Errorf("%w: record id %v is not an integer", ErrInvalidRecord, id)
	}
	return n, nil
}
