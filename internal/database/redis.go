package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultKeyPrefix namespaces all keys in Redis to avoid collisions.
	defaultKeyPrefix = "shows:"

	// maxUpdateRetries bounds optimistic-lock retries in UpdateByID.
	maxUpdateRetries = 5
)

// RedisStore implements Store on Redis.
//
// Each collection uses two keys:
//
//   - {prefix}{collection}     a Hash mapping the decimal id to the JSON-encoded record
//   - {prefix}{collection}:seq a counter bumped with INCR to assign ids
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies connectivity
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping failed: %v", ErrConnection, err)
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) dataKey(collection string) string {
	return s.prefix + collection
}

func (s *RedisStore) seqKey(collection string) string {
	return s.prefix + collection + ":seq"
}

// Get returns every record in the collection hash ordered by id
func (s *RedisStore) Get(ctx context.Context, collection string) ([]Record, error) {
	values, err := s.client.HGetAll(ctx, s.dataKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	records := make([]Record, 0, len(values))
	for _, raw := range values {
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b Record) int {
		ai, _ := a.ID()
		bi, _ := b.ID()
		return ai - bi
	})
	return records, nil
}

// GetByID returns a single record
func (s *RedisStore) GetByID(ctx context.Context, collection string, id int) (Record, error) {
	raw, err := s.client.HGet(ctx, s.dataKey(collection), strconv.Itoa(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return decodeRecord(raw)
}

// Create assigns the next sequence value and stores the record
func (s *RedisStore) Create(ctx context.Context, collection string, obj Record) (Record, error) {
	next, err := s.client.Incr(ctx, s.seqKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	rec := obj.withoutID()
	rec[IDField] = int(next)

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := s.client.HSet(ctx, s.dataKey(collection), strconv.Itoa(int(next)), data).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return rec, nil
}

// UpdateByID merges patch into the stored record under WATCH so a concurrent
// writer forces a retry instead of a lost update.
func (s *RedisStore) UpdateByID(ctx context.Context, collection string, id int, patch Record) (Record, error) {
	key := s.dataKey(collection)
	field := strconv.Itoa(id)

	var updated Record
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, field).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}

		rec, err := decodeRecord(raw)
		if err != nil {
			return err
		}
		for k, v := range patch.withoutID() {
			rec[k] = v
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, field, data)
			return nil
		})
		if err != nil {
			return err
		}
		updated = rec
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrQuery) || errors.Is(err, ErrInvalidRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return nil, fmt.Errorf("%w: update of %s %d kept conflicting", ErrQuery, collection, id)
}

// DeleteByID removes a record from the collection hash
func (s *RedisStore) DeleteByID(ctx context.Context, collection string, id int) error {
	n, err := s.client.HDel(ctx, s.dataKey(collection), strconv.Itoa(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// decodeRecord parses a stored JSON record, keeping numbers exact
func decodeRecord(raw string) (Record, error) {
	dec := json.NewDecoder(bytes.NewBufferString(raw))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if id, ok := rec.ID(); ok {
		rec[IDField] = id
	}
	return rec, nil
}
