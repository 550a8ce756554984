// Package database provides the store abstraction for the Shows API.
//
// The Store interface is the persistence collaborator used by repositories. It
// offers five CRUD primitives over named collections of schemaless records:
//
//	Get(ctx, collection)
//	GetByID(ctx, collection, id)
//	Create(ctx, collection, obj)
//	UpdateByID(ctx, collection, id, patch)
//	DeleteByID(ctx, collection, id)
//
// # Adapters
//
//   - MemoryStore: mutex-guarded maps, the default
//   - SurrealStore: SurrealDB over websocket, one table per collection
//   - RedisStore: one hash per collection plus an INCR sequence key
//
// Instrument wraps any adapter with Prometheus counters and latency histograms.
//
// # Error Types
//
//   - ErrNotFound: record does not exist
//   - ErrConnection: backend unreachable
//   - ErrQuery: backend rejected a query
//   - ErrInvalidRecord: record could not be encoded or decoded
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Seeding
//
// LoadSeed reads a YAML document mapping collection names to records; an
// embedded default provides a handful of shows. Seed creates those records in
// every collection that is still empty.
package database
