// Package config manages application configuration for the Shows API.
//
// Configuration is read from environment variables into tagged structs and then
// validated as a whole, so that every problem is reported at once:
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - LogConfig: slog level
//   - StoreConfig: store driver and seeding
//   - DatabaseConfig: SurrealDB connection settings (STORE_DRIVER=surrealdb)
//   - RedisConfig: Redis connection settings (STORE_DRIVER=redis)
//   - MetricsConfig: Prometheus endpoint toggle
//
// # Environment Variables
//
//	SERVER_PORT       - HTTP server port (default: 8080)
//	SERVER_ENV        - development, production or test
//	LOG_LEVEL         - debug, info, warn or error (default: info)
//	STORE_DRIVER      - memory, surrealdb or redis (default: memory)
//	STORE_SEED        - seed empty collections on startup (default: true)
//	STORE_SEED_FILE   - YAML seed file; the embedded seed is used when empty
//	DB_HOST, DB_PORT  - SurrealDB address
//	REDIS_ADDR        - Redis address (default: localhost:6379)
//	METRICS_ENABLED   - expose GET /metrics (default: true)
package config
