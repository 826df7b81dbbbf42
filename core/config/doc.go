// Package config loads the application configuration.
//
// Configuration values come from environment variables, optionally seeded
// from a .env file, with defaults declared as struct tags on the partial
// config types owned by each subsystem (loader, logger, storage, database).
//
// Nested keys map to underscore-separated environment variables, e.g.
// DATABASE_HOST -> database.host and DATA_DIR -> data.dir.
package config
