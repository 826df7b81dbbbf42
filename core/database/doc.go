// Package database manages the MySQL connection used by the dataset
// exporter.
//
// It wraps GORM connection setup: DSN construction with encoded
// credentials, connection pool limits, and an initial ping with a timeout.
// The connection is optional; builds that do not export skip it entirely.
package database
