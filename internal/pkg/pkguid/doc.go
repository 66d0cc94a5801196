// Package pkguid provides helpers for generating unique identifiers.
//
//   - String IDs (UUIDv7) tag HTTP requests with a correlation ID.
//   - Numeric IDs (Snowflake) tag each processed upload.
package pkguid
