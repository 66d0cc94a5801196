// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It keeps error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, and code,
//     which handlers map to an HTTP status and a {"detail": ...} body.
package pkgerror
