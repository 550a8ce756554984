// Package service implements the business logic layer for the Shows API.
//
// Services sit between HTTP handlers and repositories. They validate input,
// filter results and turn "record absent" into sentinel errors.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Services define the repository interfaces they need, so tests can mock them
//   - Context is passed through to the store
//
// # Error Handling
//
// Services return the errors defined in errors.go:
//
//	var (
//	    ErrShowNotFound = errors.New("show not found")
//	    ErrValidation   = errors.New("validation failed")
//	)
//
// Request validation failures are returned as *ValidationError, which matches
// ErrValidation under errors.Is and carries the individual field errors.
package service
