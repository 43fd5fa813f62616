package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested topic does not exist in the index.
	// This is a normal negative result, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrNotInitialized indicates a query was issued before the first
	// successful index build.
	ErrNotInitialized = errors.New("index not initialized")

	// ErrInvalidQuery indicates a malformed query, such as an empty
	// search substring or a blank lookup key.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")
)
