package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Form errors
	ErrMsgValidation = "validation failed"

	// Import errors
	ErrMsgParse  = "invalid JSON"
	ErrMsgFormat = "data format error"

	// File errors
	ErrMsgIO = "file operation failed"

	// Selection errors
	ErrMsgNoSelection = "no item selected"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound is returned when an edit, delete, purchase or selection
	// targets an ID that is not in the catalog
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrValidation rejects add/edit form input before it reaches the catalog
	ErrValidation = errors.New(ErrMsgValidation)

	// ErrParse means the import input is not valid JSON
	ErrParse = errors.New(ErrMsgParse)

	// ErrFormat means the import input is JSON but not a list of item records
	ErrFormat = errors.New(ErrMsgFormat)

	// ErrIO wraps file open/read/write failures
	ErrIO = errors.New(ErrMsgIO)

	// ErrNoSelection is returned when buying with nothing selected
	ErrNoSelection = errors.New(ErrMsgNoSelection)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
