package service

import "errors"

// Service errors represent the failure kinds of the task domain.
// They are returned by Service implementations and can be checked
// with errors.Is.
var (
	// ErrAlreadyInitialized is returned by Initialize when storage exists.
	ErrAlreadyInitialized = errors.New("todo: storage already initialized")

	// ErrNotInitialized is returned when storage has not been created yet.
	ErrNotInitialized = errors.New("todo: storage not initialized")

	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("todo: task not found")
)
