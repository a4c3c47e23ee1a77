// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task list operations.
// All storage access goes through this interface.
// Commands never read or write the persistence file directly.
type Service interface {
	// Initialize creates empty task storage.
	// Returns ErrAlreadyInitialized if storage already exists.
	Initialize(ctx context.Context) error

	// AddTask appends a task with the next sequential id and returns it.
	AddTask(ctx context.Context, label string) (Task, error)

	// CompleteTask marks the task with the given id as done.
	// Completing an already-done task succeeds without change.
	// Returns ErrTaskNotFound if the id is absent.
	CompleteTask(ctx context.Context, id int) error

	// RemoveTask deletes the task with the given id. Its id is never reused.
	// Returns ErrTaskNotFound if the id is absent.
	RemoveTask(ctx context.Context, id int) error

	// ListTasks returns tasks in insertion order.
	// When all is false, only open tasks are returned.
	ListTasks(ctx context.Context, all bool) ([]Task, error)
}
