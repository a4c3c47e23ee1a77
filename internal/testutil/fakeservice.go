// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu          sync.RWMutex
	initialized bool
	list        *service.List

	// Error injection for testing
	InitializeErr   error
	AddTaskErr      error
	CompleteTaskErr error
	RemoveTaskErr   error
	ListTasksErr    error
}

// NewFakeService creates an initialized FakeService with an empty list.
func NewFakeService() *FakeService {
	return &FakeService{
		initialized: true,
		list:        service.NewList(),
	}
}

// NewUninitializedFakeService creates a FakeService that fails with
// ErrNotInitialized until Initialize is called.
func NewUninitializedFakeService() *FakeService {
	return &FakeService{list: service.NewList()}
}

// Seed adds a task directly to the fake, bypassing error injection.
func (f *FakeService) Seed(label string, done bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	task := f.list.Add(label)
	if done {
		_ = f.list.Complete(task.ID)
		task.Done = true
	}
	return task
}

// Tasks returns a copy of all tasks in the fake.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.list.All()
}

// Initialize implements service.Service.
func (f *FakeService) Initialize(ctx context.Context) error {
	if f.InitializeErr != nil {
		return f.InitializeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return service.ErrAlreadyInitialized
	}
	f.initialized = true
	return nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, label string) (service.Task, error) {
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return service.Task{}, service.ErrNotInitialized
	}
	return f.list.Add(label), nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id int) error {
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return service.ErrNotInitialized
	}
	return f.list.Complete(id)
}

// RemoveTask implements service.Service.
func (f *FakeService) RemoveTask(ctx context.Context, id int) error {
	if f.RemoveTaskErr != nil {
		return f.RemoveTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return service.ErrNotInitialized
	}
	return f.list.Remove(id)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, all bool) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.initialized {
		return nil, service.ErrNotInitialized
	}
	if all {
		return f.list.All(), nil
	}
	return f.list.Open(), nil
}
