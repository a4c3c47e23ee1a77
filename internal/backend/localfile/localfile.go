// Package localfile implements the service.Service interface against a
// JSON document on local disk. Every operation loads the whole
// document, applies the change in memory, and writes the document back
// atomically.
package localfile

import (
	"context"

	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/storage"
)

// Client implements service.Service using a local storage file.
type Client struct {
	store *storage.Store
}

var _ service.Service = (*Client)(nil)

// New creates a client for the storage path configured in cfg.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	return &Client{store: storage.New(cfg.StoragePath)}, nil
}

// Initialize creates the storage file with an empty task list.
func (c *Client) Initialize(ctx context.Context) error {
	if err := c.store.Initialize(ctx); err != nil {
		return err
	}
	logger := logging.Logger()
	logger.Debug().
		Str("path", c.store.Path()).
		Msg("storage initialized")
	return nil
}

// AddTask appends a task with the given label and persists the list.
func (c *Client) AddTask(ctx context.Context, label string) (service.Task, error) {
	list, err := c.store.Load(ctx)
	if err != nil {
		return service.Task{}, err
	}

	task := list.Add(label)
	if err := c.store.Save(ctx, list); err != nil {
		return service.Task{}, err
	}

	logger := logging.Logger()
	logger.Debug().
		Int("id", task.ID).
		Int("tasks", list.Len()).
		Msg("task added")
	return task, nil
}

// CompleteTask marks the task with the given id as done and persists
// the list. Completing an already done task is not an error.
func (c *Client) CompleteTask(ctx context.Context, id int) error {
	list, err := c.store.Load(ctx)
	if err != nil {
		return err
	}

	if err := list.Complete(id); err != nil {
		return err
	}
	if err := c.store.Save(ctx, list); err != nil {
		return err
	}

	logger := logging.Logger()
	logger.Debug().
		Int("id", id).
		Msg("task completed")
	return nil
}

// RemoveTask deletes the task with the given id and persists the list.
// The id is never assigned again.
func (c *Client) RemoveTask(ctx context.Context, id int) error {
	list, err := c.store.Load(ctx)
	if err != nil {
		return err
	}

	if err := list.Remove(id); err != nil {
		return err
	}
	if err := c.store.Save(ctx, list); err != nil {
		return err
	}

	logger := logging.Logger()
	logger.Debug().
		Int("id", id).
		Int("tasks", list.Len()).
		Msg("task removed")
	return nil
}

// ListTasks returns tasks in insertion order. With all set it includes
// completed tasks, otherwise only open ones.
func (c *Client) ListTasks(ctx context.Context, all bool) ([]service.Task, error) {
	list, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger := logging.Logger()
	logger.Debug().
		Int("tasks", list.Len()).
		Bool("all", all).
		Msg("tasks loaded")
	if all {
		return list.All(), nil
	}
	return list.Open(), nil
}
