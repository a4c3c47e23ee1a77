// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task item.
type Task struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// List is the ordered task collection. Insertion order equals id order:
// ids are assigned monotonically from NextID and never reused, even after
// a task is removed.
type List struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

// NewList returns an empty list ready to assign id 1.
func NewList() *List {
	return &List{NextID: 1, Tasks: []Task{}}
}

// Add appends a task with the next sequential id and returns it.
func (l *List) Add(label string) Task {
	if l.NextID < 1 {
		l.NextID = 1
	}
	t := Task{ID: l.NextID, Label: label}
	l.NextID++
	l.Tasks = append(l.Tasks, t)
	return t
}

// Complete marks the task with the given id as done.
// Completing an already-done task succeeds without change.
func (l *List) Complete(id int) error {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			l.Tasks[i].Done = true
			return nil
		}
	}
	return ErrTaskNotFound
}

// Remove deletes the task with the given id. The id is not reused: NextID
// only ever moves forward.
func (l *List) Remove(id int) error {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// Get returns the task with the given id, or nil if not found.
func (l *List) Get(id int) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}

// Open returns the tasks that are not done, in insertion order.
func (l *List) Open() []Task {
	open := make([]Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if !t.Done {
			open = append(open, t)
		}
	}
	return open
}

// All returns a copy of every task in insertion order.
func (l *List) All() []Task {
	all := make([]Task, len(l.Tasks))
	copy(all, l.Tasks)
	return all
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.Tasks)
}
