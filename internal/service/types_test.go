package service

import (
	"errors"
	"testing"
)

func TestNewList(t *testing.T) {
	l := NewList()

	if l.NextID != 1 {
		t.Errorf("NextID = %d, want 1", l.NextID)
	}
	if l.Tasks == nil {
		t.Error("Tasks is nil, want empty slice")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	l := NewList()

	for i, label := range []string{"first", "second", "third"} {
		task := l.Add(label)
		if task.ID != i+1 {
			t.Errorf("Add(%q) id = %d, want %d", label, task.ID, i+1)
		}
		if task.Label != label {
			t.Errorf("Add(%q) label = %q", label, task.Label)
		}
		if task.Done {
			t.Errorf("Add(%q) created done", label)
		}
	}
	if l.NextID != 4 {
		t.Errorf("NextID = %d, want 4", l.NextID)
	}
}

func TestAddOnZeroValueList(t *testing.T) {
	var l List

	task := l.Add("first")
	if task.ID != 1 {
		t.Errorf("id = %d, want 1", task.ID)
	}
	if l.NextID != 2 {
		t.Errorf("NextID = %d, want 2", l.NextID)
	}
}

func TestCompleteSetsDone(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")

	if err := l.Complete(2); err != nil {
		t.Fatalf("Complete(2) error: %v", err)
	}
	if l.Tasks[0].Done {
		t.Error("task 1 should stay open")
	}
	if !l.Tasks[1].Done {
		t.Error("task 2 should be done")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	l := NewList()
	l.Add("repeat")

	if err := l.Complete(1); err != nil {
		t.Fatalf("first Complete(1) error: %v", err)
	}
	if err := l.Complete(1); err != nil {
		t.Errorf("second Complete(1) error: %v", err)
	}
}

func TestCompleteUnknownID(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")

	err := l.Complete(99)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Complete(99) error = %v, want ErrTaskNotFound", err)
	}
}

func TestRemoveKeepsOrderAndNextID(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")
	l.Add("three")

	if err := l.Remove(2); err != nil {
		t.Fatalf("Remove(2) error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Tasks[0].ID != 1 || l.Tasks[1].ID != 3 {
		t.Errorf("remaining ids = %d, %d, want 1, 3", l.Tasks[0].ID, l.Tasks[1].ID)
	}

	// The removed id is never handed out again
	task := l.Add("four")
	if task.ID != 4 {
		t.Errorf("id after remove = %d, want 4", task.ID)
	}

	if err := l.Remove(2); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Remove(2) again error = %v, want ErrTaskNotFound", err)
	}
}

func TestGet(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")

	task := l.Get(2)
	if task == nil {
		t.Fatal("Get(2) = nil, want task")
	}
	if task.Label != "two" {
		t.Errorf("Get(2) label = %q, want 'two'", task.Label)
	}
	if l.Get(99) != nil {
		t.Error("Get(99) should return nil")
	}
}

func TestOpenFiltersDoneTasks(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")
	l.Add("three")
	if err := l.Complete(2); err != nil {
		t.Fatalf("Complete(2) error: %v", err)
	}

	open := l.Open()
	if len(open) != 2 {
		t.Fatalf("len(Open()) = %d, want 2", len(open))
	}
	if open[0].ID != 1 || open[1].ID != 3 {
		t.Errorf("open ids = %d, %d, want 1, 3", open[0].ID, open[1].ID)
	}
}

func TestOpenOnAllDoneIsEmptyNotNil(t *testing.T) {
	l := NewList()
	l.Add("one")
	if err := l.Complete(1); err != nil {
		t.Fatalf("Complete(1) error: %v", err)
	}

	open := l.Open()
	if open == nil {
		t.Error("Open() = nil, want empty slice")
	}
	if len(open) != 0 {
		t.Errorf("len(Open()) = %d, want 0", len(open))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}

	all[0].Label = "mutated"
	if l.Tasks[0].Label != "one" {
		t.Errorf("list label = %q after mutating the copy, want 'one'", l.Tasks[0].Label)
	}
}
