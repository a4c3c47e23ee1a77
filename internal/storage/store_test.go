package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/service"
	"todo/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "todo.json"))
}

func TestInitializeCreatesEmptyDocument(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if !store.Exists() {
		t.Fatalf("storage file not created at %s", store.Path())
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read storage file: %v", err)
	}
	want := `{
  "schema_version": 1,
  "next_id": 1,
  "tasks": []
}
`
	if string(data) != want {
		t.Errorf("storage file = %q, want %q", data, want)
	}
}

func TestInitializeTwiceFails(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("first Initialize() error: %v", err)
	}
	err := store.Initialize(ctx)
	if !errors.Is(err, service.ErrAlreadyInitialized) {
		t.Errorf("second Initialize() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestLoadWithoutInitialize(t *testing.T) {
	store := newStore(t)

	_, err := store.Load(context.Background())
	if !errors.Is(err, service.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	list := service.NewList()
	list.Add("buy milk")
	second := list.Add("write report")
	if err := list.Complete(second.ID); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	if err := store.Save(ctx, list); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.NextID != 3 {
		t.Errorf("NextID = %d, want 3", got.NextID)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", len(got.Tasks))
	}
	if got.Tasks[0].ID != 1 || got.Tasks[0].Label != "buy milk" || got.Tasks[0].Done {
		t.Errorf("Tasks[0] = %+v, want {1 buy milk false}", got.Tasks[0])
	}
	if got.Tasks[1].ID != 2 || got.Tasks[1].Label != "write report" || !got.Tasks[1].Done {
		t.Errorf("Tasks[1] = %+v, want {2 write report true}", got.Tasks[1])
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	list := service.NewList()
	list.Add("one")
	if err := store.Save(ctx, list); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("read storage dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(filepath.Join(dir, "nested", "deeper", "todo.json"))

	if err := store.Save(context.Background(), service.NewList()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !store.Exists() {
		t.Errorf("storage file not created at %s", store.Path())
	}
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantPath string
	}{
		{
			name:    "not json",
			content: "not json at all",
		},
		{
			name:     "tasks is null",
			content:  `{"schema_version": 1, "next_id": 1, "tasks": null}`,
			wantPath: "tasks",
		},
		{
			name:     "unknown field",
			content:  `{"schema_version": 1, "next_id": 1, "tasks": [], "extra": true}`,
			wantPath: "",
		},
		{
			name:     "wrong schema version",
			content:  `{"schema_version": 2, "next_id": 1, "tasks": []}`,
			wantPath: "schema_version",
		},
		{
			name:     "id is a string",
			content:  `{"schema_version": 1, "next_id": 2, "tasks": [{"id": "1", "label": "x", "done": false}]}`,
			wantPath: "tasks[0].id",
		},
		{
			name:     "empty label",
			content:  `{"schema_version": 1, "next_id": 2, "tasks": [{"id": 1, "label": "", "done": false}]}`,
			wantPath: "tasks[0].label",
		},
		{
			name:     "missing done",
			content:  `{"schema_version": 1, "next_id": 2, "tasks": [{"id": 1, "label": "x"}]}`,
			wantPath: "tasks[0]",
		},
		{
			name:     "duplicate ids",
			content:  `{"schema_version": 1, "next_id": 2, "tasks": [{"id": 1, "label": "a", "done": false}, {"id": 1, "label": "b", "done": false}]}`,
			wantPath: "tasks[1].id",
		},
		{
			name:     "descending ids",
			content:  `{"schema_version": 1, "next_id": 3, "tasks": [{"id": 2, "label": "a", "done": false}, {"id": 1, "label": "b", "done": false}]}`,
			wantPath: "tasks[1].id",
		},
		{
			name:     "next_id not past last id",
			content:  `{"schema_version": 1, "next_id": 2, "tasks": [{"id": 1, "label": "a", "done": false}, {"id": 2, "label": "b", "done": false}]}`,
			wantPath: "next_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "todo.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write storage file: %v", err)
			}

			_, err := storage.New(path).Load(context.Background())
			if err == nil {
				t.Fatal("Load() succeeded, want validation error")
			}

			var verr *storage.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load() error = %v, want *ValidationError", err)
			}
			if tt.wantPath != "" && verr.Path != tt.wantPath {
				t.Errorf("ValidationError.Path = %q, want %q", verr.Path, tt.wantPath)
			}
		})
	}
}

func TestLoadAcceptsEmptyTaskList(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	list, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if list.Tasks == nil {
		t.Error("Tasks is nil, want empty slice")
	}
	if list.Len() != 0 {
		t.Errorf("Len() = %d, want 0", list.Len())
	}
	if list.NextID != 1 {
		t.Errorf("NextID = %d, want 1", list.NextID)
	}
}
