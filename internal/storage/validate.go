package storage

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed todo.schema.json
var schemaSource string

const schemaURL = "todo.schema.json"

// ValidationError reports a malformed storage document, carrying the
// JSON path of the offending value when one is known.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error { return e.Err }

// validateSchema checks the raw document bytes against the embedded
// JSON Schema.
func validateSchema(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationError{Err: fmt.Errorf("parse document: %w", err)}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return firstSchemaError(err)
	}
	return nil
}

// firstSchemaError reduces a jsonschema validation tree to its first
// leaf cause, rewritten as a ValidationError with a readable path.
func firstSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}

// validateDocument checks the invariants the schema cannot express:
// ids strictly ascending (which also rules out duplicates) and next_id
// beyond every assigned id.
func validateDocument(doc *document) error {
	prev := 0
	for i, t := range doc.Tasks {
		if t.ID <= prev {
			return &ValidationError{
				Path: fmt.Sprintf("tasks[%d].id", i),
				Err:  fmt.Errorf("id %d not greater than preceding id %d", t.ID, prev),
			}
		}
		prev = t.ID
	}
	if doc.NextID <= prev {
		return &ValidationError{
			Path: "next_id",
			Err:  fmt.Errorf("%d not greater than last assigned id %d", doc.NextID, prev),
		}
	}
	return nil
}

// jsonPointerToPath converts a JSON pointer such as "/tasks/0/id" into
// the dotted form "tasks[0].id" used in error messages.
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path string
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
