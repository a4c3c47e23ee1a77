// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/service"
)

const (
	// DoneMark marks a completed task.
	DoneMark = "X"

	// OpenMark marks an open task.
	OpenMark = " "
)

// FormatTask formats a task line.
// Format: "{ID.:>4} [{MARK}] {LABEL}\n" (4-wide right-aligned id with a
// trailing dot, done mark in brackets, label)
func FormatTask(w io.Writer, task service.Task) {
	mark := OpenMark
	if task.Done {
		mark = DoneMark
	}
	fmt.Fprintf(w, "%4s [%s] %s\n", strconv.Itoa(task.ID)+".", mark, normalizeLabel(task.Label))
}

// normalizeLabel normalizes a task label for display.
// - Empty or whitespace-only labels become "(untitled)"
// - Newlines are replaced with spaces
func normalizeLabel(label string) string {
	// Replace newlines with spaces
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(label) == "" {
		return "(untitled)"
	}
	return label
}
