// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Error indicates any failure (bad args, not found, storage).
	Error = 1
)
