// Package transfer provides file copy and move primitives for the
// organizer. Copies preserve file metadata (mode and modification time);
// moves use rename when source and destination share a filesystem and
// fall back to copy-plus-remove across devices.
package transfer

import (
	"errors"
	"os"
	"time"
)

// Common errors returned by transfer operations
var (
	// ErrSourceNotFound is returned when the source file doesn't exist
	ErrSourceNotFound = errors.New("source file not found")

	// ErrDestinationNotWritable is returned when the destination is not writable
	ErrDestinationNotWritable = errors.New("destination not writable")

	// ErrRetryExhausted is returned when all retry attempts have been exhausted
	ErrRetryExhausted = errors.New("all retry attempts exhausted")
)

// Options configures the behavior of a transfer operation.
type Options struct {
	// RetryAttempts specifies how many times to retry on transient failures.
	// A value of 0 means no retries.
	RetryAttempts int

	// RetryDelay specifies how long to wait between retry attempts.
	RetryDelay time.Duration

	// PreserveAttrs preserves file permissions and modification time.
	PreserveAttrs bool

	// FileMode overrides the mode of transferred files. A value of 0 means
	// preserve the source mode (or the umask default if PreserveAttrs is false).
	FileMode os.FileMode
}

// DefaultOptions returns sensible default transfer options.
func DefaultOptions() Options {
	return Options{
		RetryAttempts: 2,
		RetryDelay:    2 * time.Second,
		PreserveAttrs: true,
	}
}

// Result contains details about a completed transfer operation.
type Result struct {
	// Success indicates whether the transfer completed successfully
	Success bool

	// BytesCopied is the number of bytes actually transferred
	BytesCopied int64

	// Duration is how long the transfer took
	Duration time.Duration

	// Attempts is the number of attempts made (including retries)
	Attempts int

	// SourceRemoved indicates whether the source file was deleted (for Move)
	SourceRemoved bool

	// Renamed indicates the move completed via rename without copying bytes
	Renamed bool

	// Error contains the error if Success is false
	Error error
}

// Transferer is the interface for file transfer implementations.
type Transferer interface {
	// Copy transfers a file from src to dst without removing the source.
	// Returns ErrSourceNotFound if source doesn't exist and
	// ErrDestinationNotWritable if the destination directory can't be created.
	Copy(src, dst string, opts Options) (*Result, error)

	// Move transfers a file from src to dst, then removes the source.
	// The source is only removed after the destination is fully written.
	Move(src, dst string, opts Options) (*Result, error)

	// Name returns a human-readable name for this implementation.
	Name() string
}
