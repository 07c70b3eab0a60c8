package encryption

import "github.com/idelchi/symcrypt/pkg/symmetric"

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Direction the file was processed in
	Direction symmetric.Direction

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}
