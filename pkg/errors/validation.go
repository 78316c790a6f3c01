package errors

import (
	"time"
	"unicode"
)

// MaxGridBytes bounds the size of a grid accepted from untrusted sources
// (the HTTP API). Puzzle inputs are a few kilobytes.
const MaxGridBytes = 1 << 20

// ValidateChallenge validates a challenge selector.
// Challenge 1 is the single-source search from S, challenge 2 the
// multi-source search from every lowest cell.
func ValidateChallenge(challenge int) error {
	if challenge != 1 && challenge != 2 {
		return New(ErrCodeUnsupported, "unknown challenge %d (must be 1 or 2)", challenge)
	}
	return nil
}

// ValidateWorkers validates a worker-pool size. Zero selects the default.
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "workers must not be negative, got %d", n)
	}
	if n > 1024 {
		return New(ErrCodeInvalidInput, "workers too large (max 1024), got %d", n)
	}
	return nil
}

// ValidateTimeout validates a per-search deadline. Zero disables it.
func ValidateTimeout(d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidInput, "timeout must not be negative, got %s", d)
	}
	return nil
}

// ValidatePath validates an input file path supplied on the command line or
// in the config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateGridSize rejects grid payloads that are empty or exceed MaxGridBytes.
func ValidateGridSize(n int) error {
	if n == 0 {
		return New(ErrCodeMalformedGrid, "grid is empty")
	}
	if n > MaxGridBytes {
		return New(ErrCodeInvalidInput, "grid too large (max %d bytes)", MaxGridBytes)
	}
	return nil
}
