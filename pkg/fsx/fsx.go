package fsx

import (
	"context"
	"io"
	"strings"
)

// FileSystem abstracts blob storage for uploaded files.
type FileSystem interface {
	// WriteFile stores data at path, overwriting any existing object.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream opens the object at path for reading.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path.
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments.
	Join(parts ...string) string
}

// Join is the default path-joining used by implementations.
func Join(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "/")
}
