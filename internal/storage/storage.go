// Package storage archives rendered log sheets in an S3-compatible object store.
// Implementations must avoid using local disk and rely on streaming I/O only.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	// A non-empty filename makes the download an attachment with that name.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
}

// LogSheetKey is the object key of an archived log sheet.
func LogSheetKey(tripID int64, id string) string {
	return fmt.Sprintf("logsheets/trip-%d/%s.pdf", tripID, id)
}
