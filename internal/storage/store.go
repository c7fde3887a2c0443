package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// ImageStore persists uploaded product images. Save returns the stored file
// name; callers record it on the product row as "/uploads/<name>".
type ImageStore interface {
	Save(ctx context.Context, filename string, reader io.Reader, size int64) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context) ([]string, error)
}

// storedName builds the upload file name: upload timestamp in unix
// milliseconds, a dash, then the original base name.
func storedName(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
}
