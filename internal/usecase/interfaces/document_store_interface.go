package interfaces

import (
	"context"
	"io"
)

// IDocumentStore abstracts artifact storage (e.g. MinIO). The engine
// only stores and compares the opaque references it returns; file
// bytes are never interpreted.

type IDocumentStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	PresignedURL(ctx context.Context, ref string) (string, error)
}
