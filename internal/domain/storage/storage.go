package storage

import "context"

// FileStorage stores uploaded files and returns the public URL. Implementations
// may write to local disk or a remote object store; callers never care which.
type FileStorage interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
}
