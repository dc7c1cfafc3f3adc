package interfaces

import (
	"context"
	"io"
)

// IMediaStorage stores job attachments (photos, voice notes) and returns the URL
// clients should use to fetch them.
type IMediaStorage interface {
	Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) (url string, err error)
}
