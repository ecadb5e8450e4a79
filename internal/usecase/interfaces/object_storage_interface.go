package interfaces

import (
	"context"
	"time"
)

// IObjectStorage issues presigned upload URLs for photos and attachments.
type IObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}
