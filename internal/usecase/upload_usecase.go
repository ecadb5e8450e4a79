package usecase

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultUploadExpiry = 15 * time.Minute

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// IUploadUseCase hands out presigned URLs so clients upload photos and
// attachments straight to object storage. The engine only ever sees the keys.
type IUploadUseCase interface {
	PresignUpload(ctx context.Context, actor entities.Actor, filename, contentType string) (UploadTicket, error)
}

type UploadTicket struct {
	Key         string
	URL         string
	ContentType string
	ExpiresAt   time.Time
}

type UploadUseCase struct {
	storage interfaces.IObjectStorage
	expiry  time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(storage interfaces.IObjectStorage, expiry time.Duration, logger *zap.Logger) *UploadUseCase {
	if expiry <= 0 {
		expiry = defaultUploadExpiry
	}
	return &UploadUseCase{storage: storage, expiry: expiry, logger: nopIfNil(logger), now: systemClock}
}

func (u *UploadUseCase) PresignUpload(ctx context.Context, actor entities.Actor, filename, contentType string) (UploadTicket, error) {
	if err := authorize(actor, entities.ActionPresignUpload); err != nil {
		return UploadTicket{}, err
	}
	name := sanitizeFilename(filename)
	if name == "" {
		verr := &domainerr.ValidationError{}
		verr.Add("filename", "is required")
		return UploadTicket{}, verr
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if u.storage == nil {
		return UploadTicket{}, ErrObjectStorageNotConfigured
	}

	key := fmt.Sprintf("uploads/%s/%s_%s", sanitizeFilename(actor.ID), uuid.NewString(), name)
	url, err := u.storage.PresignUpload(ctx, key, contentType, u.expiry)
	if err != nil {
		u.logger.Error("[upload][usecase] presign failed", zap.String("key", key), zap.Error(err))
		return UploadTicket{}, fmt.Errorf("presign upload: %w", err)
	}
	u.logger.Info("[upload][usecase] presigned", zap.String("key", key), zap.String("actor_id", actor.ID))
	return UploadTicket{Key: key, URL: url, ContentType: contentType, ExpiresAt: u.now().Add(u.expiry)}, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	return strings.Trim(unsafeKeyChars.ReplaceAllString(name, "_"), "_.")
}
