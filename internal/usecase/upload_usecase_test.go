package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	mock_interfaces "dealflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUploadUseCase_PresignUpload(t *testing.T) {
	t.Run("requires a filename", func(t *testing.T) {
		uc := NewUploadUseCase(nil, 0, nil)
		_, err := uc.PresignUpload(context.Background(), freelancer, " ../ ", "image/jpeg")
		if !errors.Is(err, domainerr.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("requires an actor", func(t *testing.T) {
		uc := NewUploadUseCase(nil, 0, nil)
		_, err := uc.PresignUpload(context.Background(), entities.Actor{}, "a.jpg", "")
		if !errors.Is(err, domainerr.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		uc := NewUploadUseCase(nil, 0, nil)
		_, err := uc.PresignUpload(context.Background(), freelancer, "a.jpg", "")
		if !errors.Is(err, ErrObjectStorageNotConfigured) {
			t.Fatalf("expected storage not configured, got %v", err)
		}
	})

	t.Run("scopes the key to the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewUploadUseCase(storage, 0, nil)
		uc.now = func() time.Time { return fixedNow }

		storage.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), "application/octet-stream", 15*time.Minute).
			Return("https://bucket.s3.amazonaws.com/signed", nil)

		ticket, err := uc.PresignUpload(context.Background(), freelancer, "dir/Kitchen photo.JPG", "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.HasPrefix(ticket.Key, "uploads/fl-1/") || !strings.HasSuffix(ticket.Key, "_Kitchen_photo.JPG") {
			t.Fatalf("unexpected key %s", ticket.Key)
		}
		if !ticket.ExpiresAt.Equal(fixedNow.Add(15 * time.Minute)) {
			t.Fatalf("unexpected expiry %v", ticket.ExpiresAt)
		}
	})
}
