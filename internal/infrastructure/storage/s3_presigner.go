package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrMissingBucket = errors.New("missing S3_BUCKET")

// S3Presigner hands out presigned PUT URLs so clients upload photos and
// attachments straight to the bucket.
type S3Presigner struct {
	presign *s3.PresignClient
	bucket  string
	logger  *zap.Logger
}

var _ interfaces.IObjectStorage = (*S3Presigner)(nil)

// NewS3Presigner builds the presigner. endpoint overrides the S3 endpoint for
// local S3-compatible stores and switches to path-style addressing.
func NewS3Presigner(awsCfg aws.Config, bucket, endpoint string, logger *zap.Logger) (*S3Presigner, error) {
	if bucket == "" {
		return nil, ErrMissingBucket
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Presigner{presign: s3.NewPresignClient(client), bucket: bucket, logger: logger}, nil
}

func (s *S3Presigner) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presign.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	s.logger.Debug("[upload][storage] presigned put", zap.String("key", key), zap.Duration("expires", expires))
	return req.URL, nil
}
