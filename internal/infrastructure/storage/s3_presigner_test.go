package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAWSConfig() aws.Config {
	return aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("local", "local", ""),
	}
}

func TestNewS3Presigner_RequiresBucket(t *testing.T) {
	_, err := NewS3Presigner(testAWSConfig(), "", "", nil)
	assert.ErrorIs(t, err, ErrMissingBucket)
}

func TestS3Presigner_PresignUpload(t *testing.T) {
	p, err := NewS3Presigner(testAWSConfig(), "dealflow-uploads", "http://localhost:9000", nil)
	require.NoError(t, err)

	raw, err := p.PresignUpload(context.Background(), "uploads/fl-1/abc_site.png", "image/png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/dealflow-uploads/uploads/fl-1/abc_site.png", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
