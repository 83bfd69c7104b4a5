package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripapi/internal/config"
)

func TestLogSheetKey(t *testing.T) {
	assert.Equal(t, "logsheets/trip-12/0f8fad5b-d9cb-469f-a165-70867728950e.pdf",
		LogSheetKey(12, "0f8fad5b-d9cb-469f-a165-70867728950e"))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}, want: "endpoint"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}, want: "credentials"},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, want: "bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestMinIO_PresignGet(t *testing.T) {
	cli, err := newMinIOClient(config.MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "logsheets",
		Region:    "us-east-1",
	})
	require.NoError(t, err)

	s := &minioStorage{client: cli, bucket: "logsheets"}
	raw, err := s.PresignGet(context.Background(), LogSheetKey(3, "abc"), "logsheet_trip_3.pdf", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/logsheets/logsheets/trip-3/abc.pdf", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, `attachment; filename="logsheet_trip_3.pdf"`, u.Query().Get("response-content-disposition"))

	raw, err = s.PresignGet(context.Background(), LogSheetKey(3, "abc"), "", time.Minute)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	_, ok := u.Query()["response-content-disposition"]
	assert.False(t, ok)
}
