package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewS3ServiceWithoutCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_S3_BUCKET", "")

	service, err := NewS3Service()
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestS3ServiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		region  string
		isValid bool
	}{
		{
			name:    "valid configuration",
			bucket:  "my-bucket",
			region:  "us-east-1",
			isValid: true,
		},
		{
			name:    "empty bucket",
			bucket:  "",
			region:  "us-east-1",
			isValid: false,
		},
		{
			name:    "empty region",
			bucket:  "my-bucket",
			region:  "",
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &S3Service{
				bucket: tt.bucket,
				region: tt.region,
			}

			err := service.validate()
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
