package services

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"resumekit/utils"
)

type S3Service struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

func NewS3Service() (*S3Service, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	bucket := os.Getenv("AWS_S3_BUCKET")

	if accessKey == "" || secretKey == "" || region == "" || bucket == "" {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		bucket:   bucket,
		region:   region,
	}, nil
}

// UploadArtifact stores a finished export under the given key and returns
// the public download URL. The content type is carried by the artifact, so
// PDFs, DOCX files, and fallbacks all serve correctly.
func (s *S3Service) UploadArtifact(key string, artifact *Artifact) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(artifact.Data),
		ContentType: aws.String(artifact.MIME),
		// ACL omitted; the bucket is configured for public read access.
	}

	if _, err := s.s3Client.PutObject(input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	downloadURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	utils.LogInfo("Artifact uploaded to S3", map[string]interface{}{"url": downloadURL})
	return downloadURL, nil
}

// GeneratePresignedURL generates a presigned URL for secure downloads
func (s *S3Service) GeneratePresignedURL(key string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}
	return url, nil
}

// DeleteFile deletes a stored artifact
func (s *S3Service) DeleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	if _, err := s.s3Client.DeleteObject(input); err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}

	utils.LogInfo("Artifact deleted from S3", map[string]interface{}{"key": key})
	return nil
}

func (s *S3Service) validate() error {
	if s.bucket == "" {
		return fmt.Errorf("bucket name is required")
	}
	if s.region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}
