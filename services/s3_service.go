package services

import (
	"context"
	"fmt"
	"time"

	"sponsorlink_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service issues presigned URLs for profile image upload/read and resolves
// the long-lived public URL stored on profiles.
type S3Service struct {
	Client *s3.Client
	Bucket string
	Region string
}

// NewS3Service builds the S3 client from the ambient AWS config.
func NewS3Service(bucket, region string) (*S3Service, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, &models.StorageError{Op: "init", Err: err}
	}
	return &S3Service{Client: s3.NewFromConfig(cfg), Bucket: bucket, Region: region}, nil
}

// GenerateUploadURL generates a presigned URL for uploading a profile image.
// It returns the URL and the object key the client must echo back on profile
// submission.
func (s *S3Service) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-images/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", &models.StorageError{Op: "presign upload", Err: err}
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored object.
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", &models.StorageError{Op: "presign read", Err: err}
	}
	return presignedURL.URL, nil
}

// PublicURL returns the non-expiring object URL stored on profile records.
func (s *S3Service) PublicURL(key string) (string, error) {
	if s.Bucket == "" || s.Region == "" {
		return "", &models.StorageError{Op: "resolve url", Err: fmt.Errorf("bucket or region not configured")}
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}
