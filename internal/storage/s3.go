package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps files in an S3 bucket served from a public base URL.
type S3Store struct {
	client         *s3.Client
	bucket         string
	publicEndpoint *url.URL
}

// NewS3Store loads AWS credentials from the default chain.
func NewS3Store(ctx context.Context, bucket, region, publicBaseURL string) (FileStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newS3Store(s3.NewFromConfig(cfg), bucket, publicBaseURL)
}

func newS3Store(client *s3.Client, bucket, publicBaseURL string) (*S3Store, error) {
	publicEndpoint, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public base URL: %w", err)
	}

	return &S3Store{
		client:         client,
		bucket:         bucket,
		publicEndpoint: publicEndpoint,
	}, nil
}

func (s *S3Store) UploadFile(ctx context.Context, file []byte, filename string, folder string) (string, error) {
	key := path.Join(folder, objectName(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType(file)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *S3Store) DeleteFile(ctx context.Context, fileURL string) error {
	key, err := s.objectKey(fileURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *S3Store) publicURL(key string) string {
	uri := *s.publicEndpoint
	uri.Path = path.Join("/", uri.Path, key)
	return uri.String()
}

func (s *S3Store) objectKey(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse file URL: %w", err)
	}
	if u.Host != s.publicEndpoint.Host {
		return "", fmt.Errorf("file URL %s does not belong to this store", fileURL)
	}

	key := strings.TrimPrefix(u.Path, path.Join("/", s.publicEndpoint.Path))
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("file URL %s has no object key", fileURL)
	}

	return key, nil
}
