package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for S3 compatible storage
type S3Config struct {
	AccessKeyID     string
	AccessKeySecret string
	Endpoint        string
	Bucket          string
	Region          string
	TTL             time.Duration
}

type s3Provider struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
}

// NewS3Provider returns a provider handing out presigned GET URLs
func NewS3Provider(config S3Config) (Provider, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	region := config.Region
	if region == "" {
		region = "us-east-1"
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AccessKeyID,
			config.AccessKeySecret,
			"",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	// Path-style addressing keeps MinIO and other S3 compatible endpoints working
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	return &s3Provider{
		presigner: s3.NewPresignClient(client),
		bucket:    config.Bucket,
		ttl:       ttl,
	}, nil
}

func (p *s3Provider) URL(ctx context.Context, path string) (string, error) {
	if path == "" || isAbsoluteURL(path) {
		return path, nil
	}

	req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(strings.TrimLeft(path, "/")),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", path, err)
	}

	return req.URL, nil
}
