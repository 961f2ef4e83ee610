// Package s3 implements blob.Uploader against an S3-compatible object store
// (AWS S3 or MinIO with a custom base endpoint).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Test seams: replaced in unit tests to avoid touching real AWS config/clients.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// Options configures the uploader.
type Options struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string // non-empty for MinIO-style deployments
	PublicURL    string // base URL objects are served from; defaults to BaseEndpoint/Bucket
}

type Uploader struct {
	opts Options
}

func NewUploader(opts Options) *Uploader {
	return &Uploader{opts: opts}
}

func (u *Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.opts.AccessKey,
			u.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// Put uploads data under key and returns the URL the object is served from.
func (u *Uploader) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := u.opts.Bucket
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return u.objectURL(key), nil
}

func (u *Uploader) objectURL(key string) string {
	base := u.opts.PublicURL
	if base == "" {
		base = strings.TrimSuffix(u.opts.BaseEndpoint, "/") + "/" + u.opts.Bucket
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
