package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const (
	defaultRegion        = "us-east-1"
	defaultPresignExpiry = 15 * time.Minute
)

// bucket implements Lister for S3-compatible object storage. Objects live
// under an optional key prefix taken from the storage path.
type bucket struct {
	client  *s3.Client
	presign *s3.PresignClient
	name    string
	prefix  string
	cfg     Config
	logger  *slog.Logger
}

func newS3(ctx context.Context, cfg Config, logger *slog.Logger) (*bucket, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket required", ErrInvalidConfig)
	}
	if cfg.Type == TypeMinio && cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint required for minio", ErrInvalidConfig)
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = defaultPresignExpiry
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.Token),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	prefix := strings.Trim(cfg.Path, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &bucket{
		client:  client,
		presign: s3.NewPresignClient(client),
		name:    cfg.Bucket,
		prefix:  prefix,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (b *bucket) List(ctx context.Context) ([]FileItem, error) {
	items := []FileItem{}

	paginator := s3.NewListObjectsV2Paginator(b.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.name),
		Prefix: aws.String(b.prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", b.name, b.prefix, mapS3Error(err))
		}

		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(obj.Key), b.prefix)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			items = append(items, FileItem{
				Filename:     key,
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified).UTC(),
			})
		}
	}

	b.logger.Debug("listed objects", "count", len(items))
	return items, nil
}

func (b *bucket) Open(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	key, err := b.objectKey(filename)
	if err != nil {
		return nil, 0, err
	}

	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, mapS3Error(err)
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return out.Body, size, nil
}

func (b *bucket) DownloadURL(ctx context.Context, filename string) (string, error) {
	key, err := b.objectKey(filename)
	if err != nil {
		return "", err
	}
	if !b.cfg.Presign {
		return "", nil
	}

	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(b.name),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(key))),
	}, s3.WithPresignExpires(b.cfg.PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}

	return req.URL, nil
}

func (b *bucket) objectKey(filename string) (string, error) {
	cleaned, err := cleanKey(filename)
	if err != nil {
		return "", err
	}
	return b.prefix + cleaned, nil
}

func mapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %s", ErrPermissionDenied, apiErr.ErrorMessage())
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.ErrorMessage())
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, respErr.Error())
	}

	return fmt.Errorf("s3: %w", err)
}
