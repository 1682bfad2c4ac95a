package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	continuity_errors "continuity/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type S3Config struct {
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PublicBase string
}

type Client struct {
	cfg S3Config
	s3  *s3.Client
}

var _ ObjectStorage = (*Client)(nil)

func NewClient(ctx context.Context, cfg S3Config) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if parsed, err := url.Parse(endpoint); err == nil {
			endpoint = parsed.String()
		}
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				if service == s3.ServiceID {
					return aws.Endpoint{URL: endpoint, SigningRegion: cfg.Region}, nil
				}
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			}),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
		}
	})

	return &Client{
		cfg: cfg,
		s3:  s3Client,
	}, nil
}

// Upload stores the bytes under a freshly generated key so uploads of
// identically named files never collide. The original extension is
// kept for content-type sniffing on the provider side.
func (c *Client) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (string, error) {
	if len(data) == 0 {
		return "", continuity_errors.BadRequest("no file content to upload")
	}

	key := uuid.New().String() + strings.ToLower(path.Ext(filename))
	if folder != "" {
		key = strings.Trim(folder, "/") + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return "", continuity_errors.Internal(err)
	}
	return key, nil
}

// Delete removes the remote object. A missing key reports a not-found
// failure rather than a crash; the cleanup reconciler relies on that
// to keep retrying safely.
func (c *Client) Delete(ctx context.Context, key string) error {
	exists, err := c.Exists(ctx, key)
	if err != nil {
		return continuity_errors.Internal(err)
	}
	if !exists {
		return continuity_errors.NotFound(fmt.Sprintf("object %q not found", key))
	}

	_, err = c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return continuity_errors.Internal(err)
	}
	return nil
}

// Exists reports whether the object is present. A missing key is a
// regular false, never an error.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FileURL builds a fetchable URL for the key. Deterministic, no
// network call, and tolerant of the degenerate empty key.
func (c *Client) FileURL(key string) string {
	if c.cfg.PublicBase != "" {
		return strings.TrimRight(c.cfg.PublicBase, "/") + "/" + key
	}
	if c.cfg.Endpoint != "" {
		return strings.TrimRight(c.cfg.Endpoint, "/") + "/" + c.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.cfg.Bucket, c.cfg.Region, key)
}
