package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3API is the part of the S3 client used to read candidates.
type S3API interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config selects the bucket endpoint and credentials. Empty credentials
// fall back to the default AWS chain; a BaseEndpoint switches to path-style
// addressing for S3-compatible stores such as MinIO.
type S3Config struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// NewS3Client builds an S3 client from cfg.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// ParseS3URI splits "s3://bucket/key". ok is false for anything else.
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(uri, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

type s3Candidate struct {
	api         S3API
	bucket      string
	key         string
	contentType string
	size        int64
}

// S3Candidate describes an object in S3. Type and size come from the object
// metadata; a generic binary type is replaced by the key's extension type.
func S3Candidate(ctx context.Context, api S3API, bucket, key string) (Candidate, error) {
	out, err := api.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return nil, fmt.Errorf("%w: s3://%s/%s: %s", ErrReadFailed, bucket, key, describeS3Error(err))
	}

	ct := mediaType(aws.ToString(out.ContentType))
	switch ct {
	case "", "application/octet-stream", "binary/octet-stream":
		ct = typeByExtension(key)
	}

	return &s3Candidate{
		api:         api,
		bucket:      bucket,
		key:         key,
		contentType: ct,
		size:        aws.ToInt64(out.ContentLength),
	}, nil
}

func (c *s3Candidate) Name() string        { return path.Base(c.key) }
func (c *s3Candidate) ContentType() string { return c.contentType }
func (c *s3Candidate) Size() int64         { return c.size }

func (c *s3Candidate) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(c.bucket), Key: aws.String(c.key)})
	if err != nil {
		return nil, errors.New(describeS3Error(err))
	}
	return out.Body, nil
}

func describeS3Error(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return err.Error()
}
