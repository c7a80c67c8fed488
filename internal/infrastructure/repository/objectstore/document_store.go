package objectstore

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cup-results/internal/domain/document"
)

// Config describes an S3 bucket or an S3 compatible one such as Cloudflare R2.
// Endpoint is empty for AWS itself.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
}

// ObjectAPI is the part of the S3 client the store needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type DocumentStore struct {
	client ObjectAPI
	bucket string
	prefix string
}

// NewClient builds an S3 client from cfg. Static credentials are used when
// given, otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "load aws sdk config")
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	return s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewDocumentStore(client ObjectAPI, bucket, prefix string) (*DocumentStore, error) {
	if client == nil {
		return nil, crerr.New("s3 client is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, crerr.New("s3 bucket is required")
	}
	return &DocumentStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/ "),
	}, nil
}

func (s *DocumentStore) Load(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, crerr.Wrapf(document.ErrNotFound, "s3://%s/%s", s.bucket, key)
		}
		return nil, crerr.Wrapf(err, "get object s3://%s/%s", s.bucket, key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, crerr.Wrapf(err, "read object s3://%s/%s", s.bucket, key)
	}
	return data, nil
}

func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(name)),
	})
	if err != nil {
		return crerr.Wrapf(err, "put object s3://%s/%s", s.bucket, key)
	}
	return nil
}

func (s *DocumentStore) key(name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if crerr.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if crerr.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
