package artifact

import (
	"context"
	"errors"
	"io"

	perr "scotuspredict/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// objectGetter is the slice of the s3 client this package needs
type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config addresses the archive object
type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PathStyle bool
}

// S3 reads the archive from an S3 compatible object store
type S3 struct {
	client objectGetter
	bucket string
	key    string
}

// NewS3 builds an S3 source; static credentials are used only when both keys are set
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load aws config")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})
	return &S3{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

// Fetch downloads the whole object
func (s *S3) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isMissing(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeArtifactMissing, "artifact %s not found", s.Describe())
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "get %s", s.Describe())
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDeserialization, "read %s", s.Describe())
	}
	return b, nil
}

// Describe names the source in logs and meta output
func (s *S3) Describe() string { return "s3://" + s.bucket + "/" + s.key }

func isMissing(err error) bool {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.ErrorCode() {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	}
	return false
}
