package artifact

import (
	"context"

	"scotuspredict/internal/platform/config"
	perr "scotuspredict/internal/platform/errors"
)

// Source kinds
const (
	SourceLocal = "local"
	SourceS3    = "s3"
)

// Config selects and addresses the artifact source
type Config struct {
	Source string
	Path   string
	Entry  string
	S3     S3Config
}

// FromEnv reads CORE_ARTIFACT_* style keys from c
func FromEnv(c config.Conf) Config {
	return Config{
		Source: c.MayEnum("SOURCE", SourceLocal, SourceLocal, SourceS3),
		Path:   c.MayString("PATH", "model.zip"),
		Entry:  c.MayString("ENTRY", DefaultEntry),
		S3: S3Config{
			Bucket:    c.MayString("S3_BUCKET", ""),
			Key:       c.MayString("S3_KEY", "model.zip"),
			Region:    c.MayString("S3_REGION", "us-east-1"),
			Endpoint:  c.MayString("S3_ENDPOINT", ""),
			AccessKey: c.MayString("S3_ACCESS_KEY", ""),
			SecretKey: c.MayString("S3_SECRET_KEY", ""),
			PathStyle: c.MayBool("S3_PATH_STYLE", false),
		},
	}
}

// NewSource builds the configured Source
func NewSource(ctx context.Context, cfg Config) (Source, error) {
	switch cfg.Source {
	case "", SourceLocal:
		return Local{Path: cfg.Path}, nil
	case SourceS3:
		if cfg.S3.Bucket == "" {
			return nil, perr.InvalidArgf("artifact: s3 source needs a bucket")
		}
		return NewS3(ctx, cfg.S3)
	default:
		return nil, perr.InvalidArgf("artifact: unknown source %q", cfg.Source)
	}
}
