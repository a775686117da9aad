// Package blob selects the pet image store configured by UPLOAD_DRIVER.
package blob

import (
	"context"
	"fmt"

	"pet-adoption/internal/infra/blob/fs"
	"pet-adoption/internal/infra/blob/s3"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/usecase/commands"
)

const (
	DriverFilesystem = "fs"
	DriverS3         = "s3"
)

func Open(ctx context.Context, cfg config.UploadConfig) (commands.ImageStore, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return fs.New(cfg.Dir, cfg.URLPrefix)
	case DriverS3:
		return s3.New(ctx, s3.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unsupported upload driver %q", cfg.Driver)
	}
}
