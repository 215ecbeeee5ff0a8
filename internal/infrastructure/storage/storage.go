// Package storage implements ports.FileStore on the local filesystem, MinIO
// and Amazon S3.
package storage

import (
	"context"
	"fmt"

	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

const (
	DriverLocal = "local"
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// Config selects and configures a storage driver.
type Config struct {
	Driver    string
	Root      string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// New builds the FileStore for cfg.Driver.
func New(ctx context.Context, cfg Config) (ports.FileStore, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocal(cfg.Root)
	case DriverMinio:
		return NewMinio(ctx, cfg)
	case DriverS3:
		return NewS3(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
