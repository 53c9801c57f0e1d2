package app

import (
	"context"
	"time"

	"exifstamp/internal/domain"
)

type Inspector interface {
	Times(path string) (domain.FileTimes, error)
}

type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (string, error)
}

type TimestampWriter interface {
	SetCreationDate(ctx context.Context, path string, t time.Time) error
	SetModificationDate(ctx context.Context, path string, t time.Time) error
}
