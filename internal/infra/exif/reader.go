package exif

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	goexif "github.com/rwcarlsen/goexif/exif"

	"exifstamp/internal/domain"
)

// ErrTagNotFound is returned when the tag or the whole EXIF block is absent.
var ErrTagNotFound = domain.ErrTagNotFound

type Reader struct{}

// DateTimeOriginal returns the raw DateTimeOriginal string of the image at path.
func (r Reader) DateTimeOriginal(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file", path)
	}

	return r.Decode(file)
}

// Decode reads DateTimeOriginal from an EXIF-bearing stream (JPEG or TIFF).
// Read errors from src are returned as is; only malformed or absent EXIF
// data maps to ErrTagNotFound.
func (Reader) Decode(src io.Reader) (string, error) {
	rec := &readRecorder{r: src}
	x, err := goexif.Decode(rec)
	if rec.err != nil {
		return "", rec.err
	}
	if err != nil && (x == nil || goexif.IsCriticalError(err)) {
		return "", fmt.Errorf("%w: %v", ErrTagNotFound, err)
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		return "", ErrTagNotFound
	}
	str, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTagNotFound, err)
	}
	return str, nil
}

// readRecorder keeps the first read error other than end of input.
type readRecorder struct {
	r   io.Reader
	err error
}

func (rr *readRecorder) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && rr.err == nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		rr.err = err
	}
	return n, err
}
