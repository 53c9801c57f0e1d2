package stamp

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/djherbis/times"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
)

var ErrCreationUnsupported = errors.New("setting creation date is not supported on this platform")

// Native sets timestamps through OS calls. The modification date goes through
// os.Chtimes with the current access time preserved; the creation date goes
// through the platform hook in birth_*.go.
type Native struct {
	// SetFilePath is used by the darwin creation-date hook.
	SetFilePath string
	Runner      Runner
}

func (n Native) SetModificationDate(ctx context.Context, path string, t time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validDate(path, t); err != nil {
		return err
	}
	atime := t
	if ts, err := times.Stat(path); err == nil {
		atime = ts.AccessTime()
	}
	if err := os.Chtimes(path, atime, t); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "chtimes", path, err)
	}
	return nil
}

func (n Native) SetCreationDate(ctx context.Context, path string, t time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validDate(path, t); err != nil {
		return err
	}
	if err := n.setBirthTime(ctx, path, t); err != nil {
		if errors.Is(err, ErrCreationUnsupported) {
			return appErrors.Wrap(appErrors.ToolFailure, "set birth time", path, err)
		}
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return appErrors.Wrap(appErrors.IOFailure, "set birth time", path, err)
	}
	return nil
}

// validDate applies the same range checks the SetFile writer gets from FormatToolDate.
func validDate(path string, t time.Time) error {
	if _, err := domain.FormatToolDate(t); err != nil {
		return appErrors.Wrap(appErrors.ParseFailure, "format date", path, err)
	}
	return nil
}
