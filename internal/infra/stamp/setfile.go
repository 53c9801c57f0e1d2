// Package stamp sets filesystem creation and modification timestamps.
package stamp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
)

const DefaultSetFilePath = "SetFile"

// SetFile drives the macOS SetFile utility: -d sets the creation date and
// -m the modification date, both as MM/DD/YYYY HH:MM:SS local time.
type SetFile struct {
	Path   string
	Runner Runner
}

func NewSetFile(path string) SetFile {
	if path == "" {
		path = DefaultSetFilePath
	}
	return SetFile{Path: path, Runner: ExecRunner{}}
}

func (s SetFile) SetCreationDate(ctx context.Context, path string, t time.Time) error {
	return s.run(ctx, "-d", path, t)
}

func (s SetFile) SetModificationDate(ctx context.Context, path string, t time.Time) error {
	return s.run(ctx, "-m", path, t)
}

func (s SetFile) run(ctx context.Context, flag, path string, t time.Time) error {
	formatted, err := domain.FormatToolDate(t)
	if err != nil {
		return appErrors.Wrap(appErrors.ParseFailure, "format date", path, err)
	}

	tool := s.Path
	if tool == "" {
		tool = DefaultSetFilePath
	}
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Run(ctx, tool, flag, formatted, path)
	if err != nil {
		if msg := bytes.TrimSpace(out); len(msg) > 0 {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return appErrors.Wrap(appErrors.ToolFailure, tool+" "+flag, path, err)
	}
	return nil
}
