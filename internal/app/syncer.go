package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
	"exifstamp/internal/logging"
)

// Syncer copies a photo's EXIF capture date onto its filesystem timestamps.
type Syncer struct {
	FS     Inspector
	Exif   ExifReader
	Writer TimestampWriter
	Logger logging.Logger
	DryRun bool
}

// Sync runs the pipeline for one file. Every failure is recorded in the
// report rather than returned; the error result is reserved for a
// misconfigured Syncer. Failures are logged at verbose level only since the
// report is what gets printed.
func (s *Syncer) Sync(ctx context.Context, path string) (domain.Report, error) {
	if s.FS == nil || s.Exif == nil || (s.Writer == nil && !s.DryRun) {
		return domain.Report{}, errors.New("syncer requires FS, Exif and Writer")
	}

	stop := s.Logger.Measure("Syncing " + path)
	defer stop()

	log := s.Logger.With(zap.String("path", path))
	report := domain.Report{Path: path, DryRun: s.DryRun}

	capture, ok := s.captureDate(ctx, log, &report)
	if !ok {
		return report, nil
	}

	times, err := s.FS.Times(path)
	if err != nil {
		err = appErrors.Wrap(appErrors.NotFound, string(domain.StepInspect), path, err)
		log.Verbosef("%s", appErrors.UserMessage(err))
		report.Record(domain.StepInspect, domain.StatusFailed, time.Time{}, err)
		return report, nil
	}
	modified := times.Modified
	report.Modified = &modified
	report.Created = times.Created
	report.Record(domain.StepInspect, domain.StatusOK, modified, nil)

	pair := domain.TimestampPair{Modified: modified, Capture: capture}
	report.Consistent = pair.Consistent()
	if report.Consistent {
		report.Record(domain.StepCheck, domain.StatusOK, modified, nil)
		report.Record(domain.StepSetModification, domain.StatusSkipped, time.Time{}, nil)
	} else {
		log.Verbosef("Modification date %s is earlier than capture date %s, backdating it",
			modified.Format(domain.ExifLayout), capture.Format(domain.ExifLayout))
		report.Record(domain.StepCheck, domain.StatusWarn, modified, nil)
		s.apply(ctx, log, &report, domain.StepSetModification, capture, s.setModification)
	}

	s.apply(ctx, log, &report, domain.StepSetCreation, capture, s.setCreation)
	return report, nil
}

// Inspect reads the capture and filesystem dates without writing anything.
func (s *Syncer) Inspect(ctx context.Context, path string) (domain.Report, error) {
	dry := *s
	dry.DryRun = true
	return dry.Sync(ctx, path)
}

func (s *Syncer) captureDate(ctx context.Context, log logging.Logger, report *domain.Report) (time.Time, bool) {
	path := report.Path

	raw, err := s.Exif.DateTimeOriginal(ctx, path)
	if err != nil {
		kind := appErrors.ExifFailure
		if errors.Is(err, domain.ErrTagNotFound) {
			kind = appErrors.MissingTag
		}
		err = appErrors.Wrap(kind, string(domain.StepReadExif), path, err)
		log.Verbosef("%s", appErrors.UserMessage(err))
		report.Record(domain.StepReadExif, domain.StatusFailed, time.Time{}, err)
		return time.Time{}, false
	}
	report.RawDate = raw
	report.Record(domain.StepReadExif, domain.StatusOK, time.Time{}, nil)

	capture, err := domain.ParseExifDate(raw)
	if err != nil {
		err = appErrors.Wrap(appErrors.ParseFailure, string(domain.StepParseDate), path, err)
		log.Verbosef("%s", appErrors.UserMessage(err))
		report.Record(domain.StepParseDate, domain.StatusFailed, time.Time{}, err)
		return time.Time{}, false
	}
	report.Capture = &capture
	report.Record(domain.StepParseDate, domain.StatusOK, capture, nil)
	log.Verbosef("EXIF DateTimeOriginal %q parsed as %s", raw, capture.Format(time.RFC3339))
	return capture, true
}

type setFunc func(ctx context.Context, path string, t time.Time) error

func (s *Syncer) setModification(ctx context.Context, path string, t time.Time) error {
	return s.Writer.SetModificationDate(ctx, path, t)
}

func (s *Syncer) setCreation(ctx context.Context, path string, t time.Time) error {
	return s.Writer.SetCreationDate(ctx, path, t)
}

func (s *Syncer) apply(ctx context.Context, log logging.Logger, report *domain.Report, step domain.Step, t time.Time, set setFunc) {
	if s.DryRun {
		log.Verbosef("Dry run: would run %s with %s", step, t.Format(domain.ToolLayout))
		report.Record(step, domain.StatusPlanned, t, nil)
		return
	}
	if err := set(ctx, report.Path, t); err != nil {
		log.Verbosef("%s failed: %s", step, appErrors.UserMessage(err))
		report.Record(step, domain.StatusFailed, t, err)
		return
	}
	report.Record(step, domain.StatusOK, t, nil)
}
