package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ExifLayout is the fixed EXIF date format, YYYY:MM:DD HH:MM:SS.
	ExifLayout = "2006:01:02 15:04:05"
	// ToolLayout is what SetFile expects, MM/DD/YYYY HH:MM:SS.
	ToolLayout = "01/02/2006 15:04:05"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	// ErrTagNotFound means the file has no readable DateTimeOriginal tag.
	ErrTagNotFound = errors.New("exif DateTimeOriginal not found")
)

// ParseExifDate parses an EXIF date in local time. NUL and space padding,
// which some cameras leave in the ASCII field, is trimmed first.
func ParseExifDate(raw string) (time.Time, error) {
	value := strings.TrimRight(raw, "\x00 ")
	value = strings.TrimSpace(value)
	parsed, err := time.ParseInLocation(ExifLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse exif date %q: %w", raw, err)
	}
	return parsed, nil
}

// FormatToolDate renders t for the date-setting utility.
func FormatToolDate(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("%w: zero time", ErrInvalidDate)
	}
	local := t.In(time.Local)
	if y := local.Year(); y < 1 || y > 9999 {
		return "", fmt.Errorf("%w: year %d out of range", ErrInvalidDate, y)
	}
	return local.Format(ToolLayout), nil
}

func ParseToolDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(ToolLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse tool date %q: %w", value, err)
	}
	return parsed, nil
}
