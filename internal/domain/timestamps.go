package domain

import "time"

// TimestampPair holds the two dates compared for one file, both naive local time.
type TimestampPair struct {
	Modified time.Time
	Capture  time.Time
}

// Consistent reports whether the modification date does not predate the capture date.
func (p TimestampPair) Consistent() bool {
	return IsConsistent(p.Modified, p.Capture)
}

// IsConsistent is true if modified >= capture. The capture date becomes the
// creation date, and a file cannot be modified before it was created.
func IsConsistent(modified, capture time.Time) bool {
	return !modified.Before(capture)
}

// FileTimes is what the filesystem currently records for a file.
type FileTimes struct {
	Modified time.Time
	Accessed time.Time
	Created  *time.Time
}
