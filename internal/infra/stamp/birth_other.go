//go:build !darwin && !windows

package stamp

import (
	"context"
	"time"
)

// Linux and the BSDs expose birth time read-only, if at all.
func (n Native) setBirthTime(context.Context, string, time.Time) error {
	return ErrCreationUnsupported
}
