//go:build darwin

package stamp

import (
	"context"
	"os/exec"
	"time"
)

func (n Native) setBirthTime(ctx context.Context, path string, t time.Time) error {
	tool := n.SetFilePath
	if tool == "" {
		tool = DefaultSetFilePath
	}
	if n.Runner == nil {
		if _, err := exec.LookPath(tool); err != nil {
			return ErrCreationUnsupported
		}
	}
	return SetFile{Path: tool, Runner: n.Runner}.SetCreationDate(ctx, path, t)
}
