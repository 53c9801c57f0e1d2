//go:build windows

package stamp

import (
	"context"
	"time"

	"golang.org/x/sys/windows"
)

func (n Native) setBirthTime(_ context.Context, path string, t time.Time) error {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(
		name,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	created := windows.NsecToFiletime(t.UnixNano())
	return windows.SetFileTime(h, &created, nil, nil)
}
