package stamp

import (
	"fmt"
	"runtime"

	"exifstamp/internal/app"
)

const (
	KindAuto    = "auto"
	KindSetFile = "setfile"
	KindNative  = "native"
)

// New picks a writer by kind. auto means the SetFile tool on macOS and native
// calls elsewhere.
func New(kind, setFilePath string) (app.TimestampWriter, error) {
	switch kind {
	case "", KindAuto:
		if runtime.GOOS == "darwin" {
			return NewSetFile(setFilePath), nil
		}
		return Native{SetFilePath: setFilePath}, nil
	case KindSetFile:
		return NewSetFile(setFilePath), nil
	case KindNative:
		return Native{SetFilePath: setFilePath}, nil
	default:
		return nil, fmt.Errorf("unknown writer %q (want %s, %s or %s)", kind, KindAuto, KindSetFile, KindNative)
	}
}
