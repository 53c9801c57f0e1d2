package fs

import (
	"os"

	"github.com/djherbis/times"

	"exifstamp/internal/domain"
)

type OSFS struct{}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Times reads modification, access and, where the platform records it, birth time.
func (OSFS) Times(path string) (domain.FileTimes, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return domain.FileTimes{}, err
	}
	result := domain.FileTimes{
		Modified: ts.ModTime(),
		Accessed: ts.AccessTime(),
	}
	if ts.HasBirthTime() {
		created := ts.BirthTime()
		result.Created = &created
	}
	return result, nil
}
