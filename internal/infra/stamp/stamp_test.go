package stamp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	out   []byte
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.out, f.err
}

var capture = time.Date(2023, time.May, 10, 14, 30, 0, 0, time.Local)

func TestSetFilePassesCreationFlag(t *testing.T) {
	runner := &fakeRunner{}
	w := SetFile{Path: "/usr/bin/SetFile", Runner: runner}

	require.NoError(t, w.SetCreationDate(context.Background(), "/photos/a.jpg", capture))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/usr/bin/SetFile", runner.calls[0].name)
	assert.Equal(t, []string{"-d", "05/10/2023 14:30:00", "/photos/a.jpg"}, runner.calls[0].args)
}

func TestSetFilePassesModificationFlag(t *testing.T) {
	runner := &fakeRunner{}
	w := SetFile{Runner: runner}

	require.NoError(t, w.SetModificationDate(context.Background(), "a.jpg", capture))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, DefaultSetFilePath, runner.calls[0].name)
	assert.Equal(t, []string{"-m", "05/10/2023 14:30:00", "a.jpg"}, runner.calls[0].args)
}

func TestSetFileToolFailure(t *testing.T) {
	runner := &fakeRunner{out: []byte("ERROR: File Not Found.\n"), err: errors.New("exit status 2")}
	w := SetFile{Runner: runner}

	err := w.SetCreationDate(context.Background(), "a.jpg", capture)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ToolFailure))
	assert.Contains(t, err.Error(), "File Not Found")
}

func TestSetFileInvalidDateSkipsTool(t *testing.T) {
	runner := &fakeRunner{}
	w := SetFile{Runner: runner}

	err := w.SetCreationDate(context.Background(), "a.jpg", time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Empty(t, runner.calls)
}

func TestNativeSetModificationDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, Native{}.SetModificationDate(context.Background(), path, capture))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(capture), "mtime %v", info.ModTime())
}

func TestNativeSetModificationDateMissingFile(t *testing.T) {
	err := Native{}.SetModificationDate(context.Background(), filepath.Join(t.TempDir(), "gone.jpg"), capture)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.IOFailure))
}

func TestNativeSetCreationDateUnsupported(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("creation date is settable here")
	}
	path := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := Native{}.SetCreationDate(context.Background(), path, capture)
	assert.ErrorIs(t, err, ErrCreationUnsupported)
	assert.True(t, appErrors.Is(err, appErrors.ToolFailure))
}

func TestNew(t *testing.T) {
	w, err := New(KindSetFile, "/opt/SetFile")
	require.NoError(t, err)
	assert.Equal(t, "/opt/SetFile", w.(SetFile).Path)

	w, err = New(KindNative, "")
	require.NoError(t, err)
	assert.IsType(t, Native{}, w)

	w, err = New(KindAuto, "")
	require.NoError(t, err)
	if runtime.GOOS == "darwin" {
		assert.IsType(t, SetFile{}, w)
	} else {
		assert.IsType(t, Native{}, w)
	}

	_, err = New("touch", "")
	assert.Error(t, err)
}

func TestNativeRejectsOutOfRangeDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	before, err := os.Stat(path)
	require.NoError(t, err)

	yearZero := time.Date(0, time.January, 1, 0, 0, 0, 0, time.Local)
	err = Native{}.SetModificationDate(context.Background(), path, yearZero)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.True(t, appErrors.Is(err, appErrors.ParseFailure))

	err = Native{}.SetCreationDate(context.Background(), path, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, after.ModTime().Equal(before.ModTime()), "mtime changed to %v", after.ModTime())
}
