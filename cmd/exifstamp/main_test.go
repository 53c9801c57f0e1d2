package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"exifstamp/internal/infra/exif/exiftest"
)

var januaryFirst = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)

func writePhoto(t *testing.T, dir, name, date string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, exiftest.JPEG(date), 0o644); err != nil {
		t.Fatalf("write photo: %v", err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDryRunReportsPlannedChanges(t *testing.T) {
	path := writePhoto(t, t.TempDir(), "IMG_0001.jpg", "2023:05:10 14:30:00", januaryFirst)

	output, err := execute(t, "", "--dry-run", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Modification date of "+path+" would be set to 05/10/2023 14:30:00.") {
		t.Fatalf("expected planned modification, got %q", output)
	}
	if !strings.Contains(output, "Creation date of "+path+" would be set to 05/10/2023 14:30:00.") {
		t.Fatalf("expected planned creation, got %q", output)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(januaryFirst) {
		t.Fatalf("dry run changed mtime to %v", info.ModTime())
	}
}

func TestPromptReadsPathFromStdin(t *testing.T) {
	path := writePhoto(t, t.TempDir(), "IMG_0002.jpg", "2023:05:10 14:30:00", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local))

	output, err := execute(t, path+"\n", "-n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Enter the path to the image file: ") {
		t.Fatalf("expected prompt, got %q", output)
	}
	if strings.Contains(output, "Modification date of") {
		t.Fatalf("consistent file must not have its modification date changed: %q", output)
	}
	if !strings.Contains(output, "Creation date of "+path) {
		t.Fatalf("expected creation line, got %q", output)
	}
}

func TestEmptyPromptIsAnError(t *testing.T) {
	_, err := execute(t, "\n", "-n")
	if err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMissingTagMakesNoChanges(t *testing.T) {
	path := writePhoto(t, t.TempDir(), "IMG_0003.jpg", "", januaryFirst)

	output, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("expected exit 0 without --strict, got %v", err)
	}
	if !strings.Contains(output, "No EXIF DateTimeOriginal tag found") {
		t.Fatalf("expected missing tag message, got %q", output)
	}
	if !strings.Contains(output, "No changes made") {
		t.Fatalf("expected no changes line, got %q", output)
	}

	_, err = execute(t, "", "--strict", path)
	if !errors.Is(err, errStrict) {
		t.Fatalf("expected strict failure, got %v", err)
	}
}

func TestMalformedDateReportsParseError(t *testing.T) {
	path := writePhoto(t, t.TempDir(), "IMG_0004.jpg", "2023-05-10", januaryFirst)

	output, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Error parsing date") {
		t.Fatalf("expected parse error, got %q", output)
	}
	info, _ := os.Stat(path)
	if !info.ModTime().Equal(januaryFirst) {
		t.Fatalf("mtime changed to %v", info.ModTime())
	}
}

func TestNativeWriterBackdatesModification(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("creation date support differs per platform")
	}
	path := writePhoto(t, t.TempDir(), "IMG_0005.jpg", "2023:05:10 14:30:00", januaryFirst)

	output, err := execute(t, "", "--writer", "native", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	want := time.Date(2023, time.May, 10, 14, 30, 0, 0, time.Local)
	if !info.ModTime().Equal(want) {
		t.Fatalf("mtime %v, want %v", info.ModTime(), want)
	}
	if !strings.Contains(output, "not supported on this platform") {
		t.Fatalf("expected creation date to be reported unsupported, got %q", output)
	}

	_, err = execute(t, "", "--writer", "native", "--strict", path)
	if !errors.Is(err, errStrict) {
		t.Fatalf("expected strict failure, got %v", err)
	}
}

func TestInspectCommand(t *testing.T) {
	path := writePhoto(t, t.TempDir(), "IMG_0006.jpg", "2023:05:10 14:30:00", januaryFirst)

	output, err := execute(t, "", "inspect", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Capture date:  2023-05-10 14:30:00") {
		t.Fatalf("expected capture date, got %q", output)
	}
	if !strings.Contains(output, "Modified:      2023-01-01 00:00:00") {
		t.Fatalf("expected modification date, got %q", output)
	}
	if !strings.Contains(output, "predates") {
		t.Fatalf("expected inconsistency verdict, got %q", output)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("EXIFSTAMP_WRITER", "native")

	output, err := execute(t, "", "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "writer: native") {
		t.Fatalf("expected writer from env, got %q", output)
	}
	if !strings.Contains(output, "# config file: none") {
		t.Fatalf("expected no config file, got %q", output)
	}
}

func TestInvalidWriterIsConfigError(t *testing.T) {
	_, err := execute(t, "", "--writer", "touch", "a.jpg")
	if err == nil || !strings.Contains(err.Error(), "invalid writer") {
		t.Fatalf("expected invalid writer error, got %v", err)
	}
}

func TestCleanTypedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/photos/a.jpg\n", "/photos/a.jpg"},
		{"  /photos/a.jpg  ", "/photos/a.jpg"},
		{`"/photos/my trip/a.jpg"`, "/photos/my trip/a.jpg"},
		{`'/photos/my trip/a.jpg'`, "/photos/my trip/a.jpg"},
		{`/photos/my\ trip/a.jpg `, "/photos/my trip/a.jpg"},
		{"\n", ""},
	}
	for _, tt := range tests {
		if got := cleanTypedPath(tt.in); got != tt.want {
			t.Fatalf("cleanTypedPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
