package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timestampLayout = "20060102150405"

// Output is the directory QR code files are written to
type Output struct {
	Dir string
}

func NewOutput(workDir, dir string) *Output {
	return &Output{
		Dir: filepath.Join(workDir, dir),
	}
}

// Path returns the target file for a QR code generated at t
func (o *Output) Path(t time.Time) string {
	return filepath.Join(o.Dir, FileName(t))
}

// FileName is unique per second; same-second files overwrite each other
func FileName(t time.Time) string {
	return fmt.Sprintf("QRCode_%s.png", t.Format(timestampLayout))
}

// EnsureDir creates path and any missing parents. Existing directories are fine.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", path, err)
	}
	return nil
}

// SavePNG writes encoded PNG data to path, truncating any existing file
func SavePNG(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open QR code file: %w", err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = fmt.Errorf("failed to close QR code file: %w", errClose)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write QR code file: %w", err)
	}
	return nil
}
