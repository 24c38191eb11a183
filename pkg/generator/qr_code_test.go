package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 999, time.UTC)
	assert.Equal(t, "QRCode_20240307090503.png", FileName(ts))
	assert.Regexp(t, regexp.MustCompile(`^QRCode_\d{14}\.png$`), FileName(time.Now()))
}

func TestOutputPath(t *testing.T) {
	out := NewOutput("/work", "qr_codes")
	assert.Equal(t, filepath.Join("/work", "qr_codes"), out.Dir)

	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, filepath.Join("/work", "qr_codes", "QRCode_20240102030405.png"), out.Path(ts))
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirUnderFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := EnsureDir(filepath.Join(file, "sub"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale"), 1000), 0644))
	require.NoError(t, SavePNG(path, buf.Bytes()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	r, _, _, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestSavePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := SavePNG(path, []byte{0x89, 'P', 'N', 'G'})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
