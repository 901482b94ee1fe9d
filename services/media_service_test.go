package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, withAlpha bool) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			a := uint8(255)
			if withAlpha && x < 4 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: a})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploadConvertsToJPEG(t *testing.T) {
	s := NewMediaService(t.TempDir())

	result, err := s.Upload(pngBytes(t, false), "photo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.Filename, ".jpg"))
	assert.NotEqual(t, "photo.png", result.Filename)
	assert.Equal(t, "/media/projects/"+result.Filename, result.Path)

	stored, err := os.ReadFile(filepath.Join(s.root, mediaSubdir, result.Filename))
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestUploadFlattensTransparency(t *testing.T) {
	s := NewMediaService(t.TempDir())

	result, err := s.Upload(pngBytes(t, true), "transparent.png")
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(s.root, mediaSubdir, result.Filename))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(stored))
	require.NoError(t, err)

	// Fully transparent pixels become white-ish after flattening.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Greater(t, g>>8, uint32(200))
	assert.Greater(t, b>>8, uint32(200))
}

func TestUploadGeneratesDistinctNames(t *testing.T) {
	s := NewMediaService(t.TempDir())
	data := jpegBytes(t)

	first, err := s.Upload(data, "same.jpg")
	require.NoError(t, err)
	second, err := s.Upload(data, "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestUploadRejectsNonImage(t *testing.T) {
	s := NewMediaService(t.TempDir())

	_, err := s.Upload([]byte("definitely not an image"), "note.txt")
	assert.Error(t, err)
}

func TestDeleteRoundTrip(t *testing.T) {
	s := NewMediaService(t.TempDir())

	result, err := s.Upload(jpegBytes(t), "photo.jpg")
	require.NoError(t, err)

	assert.True(t, s.Delete(result.Path))
	// Second delete finds nothing.
	assert.False(t, s.Delete(result.Path))
}

func TestDeleteAbsentPath(t *testing.T) {
	s := NewMediaService(t.TempDir())

	assert.False(t, s.Delete("/media/projects/never-existed.jpg"))
	assert.False(t, s.Delete(""))
}
