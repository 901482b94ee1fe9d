package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	_ "golang.org/x/image/webp" // WebP decoder
)

const (
	jpegQuality   = 85
	mediaSubdir   = "projects"
	maxUploadSize = 10 << 20 // 10MB
)

// UploadResult carries the stored filename and the path to persist on the
// owning document.
type UploadResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// MediaService transcodes uploaded images to JPEG at a fixed quality and
// stores them under a generated name in the media root.
type MediaService struct {
	root string
}

func NewMediaService(root string) *MediaService {
	return &MediaService{root: root}
}

func (s *MediaService) MaxUploadSize() int64 { return maxUploadSize }

// Upload decodes the raw image, flattens any transparency onto white (JPEG
// carries no alpha channel), re-encodes at the fixed quality and writes the
// result under a fresh random name. The returned path is what owning
// documents store.
func (s *MediaService) Upload(data []byte, originalName string) (*UploadResult, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", originalName, err)
	}

	img = flatten(img)

	dir := filepath.Join(s.root, mediaSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	filename := uuid.New().String() + ".jpg"
	fullPath := filepath.Join(dir, filename)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write media file: %w", err)
	}

	log.Printf("Stored %s as %s", originalName, filename)

	return &UploadResult{
		Filename: filename,
		Path:     "/media/" + mediaSubdir + "/" + filename,
	}, nil
}

// Delete removes the file behind a stored path. Only the filename component
// is trusted; the on-disk location is derived from the media root. A missing
// file reports false rather than an error.
func (s *MediaService) Delete(path string) bool {
	if path == "" {
		return false
	}

	filename := filepath.Base(path)
	fullPath := filepath.Join(s.root, mediaSubdir, filename)

	if _, err := os.Stat(fullPath); err != nil {
		return false
	}
	if err := os.Remove(fullPath); err != nil {
		log.Printf("Failed to delete file %s: %v", fullPath, err)
		return false
	}
	return true
}

// flatten composites the image over a white background, dropping any alpha.
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}
