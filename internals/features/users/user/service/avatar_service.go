package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"mosque_backend/internals/configs"
)

// AvatarService normalizes the profile picture a member uploads:
// decode (jpeg/png/webp), downscale to a bounded box, re-encode as WebP
// and store it under the local upload dir.
type AvatarService struct {
	Dir     string
	MaxW    int
	MaxH    int
	Quality float32
}

func NewAvatarService() *AvatarService {
	return &AvatarService{
		Dir:     configs.AvatarDir,
		MaxW:    512,
		MaxH:    512,
		Quality: 80,
	}
}

// SaveUpload converts the uploaded file and returns the public URL path
// stored on the profile.
func (s *AvatarService) SaveUpload(userID uuid.UUID, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("failed to read uploaded image: %w", err)
	}

	out, err := s.ConvertToWebP(buf.Bytes(), fileHeader.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create avatar dir: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.webp", userID.String(), uuid.NewString()[:8])
	fullPath := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(fullPath, out, 0o644); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	return "/" + filepath.ToSlash(fullPath), nil
}

// Remove deletes a previously stored avatar by its URL path, so replaced
// avatars do not pile up on disk. Best effort; paths outside the upload
// dir are refused.
func (s *AvatarService) Remove(urlPath string) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return
	}
	path := filepath.Clean(filepath.FromSlash(rel))
	dir := filepath.Clean(s.Dir)
	if !strings.HasPrefix(path, dir+string(filepath.Separator)) {
		return
	}
	_ = os.Remove(path)
}

// ConvertToWebP decodes, fits into MaxW x MaxH (aspect kept, never
// upscaled) and encodes lossy WebP.
func (s *AvatarService) ConvertToWebP(data []byte, filename string) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}

	if s.MaxW > 0 && s.MaxH > 0 {
		b := img.Bounds()
		if b.Dx() > s.MaxW || b.Dy() > s.MaxH {
			img = imaging.Fit(img, s.MaxW, s.MaxH, imaging.Lanczos)
		}
	}

	q := s.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   Decode (jpeg/png/webp) from []byte with MIME sniffing
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("unsupported image format: %s / %s", ct, ext)
		}
	}
	return img, err
}
