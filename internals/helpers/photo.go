package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	photoMaxDim  = 512
	photoQuality = 80
)

// PhotoRoot is the on-disk directory served under /uploads.
var PhotoRoot = "uploads"

// SavePhoto decodes an uploaded image, fits it into a bounded square,
// re-encodes it as WebP and stores it keyed by the entity id. Returns the
// public path to put in the entity's photo column.
func SavePhoto(kind string, id int, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}
	img = imaging.Fit(img, photoMaxDim, photoMaxDim, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	dir := filepath.Join(PhotoRoot, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("photo dir: %w", err)
	}
	name := fmt.Sprintf("%d.webp", id)
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return "/uploads/" + kind + "/" + name, nil
}

// DeletePhoto removes a stored photo, best effort.
func DeletePhoto(kind string, id int) {
	_ = os.Remove(filepath.Join(PhotoRoot, kind, fmt.Sprintf("%d.webp", id)))
}

// DefaultPhoto picks the gender-dependent placeholder used when no file was
// uploaded.
func DefaultPhoto(kind, gender string) string {
	if gender == "f" {
		return "/uploads/" + kind + "/default_f.png"
	}
	return "/uploads/" + kind + "/default_m.png"
}
