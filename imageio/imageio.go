// Package imageio loads image files into sample streams and saves sample
// streams back as images.
//
// Any format registered with the image package can be loaded (PNG, JPEG,
// GIF, BMP, TIFF, WebP). Only lossless formats can be saved, because lossy
// encoders destroy the least-significant bits that carry the message.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/Optimusprime44/Steganography/samples"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrLossyFormat       = errors.New("image format does not preserve least-significant bits")
)

// Load decodes the image file at path. It also returns the format name
// reported by the decoder.
func Load(path string) (*samples.Stream, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an image from r.
func Decode(r io.Reader) (*samples.Stream, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return samples.FromImage(img), format, nil
}

// Save encodes s in the format implied by the extension of path.
// The file is created or truncated.
func Save(path string, s *samples.Stream) error {
	format, err := FormatFor(path, s.Channels())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := Encode(f, s, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image: %w", err)
	}
	return nil
}

// Encode writes s to w as format ("png", "bmp" or "tiff").
func Encode(w io.Writer, s *samples.Stream, format string) error {
	img := s.Image()
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// FormatFor is Format for a stream with the given number of channels.
// BMP is rejected for four channels: the decoder drops alpha, so the
// stream would reload with a different layout.
func FormatFor(path string, channels int) (string, error) {
	format, err := Format(path)
	if err != nil {
		return "", err
	}
	if format == "bmp" && channels == 4 {
		return "", fmt.Errorf("%w: bmp does not keep the alpha channel", ErrLossyFormat)
	}
	return format, nil
}

// Format returns the output format for path based on its extension.
func Format(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".jpg", ".jpeg", ".gif", ".webp":
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, ext)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
