package steganography

import (
	"context"
	"image"

	"github.com/Optimusprime44/Steganography/samples"
)

// EmbedImage flattens src into samples, embeds text and rebuilds the image.
// src is not modified.
//
// The returned image is an *image.Gray or *image.NRGBA with the bounds of src.
// It must be stored losslessly for ExtractImage to find the message again.
//
// For images with transparency the alpha LSBs are part of the stream. The
// marker's trailing 0 always lands on an alpha sample, so the result is never
// fully opaque and reads back with the same four-channel layout.
func EmbedImage(ctx context.Context, src image.Image, text string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := samples.FromImage(src)
	if _, err := Embed(s.Samples, text); err != nil {
		return nil, err
	}
	return s.Image(), nil
}

// ExtractImage flattens src into samples and extracts the hidden text.
func ExtractImage(ctx context.Context, src image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Extract(samples.FromImage(src).Samples)
}
