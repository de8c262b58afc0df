package steganography_test

import (
	"context"
	"fmt"
	"image"
	"image/color"

	steganography "github.com/Optimusprime44/Steganography"
)

func ExampleEmbed() {
	// 8 bits for 'A' plus 16 marker bits
	samples := []uint8{10, 11, 12, 13, 14, 15, 16, 17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	out, err := steganography.Embed(samples, "A")
	if err != nil {
		fmt.Printf("Error embedding: %v\n", err)
		return
	}
	fmt.Println(out[:8])

	text, err := steganography.Extract(out)
	if err != nil {
		fmt.Printf("Error extracting: %v\n", err)
		return
	}
	fmt.Println(text)
	// Output:
	// [10 11 12 12 14 14 16 17]
	// A
}

func ExampleEmbedImage() {
	// Create a simple gradient image (100x100 pixels)
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			r := uint8(x * 255 / 100)
			g := uint8(y * 255 / 100)
			b := uint8((x + y) * 255 / 200)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	ctx := context.Background()
	marked, err := steganography.EmbedImage(ctx, img, "Test-Mark")
	if err != nil {
		fmt.Printf("Error embedding: %v\n", err)
		return
	}

	text, err := steganography.ExtractImage(ctx, marked)
	if err != nil {
		fmt.Printf("Error extracting: %v\n", err)
		return
	}
	fmt.Println(text)
	fmt.Println(steganography.Capacity(100 * 100 * 3))
	// Output:
	// Test-Mark
	// 3748
}
