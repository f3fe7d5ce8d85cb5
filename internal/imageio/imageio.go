// Package imageio converts linear framebuffers into encoded image files.
// The renderer core produces pre-gamma radiance; everything display-related
// (gamma, clamping, quantization, file formats) lives here.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/renderer"
)

// Display gamma applied before quantization
const gamma = 2.0

// ToImage converts a linear framebuffer into an 8-bit RGBA image, applying
// gamma correction and clamping
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, toRGBA(fb.At(x, y)))
		}
	}
	return img
}

// toRGBA quantizes one linear color value to 8 bits per channel
func toRGBA(c core.Vec3) color.RGBA {
	corrected := c.GammaCorrect(gamma).Clamp(0.0, 0.999)
	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}

// Encode writes the framebuffer to w in the named format.
// Supported formats: png, jpg/jpeg, gif, bmp, tiff.
func Encode(w io.Writer, fb *renderer.Framebuffer, format string) error {
	img := ToImage(fb)

	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format: %s", format)
	}
}

// SupportedFormats lists the formats Encode accepts
func SupportedFormats() []string {
	return []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff"}
}
