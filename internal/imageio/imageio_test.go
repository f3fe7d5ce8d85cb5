package imageio

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/renderer"
)

func testFramebuffer() *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(4, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 1, 0))
	fb.Set(2, 0, core.NewVec3(0, 0, 1))
	fb.Set(3, 0, core.NewVec3(2, 2, 2)) // over-range, must clamp
	fb.Set(0, 1, core.NewVec3(0.25, 0.25, 0.25))
	return fb
}

func TestToImage(t *testing.T) {
	img := ToImage(testFramebuffer())

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 2 {
		t.Fatalf("Expected 4x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Pure red stays red after gamma
	red := img.RGBAAt(0, 0)
	if red.R != 255 || red.G != 0 || red.B != 0 || red.A != 255 {
		t.Errorf("Expected pure red, got %+v", red)
	}

	// Over-range values clamp instead of wrapping
	white := img.RGBAAt(3, 0)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("Expected clamped white, got %+v", white)
	}

	// Gamma 2 maps linear 0.25 to 0.5
	gray := img.RGBAAt(0, 1)
	if gray.R != 128 {
		t.Errorf("Expected gamma-corrected value 128, got %d", gray.R)
	}
}

func TestEncode_AllFormats(t *testing.T) {
	fb := testFramebuffer()

	for _, format := range SupportedFormats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, fb, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("Expected non-empty output")
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFramebuffer(), "exr"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestEncode_PNGRoundTrip(t *testing.T) {
	fb := testFramebuffer()

	var buf bytes.Buffer
	if err := Encode(&buf, fb, "png"); err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != fb.Width || decoded.Bounds().Dy() != fb.Height {
		t.Errorf("Expected %dx%d, got %v", fb.Width, fb.Height, decoded.Bounds())
	}
}
