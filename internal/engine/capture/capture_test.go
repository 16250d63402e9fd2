package capture

import (
	"image/png"
	"os"
	"testing"
)

func TestSavePixelsFlipsVertically(t *testing.T) {
	sc := NewScreenshot(t.TempDir(), "test")

	// 1x2 image: bottom row red, top row blue (GL order, bottom first).
	pixels := []byte{
		255, 0, 0, 255, // row 0 (bottom)
		0, 0, 255, 255, // row 1 (top)
	}

	path, err := sc.SavePixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SavePixels failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	// Image top row must be the GL top row (blue).
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("top pixel = (r=%d, b=%d), want blue", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom pixel = (r=%d, b=%d), want red", r, b)
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshot(t.TempDir(), "test")
	if _, err := sc.SavePixels([]byte{0, 0, 0}, 2, 2); err == nil {
		t.Fatal("expected error for short pixel buffer, got nil")
	}
}
