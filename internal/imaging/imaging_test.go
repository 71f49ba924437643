package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestThumbnailJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	thumb, err := Thumbnail(data, ThumbSize)
	if err != nil {
		t.Fatalf("Thumbnail JPEG: %v", err)
	}
	if len(thumb) == 0 {
		t.Error("expected non-empty thumbnail")
	}
}

func TestThumbnailPNGOutputsJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	thumb, err := Thumbnail(data, ThumbSize)
	if err != nil {
		t.Fatalf("Thumbnail PNG: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}
}

func TestThumbnailDownscales(t *testing.T) {
	data := createTestJPEG(800, 400)
	thumb, err := Thumbnail(data, 200)
	if err != nil {
		t.Fatalf("Thumbnail large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("expected 200x100 (aspect preserved), got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailDoesNotUpscale(t *testing.T) {
	data := createTestJPEG(50, 50)
	thumb, err := Thumbnail(data, 200)
	if err != nil {
		t.Fatalf("Thumbnail small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailRejectsNonImage(t *testing.T) {
	_, err := Thumbnail([]byte("not an image"), ThumbSize)
	if err == nil {
		t.Error("expected error for undecodable bytes")
	}
}
