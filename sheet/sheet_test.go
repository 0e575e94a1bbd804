package sheet

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/ttesting"
)

// testSheet builds a w×h gradient image (every pixel distinct for small
// sizes) and round-trips it through the PNG decoder.
func testSheet(t *testing.T, w, h int) (*Sheet, *image.RGBA) {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x ^ y), A: 0xFF})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, src); err != nil {
		t.Fatalf("failed to encode test sheet: %s", err)
	}
	sh, err := Load(buf)
	if err != nil {
		t.Fatalf("failed to load test sheet: %s", err)
	}
	return sh, src
}

func TestCrop(t *testing.T) {
	sh, src := testSheet(t, 32, 32)

	sub := atlas.SubTexture{Name: "coin", X: 4, Y: 8, Width: 16, Height: 12}
	img, err := sh.Crop(sub)
	if err != nil {
		t.Fatalf("failed to crop: %s", err)
	}

	ttesting.AssertImageSize(t, "crop size", img, 16, 12)
	ttesting.AssertSamePixels(t, "crop pixels", img,
		src.SubImage(image.Rect(4, 8, 20, 20)))
}

func TestCropFullSheet(t *testing.T) {
	sh, src := testSheet(t, 8, 8)

	img, err := sh.Crop(atlas.SubTexture{Name: "all", Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("failed to crop: %s", err)
	}
	ttesting.AssertSamePixels(t, "full-sheet crop", img, src)
}

func TestCropBounds(t *testing.T) {
	sh, _ := testSheet(t, 32, 32)

	for _, tt := range []struct {
		name string
		sub  atlas.SubTexture
	}{
		{"wide", atlas.SubTexture{Name: "wide", X: 20, Y: 0, Width: 16, Height: 16}},
		{"tall", atlas.SubTexture{Name: "tall", X: 0, Y: 30, Width: 4, Height: 4}},
		{"off-sheet", atlas.SubTexture{Name: "off-sheet", X: 40, Y: 40, Width: 1, Height: 1}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sh.Crop(tt.sub)
			var be *BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("got %T (%v), want *BoundsError", err, err)
			}
			if be.Name != tt.sub.Name {
				t.Errorf("BoundsError.Name = %q; want %q", be.Name, tt.sub.Name)
			}
		})
	}
}

func TestLoadNotAnImage(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("<TextureAtlas/>")))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("got %T (%v), want *LoadError", err, err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/no-such-sheet.png")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("got %T (%v), want *LoadError", err, err)
	}
	if le.Path == "" {
		t.Errorf("LoadError.Path is empty; want the image path")
	}
}
