package ttesting

import (
	"image"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

// AssertImageSize checks the pixel dimensions of an image.
func AssertImageSize(t *testing.T, name string, got image.Image, wantW, wantH int) {
	t.Run(name, func(t *testing.T) {
		sz := got.Bounds().Size()
		if sz.X != wantW || sz.Y != wantH {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, wantW, wantH)
		}
	})
}

// AssertSamePixels compares two images pixel by pixel, each in its own
// coordinate space. Differing dimensions fail immediately; only the first
// few differing pixels are reported individually.
func AssertSamePixels(t *testing.T, name string, got, want image.Image) {
	t.Run(name, func(t *testing.T) {
		gsz, wsz := got.Bounds().Size(), want.Bounds().Size()
		if gsz != wsz {
			t.Fatalf("got %dx%d; want %dx%d", gsz.X, gsz.Y, wsz.X, wsz.Y)
		}
		diffs := 0
		for y := 0; y < gsz.Y; y++ {
			for x := 0; x < gsz.X; x++ {
				gc := got.At(got.Bounds().Min.X+x, got.Bounds().Min.Y+y)
				wc := want.At(want.Bounds().Min.X+x, want.Bounds().Min.Y+y)
				gr, gg, gb, ga := gc.RGBA()
				wr, wg, wb, wa := wc.RGBA()
				if gr != wr || gg != wg || gb != wb || ga != wa {
					if diffs < 5 {
						t.Errorf("pixel (%d,%d): got %v; want %v", x, y, gc, wc)
					}
					diffs++
				}
			}
		}
		if diffs > 5 {
			t.Errorf("%d differing pixels in total", diffs)
		}
	})
}
