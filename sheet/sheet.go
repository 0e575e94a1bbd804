package sheet

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	// Formats the atlas image may arrive in. PNG is what the Kenney packs
	// ship; the others come for free with the stdlib decoder registry.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"badc0de.net/pkg/go-atlas/atlas"
)

// Sheet is a decoded atlas image.
type Sheet struct {
	img image.Image
}

// LoadError describes an atlas image that could not be loaded: a missing
// file or an undecodable format.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sheet: loading %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("sheet: loading atlas image: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// BoundsError describes a subtexture whose rectangle does not lie within
// the atlas image.
type BoundsError struct {
	Name   string
	Rect   image.Rectangle
	Bounds image.Rectangle
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sheet: subtexture %q rect %v outside atlas bounds %v",
		e.Name, e.Rect, e.Bounds)
}

// Load decodes an atlas image from the passed reader.
func Load(r io.Reader) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return &Sheet{img: img}, nil
}

// LoadFile opens and decodes an atlas image file.
func LoadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sh, err := Load(f)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return sh, nil
}

// Bounds returns the atlas image bounds. For decoded images the minimum is
// (0,0), which is also the coordinate space subtexture rectangles use.
func (s *Sheet) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Crop copies the subtexture's rectangle out of the sheet.
//
// The crop is returned as a fresh RGBA image with bounds starting at (0,0).
// A rectangle not fully inside the sheet yields a BoundsError naming the
// subtexture.
func (s *Sheet) Crop(sub atlas.SubTexture) (image.Image, error) {
	r := sub.Rect()
	if !r.In(s.img.Bounds()) {
		return nil, &BoundsError{Name: sub.Name, Rect: r, Bounds: s.img.Bounds()}
	}

	dst := image.NewRGBA(image.Rect(0, 0, sub.Width, sub.Height))
	draw.Draw(dst, dst.Bounds(), s.img, r.Min, draw.Src)
	return dst, nil
}
