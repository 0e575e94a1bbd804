// Package atlas contains functionality for reading TexturePacker-compatible
// TextureAtlas XML descriptors, such as the ones shipped with the Kenney
// asset packs.
package atlas

import (
	"encoding/xml"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
)

// TextureAtlas is the parsed form of a TextureAtlas XML descriptor.
//
// Subs preserves document order. Order carries no meaning downstream, but
// keeping it makes output (and the regenerated sheet layout) deterministic.
type TextureAtlas struct {
	// ImagePath is the value of the root element's imagePath attribute,
	// if the descriptor carries one. It is advisory: the atlas image to
	// use is always passed explicitly.
	ImagePath string

	Subs []SubTexture
}

// SubTexture is a single named rectangle within the atlas image.
//
// Coordinates are in atlas pixel space, anchored top-left.
type SubTexture struct {
	Name          string
	X, Y          int
	Width, Height int
}

// Rect returns the subtexture's rectangle in atlas pixel space.
func (s SubTexture) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
}

// FileName returns the output filename for the subtexture. A ".png" suffix
// is appended unless the descriptor name already carries one; Kenney
// descriptors list names both ways.
func (s SubTexture) FileName() string {
	if strings.HasSuffix(s.Name, ".png") {
		return s.Name
	}
	return s.Name + ".png"
}

// ParseError describes a descriptor that could not be read: a missing or
// unreadable file, malformed XML, or a SubTexture element with missing or
// non-numeric attributes.
type ParseError struct {
	Path   string // descriptor path, when read from a file
	Sub    string // offending subtexture name, when known
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "atlas: " + e.Reason
	if e.Sub != "" {
		msg = fmt.Sprintf("atlas: subtexture %q: %s", e.Sub, e.Reason)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (in %q)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rawSub keeps every attribute as a string so that an absent attribute can
// be told apart from a legitimate zero before conversion.
type rawSub struct {
	Name   string `xml:"name,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

type rawAtlas struct {
	XMLName   xml.Name `xml:"TextureAtlas"`
	ImagePath string   `xml:"imagePath,attr"`
	Subs      []rawSub `xml:"SubTexture"`
}

// ReadAtlas parses a TextureAtlas descriptor from the passed reader.
func ReadAtlas(r io.Reader) (*TextureAtlas, error) {
	dec := xml.NewDecoder(r)
	raw := rawAtlas{}
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Reason: "malformed descriptor", Err: err}
	}

	ta := &TextureAtlas{
		ImagePath: raw.ImagePath,
		Subs:      make([]SubTexture, 0, len(raw.Subs)),
	}
	for _, rs := range raw.Subs {
		sub, err := rs.convert()
		if err != nil {
			return nil, err
		}
		ta.Subs = append(ta.Subs, sub)
	}
	return ta, nil
}

// ReadAtlasFile opens and parses a TextureAtlas descriptor file.
func ReadAtlasFile(path string) (*TextureAtlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "opening descriptor", Err: err}
	}
	defer f.Close()

	ta, err := ReadAtlas(f)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return ta, nil
}

func (rs rawSub) convert() (SubTexture, error) {
	sub := SubTexture{Name: rs.Name}
	if rs.Name == "" {
		return sub, &ParseError{Reason: "missing name attribute"}
	}
	// The name becomes an output filename; anything that escapes the
	// output directory is rejected rather than written through.
	if strings.ContainsAny(rs.Name, `/\`) || rs.Name == ".." {
		return sub, &ParseError{Sub: rs.Name, Reason: "name is not a plain filename"}
	}

	var err error
	if sub.X, err = attrValue(rs.Name, "x", rs.X, 0); err != nil {
		return sub, err
	}
	if sub.Y, err = attrValue(rs.Name, "y", rs.Y, 0); err != nil {
		return sub, err
	}
	if sub.Width, err = attrValue(rs.Name, "width", rs.Width, 1); err != nil {
		return sub, err
	}
	if sub.Height, err = attrValue(rs.Name, "height", rs.Height, 1); err != nil {
		return sub, err
	}
	return sub, nil
}

func attrValue(sub, attr, s string, min int) (int, error) {
	if s == "" {
		return 0, &ParseError{Sub: sub, Reason: "missing " + attr + " attribute"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Sub: sub, Reason: "non-numeric " + attr + " attribute", Err: err}
	}
	if n < min {
		return 0, &ParseError{Sub: sub, Reason: fmt.Sprintf("%s attribute %d out of range (want >= %d)", attr, n, min)}
	}
	return n, nil
}
