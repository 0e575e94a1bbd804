// Package extract writes the subtextures of a parsed atlas descriptor out
// as individual PNG files, one per SubTexture, named after the subtexture.
//
// The run is a single sequential pass and fails on the first error. Files
// already present in the output directory are overwritten without warning;
// re-running with the same inputs reproduces the same output.
package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/sheet"
)

// WriteError describes an output directory or file that could not be
// written.
type WriteError struct {
	Name string // subtexture name, when the failure concerns one sprite
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("extract: writing subtexture %q to %q: %v", e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("extract: writing %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Extractor holds the output configuration for one extraction run.
//
// Only OutDir is required; the remaining fields switch on the optional
// outputs.
type Extractor struct {
	// OutDir is the destination directory. Created if absent.
	OutDir string

	// MetaPath, when set, receives a YAML index of the extracted
	// sprites, in descriptor order.
	MetaPath string

	// ResourcePath, when set, receives a bbolt resource file with the
	// sprite PNGs under the "sprites" bucket and the YAML index under
	// the "atlas" bucket.
	ResourcePath string

	// GIF additionally encodes numbered frame sequences ("walk_01",
	// "walk_02", ...) as animated GIFs in OutDir.
	GIF bool
}

// crop keeps one extracted sprite around for the optional outputs, so the
// atlas is cropped exactly once per subtexture.
type crop struct {
	sub atlas.SubTexture
	img image.Image
	png []byte
}

// Run crops every subtexture out of the sheet and writes it into OutDir.
//
// The first parse, bounds or write failure aborts the run; a subtexture
// whose rectangle fails the bounds check produces no output file at all,
// since the PNG is fully encoded in memory before anything is created on
// disk.
func (e *Extractor) Run(ta *atlas.TextureAtlas, sh *sheet.Sheet) error {
	if err := os.MkdirAll(e.OutDir, 0755); err != nil {
		return &WriteError{Path: e.OutDir, Err: errors.Wrap(err, "creating output directory")}
	}

	crops := make([]crop, 0, len(ta.Subs))
	seen := map[string]bool{}
	for _, sub := range ta.Subs {
		fn := sub.FileName()
		if seen[fn] {
			glog.Warningf("duplicate subtexture name %q; later entry overwrites the earlier one", fn)
		}
		seen[fn] = true

		img, err := sh.Crop(sub)
		if err != nil {
			return err
		}

		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return &WriteError{Name: sub.Name, Path: fn, Err: err}
		}
		path := filepath.Join(e.OutDir, fn)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return &WriteError{Name: sub.Name, Path: path, Err: err}
		}
		glog.Infof("extracted %q (%dx%d) to %s", sub.Name, sub.Width, sub.Height, path)

		crops = append(crops, crop{sub: sub, img: img, png: buf.Bytes()})
	}

	if e.MetaPath != "" {
		if err := writeIndex(e.MetaPath, ta); err != nil {
			return err
		}
	}
	if e.ResourcePath != "" {
		if err := writeResource(e.ResourcePath, ta, crops); err != nil {
			return err
		}
	}
	if e.GIF {
		if err := exportAnimations(e.OutDir, crops); err != nil {
			return err
		}
	}

	glog.Infof("extracted %d subtextures to %s", len(crops), e.OutDir)
	return nil
}
