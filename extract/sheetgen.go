package extract

import (
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/sheet"
)

// GenerateSheet re-packs the atlas onto a uniform grid and writes it to
// outPath as a PNG.
//
// Every grid cell is sized to the largest subtexture in the descriptor;
// the cell count per row is the near-square layout picked by the wider of
// the two cell dimensions. Subtextures are placed in descriptor order,
// each at the top-left of its cell.
func GenerateSheet(ta *atlas.TextureAtlas, sh *sheet.Sheet, outPath string) error {
	if len(ta.Subs) == 0 {
		glog.Warningf("descriptor lists no subtextures; not generating %s", outPath)
		return nil
	}

	cellW, cellH := 0, 0
	for _, sub := range ta.Subs {
		if sub.Width > cellW {
			cellW = sub.Width
		}
		if sub.Height > cellH {
			cellH = sub.Height
		}
	}

	n := len(ta.Subs)
	var cols, rows int
	if cellW >= cellH {
		cols = int(math.Sqrt(float64(n)))
		if cols < 1 {
			cols = 1
		}
		rows = n/cols + 1
	} else {
		rows = int(math.Sqrt(float64(n)))
		if rows < 1 {
			rows = 1
		}
		cols = n/rows + 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	for i, sub := range ta.Subs {
		img, err := sh.Crop(sub)
		if err != nil {
			return err
		}
		x := (i % cols) * cellW
		y := (i / cols) * cellH
		r := image.Rect(x, y, x+sub.Width, y+sub.Height)
		draw.Draw(dst, r, img, image.Point{}, draw.Over)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return &WriteError{Path: outPath, Err: errors.Wrap(err, "creating sheet")}
	}
	err = png.Encode(f, dst)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &WriteError{Path: outPath, Err: errors.Wrap(err, "encoding sheet")}
	}
	glog.Infof("generated %dx%d sheet (%dx%d cells) at %s", cols*cellW, rows*cellH, cols, rows, outPath)
	return nil
}
