package extract

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
)

// Names like "player_walk_01" or "explosion3" form frame sequences: a
// common prefix followed by a frame number.
var frameRE = regexp.MustCompile(`^(.*?)[_-]?([0-9]+)$`)

// Delay between animation frames, in 100ths of a second.
const frameDelay = 10

type animFrame struct {
	n   int
	img image.Image
}

// exportAnimations groups numbered subtextures into frame sequences and
// encodes each sequence of two or more frames as an animated GIF in the
// output directory. Subtextures that are not part of a sequence are left
// alone.
func exportAnimations(outDir string, crops []crop) error {
	groups := map[string][]animFrame{}
	order := []string{}
	for _, c := range crops {
		stem := strings.TrimSuffix(c.sub.FileName(), ".png")
		m := frameRE.FindStringSubmatch(stem)
		if m == nil || m[1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if _, ok := groups[m[1]]; !ok {
			order = append(order, m[1])
		}
		groups[m[1]] = append(groups[m[1]], animFrame{n: n, img: c.img})
	}

	for _, prefix := range order {
		frames := groups[prefix]
		if len(frames) < 2 {
			continue
		}
		if !sameSize(frames) {
			glog.Warningf("animation %q has mismatched frame sizes; skipping GIF export", prefix)
			continue
		}
		sort.SliceStable(frames, func(i, j int) bool { return frames[i].n < frames[j].n })

		path := filepath.Join(outDir, prefix+".gif")
		f, err := os.Create(path)
		if err != nil {
			return &WriteError{Name: prefix, Path: path, Err: err}
		}
		err = encodeAnimation(f, frames)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return &WriteError{Name: prefix, Path: path, Err: err}
		}
		glog.Infof("encoded animation %q (%d frames) to %s", prefix, len(frames), path)
	}
	return nil
}

func sameSize(frames []animFrame) bool {
	sz := frames[0].img.Bounds().Size()
	for _, fr := range frames[1:] {
		if fr.img.Bounds().Size() != sz {
			return false
		}
	}
	return true
}

// encodeAnimation writes the frames as an animated GIF with a transparent
// background. Each frame is quantized to at most 255 colors; the palette
// then gets color.Transparent prepended so that index 0 stays free for the
// background, and the frame is redrawn over it with draw.Over to keep the
// source alpha.
func encodeAnimation(w io.Writer, frames []animFrame) error {
	g := gif.GIF{}
	q := quantize.MedianCutQuantizer{}
	for _, fr := range frames {
		pal := q.Quantize(make([]color.Color, 0, 255), fr.img)

		palTransparent := image.NewPaletted(fr.img.Bounds(),
			append(color.Palette{color.Transparent}, pal...))
		draw.Draw(palTransparent, fr.img.Bounds(), fr.img, image.Point{}, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, frameDelay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return gif.EncodeAll(w, &g)
}
