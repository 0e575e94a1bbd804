package extract

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/ttesting"
)

func TestRunExportsAnimations(t *testing.T) {
	sh, _ := newTestSheet(t, 32, 32)
	ta := &atlas.TextureAtlas{
		Subs: []atlas.SubTexture{
			{Name: "run_02", X: 8, Y: 0, Width: 8, Height: 8},
			{Name: "run_01", X: 0, Y: 0, Width: 8, Height: 8},
			{Name: "idle", X: 16, Y: 0, Width: 8, Height: 8},
		},
	}
	outDir := t.TempDir()

	ex := Extractor{OutDir: outDir, GIF: true}
	if err := ex.Run(ta, sh); err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	f, err := os.Open(filepath.Join(outDir, "run.gif"))
	if err != nil {
		t.Fatalf("failed to open run.gif: %s", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("failed to decode run.gif: %s", err)
	}

	ttesting.AssertEqualInt(t, "frame count", len(g.Image), 2)
	ttesting.AssertImageSize(t, "frame size", g.Image[0], 8, 8)

	// A sprite that is not part of a numbered sequence gets no GIF.
	if _, err := os.Stat(filepath.Join(outDir, "idle.gif")); !os.IsNotExist(err) {
		t.Errorf("idle.gif exists; want GIFs only for frame sequences")
	}
}

func TestFrameGrouping(t *testing.T) {
	for _, tt := range []struct {
		stem, prefix, frame string
	}{
		{"player_walk_01", "player_walk", "01"},
		{"explosion3", "explosion", "3"},
		{"tile-17", "tile", "17"},
	} {
		m := frameRE.FindStringSubmatch(tt.stem)
		if m == nil {
			t.Errorf("%q did not match the frame pattern", tt.stem)
			continue
		}
		ttesting.AssertEqualString(t, tt.stem+" prefix", m[1], tt.prefix)
		ttesting.AssertEqualString(t, tt.stem+" frame", m[2], tt.frame)
	}

	if m := frameRE.FindStringSubmatch("idle"); m != nil {
		t.Errorf("%q matched the frame pattern; want no match", "idle")
	}
}
