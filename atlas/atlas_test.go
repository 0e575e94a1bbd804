package atlas

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"badc0de.net/pkg/go-atlas/ttesting"
)

const kenneyDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<TextureAtlas imagePath="spritesheet.png">
	<SubTexture name="coin.png" x="0" y="0" width="16" height="16"/>
	<SubTexture name="gem" x="16" y="0" width="16" height="16"/>
	<SubTexture name="player_walk_01" x="0" y="16" width="24" height="32"/>
</TextureAtlas>`

func TestReadAtlas(t *testing.T) {
	ta, err := ReadAtlas(strings.NewReader(kenneyDescriptor))
	if err != nil {
		t.Fatalf("failed to read descriptor: %s", err)
	}

	ttesting.AssertEqualString(t, "imagePath", ta.ImagePath, "spritesheet.png")
	ttesting.AssertEqualInt(t, "subtexture count", len(ta.Subs), 3)

	// Document order must be preserved.
	ttesting.AssertEqualString(t, "first name", ta.Subs[0].Name, "coin.png")
	ttesting.AssertEqualString(t, "second name", ta.Subs[1].Name, "gem")
	ttesting.AssertEqualString(t, "third name", ta.Subs[2].Name, "player_walk_01")

	want := image.Rect(0, 16, 24, 48)
	if got := ta.Subs[2].Rect(); got != want {
		t.Errorf("Rect() = %v; want %v", got, want)
	}
}

func TestFileName(t *testing.T) {
	ttesting.AssertEqualString(t, "suffix kept",
		SubTexture{Name: "coin.png"}.FileName(), "coin.png")
	ttesting.AssertEqualString(t, "suffix appended",
		SubTexture{Name: "gem"}.FileName(), "gem.png")
}

func TestReadAtlasErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		xml  string
		sub  string // expected ParseError.Sub
	}{
		{
			name: "malformed xml",
			xml:  `<TextureAtlas><SubTexture`,
		},
		{
			name: "missing name",
			xml:  `<TextureAtlas><SubTexture x="0" y="0" width="1" height="1"/></TextureAtlas>`,
		},
		{
			name: "missing x",
			xml:  `<TextureAtlas><SubTexture name="coin" y="0" width="1" height="1"/></TextureAtlas>`,
			sub:  "coin",
		},
		{
			name: "non-numeric width",
			xml:  `<TextureAtlas><SubTexture name="coin" x="0" y="0" width="wide" height="1"/></TextureAtlas>`,
			sub:  "coin",
		},
		{
			name: "negative y",
			xml:  `<TextureAtlas><SubTexture name="coin" x="0" y="-3" width="1" height="1"/></TextureAtlas>`,
			sub:  "coin",
		},
		{
			name: "zero height",
			xml:  `<TextureAtlas><SubTexture name="coin" x="0" y="0" width="1" height="0"/></TextureAtlas>`,
			sub:  "coin",
		},
		{
			name: "name escapes output dir",
			xml:  `<TextureAtlas><SubTexture name="../coin" x="0" y="0" width="1" height="1"/></TextureAtlas>`,
			sub:  "../coin",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAtlas(bytes.NewReader([]byte(tt.xml)))
			if err == nil {
				t.Fatalf("got nil error, want ParseError")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("got %T (%v), want *ParseError", err, err)
			}
			if pe.Sub != tt.sub {
				t.Errorf("ParseError.Sub = %q; want %q", pe.Sub, tt.sub)
			}
		})
	}
}

func TestReadAtlasFileMissing(t *testing.T) {
	_, err := ReadAtlasFile("testdata/no-such-descriptor.xml")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %T (%v), want *ParseError", err, err)
	}
	if pe.Path == "" {
		t.Errorf("ParseError.Path is empty; want the descriptor path")
	}
}
