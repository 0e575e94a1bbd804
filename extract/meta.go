package extract

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"badc0de.net/pkg/go-atlas/atlas"
)

// SpriteMeta is one sprite's entry in the YAML index written next to the
// extracted files. Field order mirrors the descriptor attributes.
type SpriteMeta struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// IndexFor builds the YAML index entries for a descriptor, in descriptor
// order.
func IndexFor(ta *atlas.TextureAtlas) []SpriteMeta {
	idx := make([]SpriteMeta, 0, len(ta.Subs))
	for _, sub := range ta.Subs {
		idx = append(idx, SpriteMeta{
			Name:   sub.Name,
			File:   sub.FileName(),
			X:      sub.X,
			Y:      sub.Y,
			Width:  sub.Width,
			Height: sub.Height,
		})
	}
	return idx
}

func indexBytes(ta *atlas.TextureAtlas) ([]byte, error) {
	out, err := yaml.Marshal(IndexFor(ta))
	if err != nil {
		return nil, errors.Wrap(err, "marshaling sprite index")
	}
	return out, nil
}

func writeIndex(path string, ta *atlas.TextureAtlas) error {
	out, err := indexBytes(ta)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return &WriteError{Path: path, Err: errors.Wrap(err, "writing sprite index")}
	}
	return nil
}
