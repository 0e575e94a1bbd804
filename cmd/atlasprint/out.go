package main

import (
	"image"

	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-atlas/imageprint"
)

func out(name string, img image.Image) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (*rasTerm || *iterm) {
				// Prefer the native pixel size when there's a chance
				// an actual image gets printed rather than cells.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				img = resize.Thumbnail(termSize.WSRow/2, termSize.WSCol/2, img, resize.Lanczos3)
			}
		}
	}

	p := imageprint.Printer{Mode: imageprint.Mode24Bit, Blanks: *blanks}
	switch {
	case *rasTerm:
		p.Mode = imageprint.ModeRasTerm
	case *iterm:
		p.Mode = imageprint.ModeITerm
	case *col256:
		p.Mode = imageprint.Mode256Color
	}
	p.Print(name, img)
}
