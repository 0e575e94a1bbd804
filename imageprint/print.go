// Package imageprint previews sprite crops on the terminal. UNSUPPORTED
// debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// Mode selects the terminal rendering technique.
type Mode int

const (
	// ModeAuto probes for kitty/iTerm2/sixel support and falls back to
	// 24-bit cells.
	ModeAuto Mode = iota
	Mode24Bit
	Mode256Color
	ModeNoColor
	ModeITerm
	ModeRasTerm
)

// Printer renders sprites to stdout.
type Printer struct {
	Mode Mode

	// Blanks renders each pixel as two colored spaces instead of
	// brightness-ramp ascii art.
	Blanks bool
}

// Print renders the sprite preceded by a caption line with its name and
// pixel dimensions.
func (p Printer) Print(name string, img image.Image) {
	sz := img.Bounds().Size()
	fmt.Printf("%s (%dx%d)\n", name, sz.X, sz.Y)

	switch p.Mode {
	case ModeRasTerm:
		p.printRasTerm(img)
	case ModeITerm:
		p.printITerm(name, img)
	case Mode256Color:
		p.printCells(img, false, false)
	case ModeNoColor:
		p.printCells(img, false, true)
	case Mode24Bit:
		p.printCells(img, true, false)
	default:
		if rasterm.IsTermKitty() || rasterm.IsTermItermWez() {
			p.printRasTerm(img)
			return
		}
		if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
			p.printRasTerm(img)
			return
		}
		p.printCells(img, true, false)
	}
}

type dumper interface {
	Printf(s string, arg ...interface{})
}

type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

// printCells draws the sprite one terminal cell pair per pixel.
func (p Printer) printCells(img image.Image, escapesTrueColor, noColor bool) {
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			p.shade(img.At(x, y), escapesTrueColor, noColor)
		}
		if !noColor {
			fmt.Printf("\x1b[0m")
		}
		fmt.Printf("\n")
	}
}

func (p Printer) shade(col ic.Color, escapesTrueColor, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	var d dumper
	if noColor {
		d = &fmtDumper
	} else if escapesTrueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8))
		d = &fmtDumper
	} else {
		d = color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true)
	}
	if p.Blanks {
		d.Printf("  ")
	} else {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}
	if escapesTrueColor {
		fmt.Printf("\x1b[0m")
	}
}

// printITerm draws the sprite using iTerm2's inline image escape sequence.
//
// https://www.iterm2.com/documentation-images.html
func (p Printer) printITerm(name string, img image.Image) {
	if !rasterm.IsTermItermWez() {
		return
	}
	enc := base64.StdEncoding.EncodeToString([]byte(name + ".png"))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, img)
	bEnc.Close()
	sz := img.Bounds().Size()
	fmt.Printf("\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", enc, b.Len(), sz.X, sz.Y, b.String())
}

// printRasTerm draws the sprite using whichever rasterm backend the
// terminal supports: kitty, iTerm2/WezTerm, then sixel.
func (p Printer) printRasTerm(img image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, img)
		fmt.Printf("\n")
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, img)
		fmt.Printf("\n")
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, img.Bounds(), img, image.Point{})

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
		fmt.Printf("\n")
	}
}
