// Command atlasex extracts the subtextures of a TextureAtlas into
// individual PNG files.
//
// Usage:
//
//	atlasex [flags] <xml_file> <atlas_image> <output_dir>
//
// The output directory is created if missing; existing files with the same
// names are overwritten. The exit code is zero only when every subtexture
// was extracted.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/extract"
	"badc0de.net/pkg/go-atlas/sheet"
)

var (
	metaPath = flag.String("meta", "",
		"If set, path to write a YAML index of the extracted sprites to.")
	resourcePath = flag.String("resource_file", "",
		"If set, path to a bbolt resource file to also store the sprites in.")
	gifs = flag.Bool("gif", false,
		"Whether to encode numbered frame sequences as animated GIFs.")
	sheetGen = flag.Bool("spritesheet", false,
		"Whether to also generate a re-packed grid sheet in the output directory.")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <xml_file> <atlas_image> <output_dir>\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}
	xmlPath, imgPath, outDir := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	// The descriptor is parsed in full before any image I/O, so a
	// malformed descriptor fails the run without touching the atlas.
	ta, err := atlas.ReadAtlasFile(xmlPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	sh, err := sheet.LoadFile(imgPath)
	if err != nil {
		glog.Exitf("%v", err)
	}

	ex := extract.Extractor{
		OutDir:       outDir,
		MetaPath:     *metaPath,
		ResourcePath: *resourcePath,
		GIF:          *gifs,
	}
	if err := ex.Run(ta, sh); err != nil {
		glog.Exitf("%v", err)
	}

	if *sheetGen {
		stem := strings.TrimSuffix(filepath.Base(imgPath), filepath.Ext(imgPath))
		out := filepath.Join(outDir, stem+"_converted.png")
		if err := extract.GenerateSheet(ta, sh, out); err != nil {
			glog.Exitf("%v", err)
		}
	}
}
