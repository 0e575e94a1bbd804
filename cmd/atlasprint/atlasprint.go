// Command atlasprint crops subtextures out of a TextureAtlas and prints
// them on the terminal, for eyeballing a descriptor without writing files.
//
// Usage:
//
//	atlasprint [flags] <xml_file> <atlas_image>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-atlas/atlas"
	"badc0de.net/pkg/go-atlas/sheet"
)

var (
	name     = flag.String("name", "", "subtexture to print; prints all when empty")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasTerm  = flag.Bool("rasterm", false, "whether to print with the rasterm library (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to downsize sprites larger than the terminal")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <xml_file> <atlas_image>\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	ta, err := atlas.ReadAtlasFile(flag.Arg(0))
	if err != nil {
		glog.Exitf("%v", err)
	}
	sh, err := sheet.LoadFile(flag.Arg(1))
	if err != nil {
		glog.Exitf("%v", err)
	}

	printed := 0
	for _, sub := range ta.Subs {
		if *name != "" && sub.Name != *name {
			continue
		}
		img, err := sh.Crop(sub)
		if err != nil {
			glog.Exitf("%v", err)
		}
		out(sub.Name, img)
		printed++
	}
	if *name != "" && printed == 0 {
		glog.Exitf("subtexture %q not listed in %s", *name, flag.Arg(0))
	}
}
