package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"life-sim/internal/pattern"
)

func main() {
	invert := flag.Bool("i", false, "treat dark pixels as live")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-i] image...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, src := range flag.Args() {
		dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".rle"

		w := wow.New(os.Stdout, spin.Get(spin.Dots), " converting "+src)
		w.Start()
		if err := convert(src, dst, *invert); err != nil {
			w.PersistWith(spin.Spinner{Frames: []string{"x"}}, " "+src+": "+err.Error())
			failed = true
			continue
		}
		w.PersistWith(spin.Spinner{Frames: []string{"+"}}, " wrote "+dst)
	}
	if failed {
		os.Exit(1)
	}
}

func convert(src, dst string, invert bool) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := pattern.DecodeImage(f, invert)
	if err != nil {
		return err
	}

	outFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(outFile, "#N %s\n#C converted from %s\n", strings.TrimSuffix(filepath.Base(dst), ".rle"), filepath.Base(src))
	if err := pattern.EncodeRLE(outFile, g); err != nil {
		outFile.Close()
		os.Remove(dst)
		return err
	}
	return outFile.Close()
}
