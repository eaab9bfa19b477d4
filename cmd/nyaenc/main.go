// Command nyaenc encodes a PNG/JPEG/BMP/TIFF image to the NYA lossless
// raster format.
//
// Usage:
//
//	nyaenc <input-image> <output-dir>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nyacodec/nya"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}

	imagePath, outputDir := flag.Arg(0), flag.Arg(1)
	out, err := nya.EncodeFile(imagePath, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nyaenc: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  nyaenc <input-image> <output-dir>   Encode an image to NYA

Supported input formats: PNG, JPEG, BMP, TIFF.
`)
}
