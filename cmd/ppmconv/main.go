// Command ppmconv converts ASCII PPM (P3) images to PNG, BMP or TIFF.
//
// Usage:
//
//	ppmconv [flags] input.ppm[.gz|.zst]
//
// The output format follows the extension of -o, then -format, then the
// configuration file. With -info only the header is read and printed.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"iter"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/ppm"
	"github.com/tsawler/ppm/config"
	"github.com/tsawler/ppm/ocr"
	"github.com/tsawler/ppm/raster"
)

type options struct {
	configPath string
	output     string
	format     string
	scale      float64
	info       bool
	recognize  bool
	lang       string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ppmconv: ")

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flag.StringVar(&opts.output, "o", "", "output file (default: input name with the output extension)")
	flag.StringVar(&opts.format, "format", "", "output format: png, bmp or tiff")
	flag.Float64Var(&opts.scale, "scale", 0, "resampling factor")
	flag.BoolVar(&opts.info, "info", false, "print the header and exit")
	flag.BoolVar(&opts.recognize, "ocr", false, "print text recognized in the image")
	flag.StringVar(&opts.lang, "lang", "", "OCR language(s), e.g. eng+fra")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: ppmconv [flags] input.ppm\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), opts, os.Stdout); err != nil {
		if kind := ppm.KindOf(err); kind != ppm.KindUnknown {
			log.Fatalf("%s error: %v", kind, err)
		}
		log.Fatal(err)
	}
}

func run(input string, opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.scale > 0 {
		cfg.Scale = opts.scale
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.lang != "" {
		cfg.OCR.Language = opts.lang
	}

	dec := ppm.NewDecoder().MaxPixels(cfg.Limits.MaxPixels).MaxDepth(cfg.Limits.MaxDepth)
	if cfg.Limits.AllowZero {
		dec = dec.AllowZeroDimensions()
	}

	if opts.info {
		return printInfo(dec, input, stdout)
	}

	img, err := ppm.OpenWith(dec, input, raster.ImageBuilder{MaxPixels: cfg.Limits.MaxPixels})
	if err != nil {
		return err
	}

	if opts.recognize {
		return recognize(img, cfg.OCR.Language, stdout)
	}

	out, outFormat, err := outputTarget(input, opts.output, cfg.Format)
	if err != nil {
		return err
	}

	scaled, err := raster.Scale(img, cfg.Scale)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := raster.Encode(f, scaled, outFormat); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("Converted %s → %s (%v)", input, out, outFormat)
	return nil
}

// outputTarget resolves the output path and its encoding. An output path
// with an extension must name a supported format.
func outputTarget(input, output, fallback string) (string, raster.OutputFormat, error) {
	if ext := filepath.Ext(output); ext != "" {
		f, ok := raster.FormatFromPath(output)
		if !ok {
			return "", f, fmt.Errorf("cannot write %s: unsupported output format %q", output, ext)
		}
		return output, f, nil
	}

	f, err := raster.ParseOutputFormat(fallback)
	if err != nil {
		return "", f, err
	}
	if output == "" {
		output = trimExtensions(input) + "." + f.String()
	}
	return output, f, nil
}

// trimExtensions strips the image and compression extensions, so that
// "scan.ppm.gz" becomes "scan".
func trimExtensions(path string) string {
	for i := 0; i < 2; i++ {
		ext := filepath.Ext(path)
		switch strings.ToLower(ext) {
		case ".ppm", ".pnm", ".gz", ".gzip", ".zst", ".zstd", ".zz", ".zlib":
			path = strings.TrimSuffix(path, ext)
		}
	}
	return path
}

func printInfo(dec *ppm.Decoder, input string, stdout io.Writer) error {
	h, err := ppm.OpenWith(dec, input, headerOnly)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s\n", input)
	p.Fprintf(stdout, "  width:  %d\n", h.Width)
	p.Fprintf(stdout, "  height: %d\n", h.Height)
	p.Fprintf(stdout, "  depth:  %d\n", h.Depth)
	p.Fprintf(stdout, "  pixels: %d\n", h.Pixels())
	return nil
}

// headerOnly returns the header without pulling any pixel.
var headerOnly = ppm.BuilderFunc[ppm.Header](func(width, height, depth uint32, _ iter.Seq2[ppm.Pixel, error]) (ppm.Header, error) {
	return ppm.Header{Width: width, Height: height, Depth: depth}, nil
})

func recognize(img image.Image, lang string, stdout io.Writer) error {
	client, err := ocr.New()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return err
	}
	text, err := client.RecognizeImage(img)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}
