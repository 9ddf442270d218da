package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/ppm"
)

func testImage() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA64(x, y, color.NRGBA64{R: uint16(x * 0x4000), G: uint16(y * 0xFFFF), B: 0x1234, A: 0xFFFF})
		}
	}
	return img
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"png", PNG, false},
		{"PNG", PNG, false},
		{".png", PNG, false},
		{"bmp", BMP, false},
		{"tif", TIFF, false},
		{".TIFF", TIFF, false},
		{"jpeg", PNG, true},
		{"", PNG, true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, ok := FormatFromPath("out/image.bmp"); !ok || f != BMP {
		t.Errorf("FormatFromPath(bmp) = (%v, %v)", f, ok)
	}
	if _, ok := FormatFromPath("out/image"); ok {
		t.Error("FormatFromPath() accepted a path without extension")
	}
}

func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		f    OutputFormat
		want string
	}{
		{PNG, "png"},
		{BMP, "bmp"},
		{TIFF, "tiff"},
		{OutputFormat(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("OutputFormat(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := ToPNG(testImage())
	if err != nil {
		t.Fatalf("ToPNG failed: %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("PNG output starts with %x", data[:8])
	}
}

func TestEncodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), BMP); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode() error: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("decoded bounds = %v, want 4x2", b)
	}
}

func TestEncodeTIFF(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), TIFF); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("tiff.Decode() error: %v", err)
	}
	r, g, _, _ := got.At(3, 1).RGBA()
	if r != 0xC000 || g != 0xFFFF {
		t.Errorf("At(3, 1) = r %#x g %#x, want r 0xc000 g 0xffff", r, g)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), OutputFormat(9)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		w, h   int
	}{
		{"identity", 1, 4, 2},
		{"double", 2, 8, 4},
		{"half", 0.5, 2, 1},
		{"tiny", 0.01, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(testImage(), tt.factor)
			if err != nil {
				t.Fatalf("Scale() error: %v", err)
			}
			if b := got.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("Scale(%v) bounds = %v, want %dx%d", tt.factor, b, tt.w, tt.h)
			}
		})
	}

	if _, err := Scale(testImage(), 0); err == nil {
		t.Error("expected error for zero factor")
	}
}

func TestImageDecodeRegistration(t *testing.T) {
	img, name, err := image.Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("image.Decode() error: %v", err)
	}
	if name != "ppm" {
		t.Errorf("format name = %q, want %q", name, "ppm")
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 2x2", b)
	}

	cfg, name, err := image.DecodeConfig(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("image.DecodeConfig() error: %v", err)
	}
	if name != "ppm" || cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("DecodeConfig() = %+v, %q", cfg, name)
	}
}

func TestImageDecodeRegistrationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"over default ceiling", "P3\n16000 16000 255\n1 2 3\n", ppm.ErrFormat},
		{"missing pixels", "P3\n2 2 255\n1 2 3\n", ppm.ErrTruncated},
		{"bad value", "P3\n1 1 255\n1 x 3\n", ppm.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := image.Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("image.Decode() error = %v, want %v", err, tt.wantErr)
			}
			if img != nil {
				t.Errorf("image.Decode() image = %#v, want nil on error", img)
			}
		})
	}
}

func TestImageDecodeConfigTooLarge(t *testing.T) {
	_, _, err := image.DecodeConfig(strings.NewReader("P3\n4294967295 1 255\n"))
	if !errors.Is(err, ppm.ErrFormat) {
		t.Errorf("image.DecodeConfig() error = %v, want ErrFormat", err)
	}
}
