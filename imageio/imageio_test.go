package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pattern(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 7), uint8(y * 13), uint8(x ^ y), 0xFF})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{".png", PNG},
		{"bmp", BMP},
		{"tif", TIFF},
		{".TIFF", TIFF},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"gif", GIF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "xyz", "webp", "png2"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrInvalidImageFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrInvalidImageFormat", bad, err)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("/tmp/out.Jpg"); err != nil || f != JPEG {
		t.Errorf("FormatFromPath(out.Jpg) = %s, %v", f, err)
	}
	if _, err := FormatFromPath("noext"); !errors.Is(err, ErrInvalidImageFormat) {
		t.Errorf("FormatFromPath(noext) error = %v, want ErrInvalidImageFormat", err)
	}
}

func TestLossy(t *testing.T) {
	for f, want := range map[Format]bool{PNG: false, BMP: false, TIFF: false, JPEG: true, GIF: true} {
		if got := f.Lossy(); got != want {
			t.Errorf("%s.Lossy() = %v, want %v", f, got, want)
		}
	}
	if PNG.Ext() != ".png" {
		t.Errorf("PNG.Ext() = %q", PNG.Ext())
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	src := pattern(33, 17)
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			warn, err := Encode(&buf, src, f)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if warn != nil {
				t.Errorf("unexpected warning: %s", warn)
			}

			img, name, err := LoadBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("LoadBytes: %v", err)
			}
			if name != f.String() {
				t.Errorf("decoded format = %q, want %q", name, f)
			}

			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					if want := src.NRGBAAt(x, y); got != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestLossyWarning(t *testing.T) {
	for _, f := range []Format{JPEG, GIF} {
		var buf bytes.Buffer
		warn, err := Encode(&buf, pattern(16, 16), f)
		if err != nil {
			t.Fatalf("Encode(%s): %v", f, err)
		}
		if warn == nil || warn.Format != f {
			t.Errorf("Encode(%s) warning = %v, want a LossyFormatWarning", f, warn)
		}
		if buf.Len() == 0 {
			t.Errorf("Encode(%s) wrote nothing", f)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := Encode(&bytes.Buffer{}, pattern(2, 2), Format(99)); !errors.Is(err, ErrInvalidImageFormat) {
		t.Errorf("Encode(Format(99)) error = %v, want ErrInvalidImageFormat", err)
	}
}

func TestLoadErrors(t *testing.T) {
	_, _, err := LoadBytes([]byte("definitely not an image"))
	var imgErr *ImageError
	if !errors.As(err, &imgErr) || imgErr.Op != "decode" {
		t.Errorf("LoadBytes(garbage) error = %v, want *ImageError", err)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("LoadBytes(garbage) error = %v, want it to wrap image.ErrFormat", err)
	}

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.As(err, &imgErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want *ImageError wrapping ErrNotExist", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	src := pattern(10, 10)

	if _, err := Save(path, src, PNG); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"out.png"}, names); diff != "" {
		t.Errorf("folder content mismatch (-want +got):\n%s", diff)
	}

	img, name, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "png" || img.Bounds() != src.Bounds() {
		t.Errorf("Load = %s %v, want png %v", name, img.Bounds(), src.Bounds())
	}

	conf, name, err := DecodeConfig(path)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if conf.Width != 10 || conf.Height != 10 || name != "png" {
		t.Errorf("DecodeConfig = %dx%d %s", conf.Width, conf.Height, name)
	}

	warn, err := Save(filepath.Join(dir, "out.jpg"), src, JPEG)
	if err != nil {
		t.Fatalf("Save(jpeg): %v", err)
	}
	if warn == nil {
		t.Error("Save(jpeg) returned no warning")
	}
}

func TestSaveMissingFolder(t *testing.T) {
	_, err := Save(filepath.Join(t.TempDir(), "nope", "out.png"), pattern(2, 2), PNG)
	var imgErr *ImageError
	if !errors.As(err, &imgErr) {
		t.Errorf("Save into missing folder error = %v, want *ImageError", err)
	}
}

func TestCheckDestination(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "there.png")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckDestination(filepath.Join(dir, "new.png"), false); err != nil {
		t.Errorf("CheckDestination(new) = %v", err)
	}
	if err := CheckDestination(existing, false); err == nil {
		t.Error("CheckDestination(existing, false) succeeded")
	}
	if err := CheckDestination(existing, true); err != nil {
		t.Errorf("CheckDestination(existing, true) = %v", err)
	}
	if err := CheckDestination(dir, true); err == nil {
		t.Error("CheckDestination(dir, true) succeeded")
	}
}
