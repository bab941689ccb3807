package hide

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgstegano/imageio"
	"imgstegano/lsb"
	"imgstegano/steg"
)

func writeCover(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	if _, err := imageio.Save(path, img, imageio.PNG); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cover.png")
	out := filepath.Join(dir, "secret.png")
	writeCover(t, in, 60, 60)

	cmd := &CLICmd{Input: in, Output: out, Message: "meet at noon"}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := steg.DecodeFile(out)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if got != "meet at noon" {
		t.Errorf("DecodeFile = %q, want %q", got, "meet at noon")
	}

	// The output now exists, so a second run must be forced.
	if err := cmd.Validate(nil); err == nil {
		t.Error("Validate accepted an existing output without --force")
	}
	cmd.Force = true
	if err := cmd.Validate(nil); err != nil {
		t.Errorf("Validate with --force: %v", err)
	}
}

func TestMessageFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cover.png")
	msgFile := filepath.Join(dir, "msg.txt")
	out := filepath.Join(dir, "secret.bmp")
	writeCover(t, in, 40, 40)
	if err := os.WriteFile(msgFile, []byte("from a file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &CLICmd{Input: in, Output: out, MessageFile: msgFile}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cmd.outFormat != imageio.BMP {
		t.Errorf("format from extension = %s, want bmp", cmd.outFormat)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, _ := steg.DecodeFile(out); got != "from a file\n" {
		t.Errorf("DecodeFile = %q", got)
	}
}

func TestValidateErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cover.png")
	writeCover(t, in, 10, 10)

	tests := []struct {
		name string
		cmd  CLICmd
		want error
	}{
		{"unknown extension", CLICmd{Input: in, Output: filepath.Join(dir, "out.xyz"), Message: "x"}, imageio.ErrInvalidImageFormat},
		{"unknown format", CLICmd{Input: in, Output: filepath.Join(dir, "out.png"), Format: "webp", Message: "x"}, imageio.ErrInvalidImageFormat},
		{"empty message", CLICmd{Input: in, Output: filepath.Join(dir, "out.png")}, lsb.ErrEmptyMessage},
	}
	for _, tt := range tests {
		if err := tt.cmd.Validate(nil); !errors.Is(err, tt.want) {
			t.Errorf("%s: Validate error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestRunTooLarge(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cover.png")
	out := filepath.Join(dir, "out.png")
	writeCover(t, in, 10, 10)

	cmd := &CLICmd{Input: in, Output: out, Message: strings.Repeat("a", 37), outFormat: imageio.PNG}
	err := cmd.Run()
	var tooLarge *lsb.MessageTooLargeError
	if !errors.As(err, &tooLarge) || tooLarge.Available != 36 {
		t.Fatalf("Run error = %v, want MessageTooLargeError with 36 available", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output written despite the error: %v", err)
	}
}
