package cover

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"imgstegano/imageio"
	"imgstegano/lsb"
	"imgstegano/palette"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Output  string `help:"Output cover image" short:"o" required:"" type:"path"`
	Width   int    `help:"Width in pixels, 0 keeps the source width" default:"1280"`
	Height  int    `help:"Height in pixels, 0 keeps the source height" default:"720"`
	Color   string `help:"Background color: #RGB, #RRGGBB or random" default:"random"`
	From    string `help:"Photo to resize into the cover instead of a solid color" type:"existingfile"`
	Crop    bool   `help:"Crop the photo to the cover aspect ratio instead of fitting it" default:"false"`
	Noise   int    `help:"Random per channel noise amplitude (0-127)" default:"0"`
	Palette string `help:"Palette name (bw, gray16, vga16, websafe, plan9) or RIFF PAL file to reduce the cover to"`
	Dither  bool   `help:"Dither when applying the palette" default:"false"`
	Format  string `help:"Output format (${formats}), taken from the output extension when empty"`
	Force   bool   `help:"Overwrite the output file if it exists" default:"false"`

	outFormat imageio.Format `kong:"-"`
	pal       color.Palette  `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Format != "" {
		c.outFormat, err = imageio.ParseFormat(c.Format)
	} else {
		c.outFormat, err = imageio.FormatFromPath(c.Output)
	}
	if err != nil {
		return err
	}

	if c.Noise < 0 || c.Noise > 127 {
		return fmt.Errorf("invalid noise amplitude: %d", c.Noise)
	}

	if c.From == "" {
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("invalid cover size: %dx%d", c.Width, c.Height)
		}
		if _, err := ParseColor(c.Color); err != nil {
			return err
		}
	}

	if c.Palette != "" {
		if c.pal, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	return imageio.CheckDestination(c.Output, c.Force)
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Output)

	cfg := Config{
		Width:  c.Width,
		Height: c.Height,
		Color:  c.Color,
		Crop:   c.Crop,
		Noise:  c.Noise,
		Pal:    c.pal,
		Dither: c.Dither,
	}

	if c.From != "" {
		var src image.Image
		var err error
		if src, _, err = imageio.Load(c.From); err != nil {
			return fmt.Errorf("could not load cover source: %w", err)
		}
		cfg.Source = src
	}

	img, err := Generate(logger, cfg)
	if err != nil {
		return fmt.Errorf("could not generate cover: %w", err)
	}

	warn, err := imageio.Save(c.Output, img, c.outFormat)
	if err != nil {
		return fmt.Errorf("could not save cover: %w", err)
	}
	if warn != nil {
		logger.Warn(warn.String())
	}

	logger.Info("cover saved", "width", img.Rect.Dx(), "height", img.Rect.Dy(),
		"format", c.outFormat, "capacity", lsb.ImageCapacity(img))
	return nil
}
