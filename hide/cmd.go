package hide

import (
	"fmt"
	"log/slog"
	"os"

	"imgstegano/imageio"
	"imgstegano/lsb"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Input       string `help:"Cover image" short:"i" required:"" type:"existingfile"`
	Output      string `help:"Output image" short:"o" required:"" type:"path"`
	Format      string `help:"Output format (${formats}), taken from the output extension when empty" short:"f"`
	Message     string `help:"Text message to hide" short:"m" xor:"message"`
	MessageFile string `help:"Read the message from this file" type:"existingfile" xor:"message"`
	Force       bool   `help:"Overwrite the output file if it exists" default:"false"`

	outFormat imageio.Format `kong:"-"`
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

	if c.MessageFile != "" {
		data, err := os.ReadFile(c.MessageFile)
		if err != nil {
			return fmt.Errorf("could not read message file %q: %w", c.MessageFile, err)
		}
		c.Message = string(data)
	}
	if c.Message == "" {
		return lsb.ErrEmptyMessage
	}

	return imageio.CheckDestination(c.Output, c.Force)
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Input)

	img, imgType, err := imageio.Load(c.Input)
	if err != nil {
		return fmt.Errorf("could not load cover: %w", err)
	}

	available := lsb.ImageCapacity(img)
	logger.Info("encoding", "format", imgType, "bytes", len(c.Message), "capacity", available)

	encoded, err := lsb.Encode(img, []byte(c.Message))
	if err != nil {
		return fmt.Errorf("could not hide message in %q: %w", c.Input, err)
	}

	warn, err := imageio.Save(c.Output, encoded, c.outFormat)
	if err != nil {
		return fmt.Errorf("could not save %q: %w", c.Output, err)
	}
	if warn != nil {
		logger.Warn(warn.String(), "output", c.Output)
	}

	logger.Info("message hidden", "output", c.Output, "format", c.outFormat,
		"used", len(c.Message)+1, "capacity", available)
	return nil
}
