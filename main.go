package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"imgstegano/capacity"
	"imgstegano/cover"
	"imgstegano/hide"
	"imgstegano/imageio"
	"imgstegano/parallel"
	"imgstegano/reveal"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Config    kong.ConfigFlag `help:"JSON configuration file" type:"existingfile"`
	Workers   int             `help:"Number of parallel workers, 0 for one per CPU" default:"0" env:"STEGANO_WORKERS"`
	LogLevel  string          `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"STEGANO_LOG_LEVEL"`
	LogFormat string          `help:"Log format" enum:"text,json" default:"text" env:"STEGANO_LOG_FORMAT"`

	Hide     hide.CLICmd     `cmd:"" help:"Hide a text message inside an image"`
	Reveal   reveal.CLICmd   `cmd:"" help:"Reveal the text message hidden in an image"`
	Capacity capacity.CLICmd `cmd:"" help:"Show how many bytes an image can hide"`
	Cover    cover.CLICmd    `cmd:"" help:"Generate a cover image"`
}

func setupLogging(level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("stegano"),
		kong.Description("Hide text in the least significant bits of images, and reveal it again."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/stegano.json"),
		kong.Vars{"formats": strings.ReplaceAll(imageio.FormatNames, ",", ", ")},
	)

	if err := setupLogging(cli.LogLevel, cli.LogFormat); err != nil {
		kctx.FatalIfErrorf(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := parallel.Start(ctx, cli.Workers)
	err := kctx.Run(pool.Do, pool.Wait)
	pool.Wait(true)
	if skipped := pool.Skipped(); skipped > 0 {
		slog.Warn("interrupted", "skipped", skipped)
	}
	kctx.FatalIfErrorf(err)
}
