package reveal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"imgstegano/imageio"
	"imgstegano/lsb"
	"imgstegano/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Input string `arg:"" optional:"" help:"Image to reveal the message of" type:"existingfile"`
	Scan  string `help:"Reveal every image in this folder instead" type:"existingdir"`
	Lossy bool   `help:"Replace invalid UTF-8 instead of failing" default:"false"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Input == "" && c.Scan == "":
		return errors.New("an image or --scan folder is required")
	case c.Input != "" && c.Scan != "":
		return errors.New("an image and --scan folder are mutually exclusive")
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if c.Scan == "" {
		msg, terminated, err := c.reveal(c.Input)
		if err != nil {
			return err
		}
		if !terminated {
			slog.Warn("message is unterminated", "file", c.Input)
		}
		fmt.Println(msg)
		return nil
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var revealedCount, emptyCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				msg, terminated, err := c.reveal(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not reveal message", "error", err)
					return
				}
				if msg == "" {
					emptyCount.Add(1)
					logger.Info("no message")
					return
				}
				if !terminated {
					logger.Warn("message is unterminated")
				}

				revealedCount.Add(1)
				logger.Info("revealed", "message", msg)
			}
		}(file.Name()))
	}

	wait(true)

	revealed := revealedCount.Load()
	empty := emptyCount.Load()
	failed := errCount.Load()
	slog.Info("stats", "revealed", revealed, "empty", empty, "errors", failed,
		"total", revealed+empty+failed)

	if failed > 0 {
		return fmt.Errorf("error processing %d files", failed)
	}
	return nil
}

// reveal decodes the message of one file, strictly unless --lossy is set.
func (c *CLICmd) reveal(path string) (msg string, terminated bool, err error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return "", false, err
	}

	payload, terminated := lsb.Extract(img)
	if c.Lossy {
		return lsb.LossyText(payload), terminated, nil
	}

	if msg, err = lsb.Text(payload); err != nil {
		return "", terminated, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return msg, terminated, nil
}
