package capacity

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"imgstegano/imageio"
	"imgstegano/lsb"
	"imgstegano/parallel"
)

type CLICmd struct {
	Inputs []string `arg:"" help:"Images to measure"`
}

var errSkipped = errors.New("skipped")

type result struct {
	width, height int
	format        string
	err           error
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	results := c.measure(worker, wait)

	wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(wtr, "Image\tFormat\tSize\tCapacity (Bytes)")

	var errCount int
	for i, path := range c.Inputs {
		res := results[i]
		if res.err != nil {
			errCount++
			slog.Error("could not read image", "file", path, "error", res.err)
			continue
		}
		fmt.Fprintf(wtr, "%s\t%s\t%dx%d\t%d\n", path, res.format, res.width, res.height,
			lsb.Capacity(res.width, res.height))
	}
	if err := wtr.Flush(); err != nil {
		return fmt.Errorf("could not write capacity table: %w", err)
	}

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

// measure reads the header of every input, in parallel when there are
// several. Results are indexed like c.Inputs.
func (c *CLICmd) measure(worker parallel.WorkerFunc, wait parallel.WaitFunc) []result {
	results := make([]result, len(c.Inputs))
	for i := range results {
		results[i].err = errSkipped
	}

	for i, path := range c.Inputs {
		worker(func() {
			conf, format, err := imageio.DecodeConfig(path)
			results[i] = result{conf.Width, conf.Height, format, err}
		})
	}
	wait(true)

	return results
}
