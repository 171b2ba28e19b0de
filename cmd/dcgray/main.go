// Command dcgray draws the drawing-context smoke test: a white page with
// a staircase of gray horizontal lines on every third row.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"softfb/internal/canvas"
	"softfb/internal/colors"
	"softfb/internal/imageio"
	"softfb/internal/raster"
)

var (
	errInvalidSize = errors.New("size must be between 1 and 65536")
	errInvalidStep = errors.New("step must be at least 1")
)

type CLI struct {
	Output string `short:"o" help:"Output image; the extension picks the format" default:"testdcgray.ppm"`
	Size   uint32 `help:"Width and height of the page" default:"640"`
	Step   int    `help:"Row spacing between lines" default:"3"`
}

func (c *CLI) Validate() error {
	if c.Size == 0 || c.Size > 65536 {
		return errInvalidSize
	}
	if c.Step < 1 {
		return errInvalidStep
	}
	if _, err := imageio.FormatFromPath(c.Output); err != nil {
		return err
	}
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("dcgray"), kong.Description("Draw the drawing-context test page."))

	if err := run(cli); err != nil {
		slog.Error("dcgray failed", "error", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	fb := raster.NewGray(cli.Size, cli.Size)
	dc := canvas.New(fb)

	dc.SetBackground(colors.White)
	dc.Clear()

	dc.SetStroke(colors.Gray50)
	last := int(cli.Size) - 1
	pixels := 0
	for row := 0; row < last; row += cli.Step {
		pixels += dc.StrokeHorizontalLine(0, row, row)
	}

	if err := imageio.Save(cli.Output, fb); err != nil {
		return fmt.Errorf("save %s: %w", cli.Output, err)
	}
	slog.Info("wrote", "file", cli.Output, "size", cli.Size, "pixels", pixels)
	return nil
}
