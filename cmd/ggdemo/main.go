// Command ggdemo draws an empty themed plot frame: panel, grid lines,
// axes, tick labels and titles, with axis ranges expanded the way a
// plot would expand them around its data.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/optional"
	"github.com/gogpu/ggplot/render"
	"github.com/gogpu/ggplot/scale"
	"github.com/gogpu/ggplot/theme"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "frame.png", "output file")
		dpi     = flag.Float64("dpi", 96, "output resolution")
		name    = flag.String("theme", "grey", "theme: grey, bw or minimal")
		title   = flag.String("title", "Expanded axis ranges", "plot title")
		xmin    = flag.Float64("xmin", 0, "smallest x value")
		xmax    = flag.Float64("xmax", 10, "largest x value")
		levels  = flag.String("levels", "", "comma-separated levels for a discrete x axis")
		ymin    = flag.Float64("ymin", 1, "smallest y value")
		ymax    = flag.Float64("ymax", 1000, "largest y value")
		ylog    = flag.Bool("ylog", true, "log10 y axis")
		zoomLo  = flag.String("zoom-ylo", "", "coordinate lower y limit")
		zoomHi  = flag.String("zoom-yhi", "", "coordinate upper y limit")
		verbose = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	th, err := pickTheme(*name)
	if err != nil {
		log.Fatal(err)
	}

	var x scale.Scale
	if *levels != "" {
		d := scale.NewDiscrete()
		d.Train(strings.Split(*levels, ",")...)
		x = d
	} else {
		c := scale.NewContinuous()
		c.Train(*xmin, *xmax)
		x = c
	}

	var yopts []scale.Option
	if *ylog {
		yopts = append(yopts, scale.WithTransform(scale.Log10()))
	}
	y := scale.NewContinuous(yopts...)
	y.Train(*ymin, *ymax)

	yzoom, err := coordLimits(*zoomLo, *zoomHi)
	if err != nil {
		log.Fatalf("Invalid zoom: %v", err)
	}

	xaxis := newAxis(x, scale.CoordLimits{})
	yaxis := newAxis(y, yzoom)

	dc := gg.NewContext(*width, *height)
	defer func() { _ = dc.Close() }()

	p, err := render.NewPainter(dc, render.WithDPI(*dpi))
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	defer func() { _ = p.Close() }()

	f := &frame{
		r:  theme.NewResolver(theme.DefaultTree()),
		th: th,
		p:  p,
	}
	if err := f.draw(render.Full(dc), *title, xaxis, yaxis); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame saved to %s (%dx%d), x %v, y %v\n", *output, *width, *height,
		xaxis.info.ContinuousRange, yaxis.info.ContinuousRange)
}

func pickTheme(name string) (theme.Theme, error) {
	switch name {
	case "grey", "gray":
		return theme.Grey(), nil
	case "bw":
		return theme.BW(), nil
	case "minimal":
		return theme.Minimal(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

func coordLimits(lo, hi string) (scale.CoordLimits, error) {
	var c scale.CoordLimits
	for i, s := range []string{lo, hi} {
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c, err
		}
		c[i] = optional.Of(v)
	}
	return c, nil
}
