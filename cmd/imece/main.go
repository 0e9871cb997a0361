// Command imece loads an elevation grid, plans the most efficient route and
// the eastward escape route, and writes a grayscale export plus a PNG with
// both routes overlaid. All settings come from the environment (see package
// config); a .env file in the working directory is honoured.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/imece"
	"github.com/katalvlaran/imece/config"
	"github.com/katalvlaran/imece/cost"
	"github.com/katalvlaran/imece/gridio"
	"github.com/katalvlaran/imece/render"
	"github.com/katalvlaran/imece/terrain"
)

// routesImage is the PNG written next to the grayscale export.
const routesImage = "routes.png"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})).With("run", uuid.NewString())
	slog.SetDefault(logger)

	if _, err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// summary is what one run produced.
type summary struct {
	Route      []terrain.Point
	RouteCost  float64
	Escape     []terrain.Point
	EscapeCost int
	Regions    int
	Grayscale  string
	Image      string
}

func run(cfg config.Config, logger *slog.Logger) (summary, error) {
	var s summary

	g, err := gridio.LoadFile(cfg.GridFile, cfg.Rows, cfg.Cols)
	if err != nil {
		return s, err
	}
	lo, hi := g.MinMax()
	logger.Info("grid loaded", "file", cfg.GridFile, "rows", g.Height(), "cols", g.Width(), "min", lo, "max", hi)

	params, err := cost.NewParams(cfg.MaxFlyingHeight, cfg.FuelCost, cfg.ClimbCost)
	if err != nil {
		return s, err
	}
	pf, err := imece.New(g, params)
	if err != nil {
		return s, err
	}

	s.Regions = len(g.FlyableRegions(params.MaxFlyingHeight))
	connected := g.SameRegion(terrain.ToCell(cfg.Start), terrain.ToCell(cfg.End), params.MaxFlyingHeight)
	logger.Debug("flyable regions", "count", s.Regions, "start_end_connected", connected)

	s.Route, err = pf.MostEfficientPath(cfg.Start, cfg.End)
	if err != nil {
		return s, fmt.Errorf("most efficient path: %w", err)
	}
	if len(s.Route) == 0 {
		logger.Warn("no path", "start", cfg.Start, "end", cfg.End, "ceiling", params.MaxFlyingHeight)
	} else {
		if s.RouteCost, err = pf.MostEfficientPathCost(s.Route); err != nil {
			return s, err
		}
		logger.Info("most efficient path", "cells", len(s.Route), "cost", s.RouteCost)
	}

	s.Escape, err = pf.LowestElevationEscapePath(cfg.Escape)
	if err != nil {
		return s, fmt.Errorf("escape path: %w", err)
	}
	if s.EscapeCost, err = pf.LowestElevationEscapePathCost(s.Escape); err != nil {
		return s, err
	}
	logger.Info("escape path", "cells", len(s.Escape), "elevation_change", s.EscapeCost)

	s.Grayscale = filepath.Join(cfg.OutputDir, cfg.GrayscaleFile)
	if err = gridio.WriteGrayscaleFile(s.Grayscale, g); err != nil {
		return s, err
	}
	logger.Info("grayscale map written", "path", s.Grayscale)

	img := render.Grayscale(g)
	render.DrawPath(img, s.Route, render.EfficientPathColor)
	render.DrawPath(img, s.Escape, render.EscapePathColor)
	scaled, err := render.Scale(img, cfg.Scale)
	if err != nil {
		return s, err
	}
	s.Image = filepath.Join(cfg.OutputDir, routesImage)
	if err = render.WritePNGFile(s.Image, scaled); err != nil {
		return s, err
	}
	logger.Info("routes image written", "path", s.Image, "scale", cfg.Scale)

	return s, nil
}
