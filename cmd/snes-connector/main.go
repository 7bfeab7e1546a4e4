// Command snes-connector generates solid models of an SNES style
// controller port, one right-hand and one mirrored left-hand variant,
// ready for PCB footprint work and 3D printing.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/danderson/snes-controller-connector/dim"
	"github.com/danderson/snes-controller-connector/part"
	"github.com/danderson/snes-controller-connector/preview"
	"github.com/danderson/snes-controller-connector/stepfile"
)

func main() {
	var (
		outDir   = flag.String("dir", ".", "output directory")
		quality  = flag.Int("quality", 200, "render resolution, in cells along the longest axis")
		formats  = flag.String("formats", "stl,step", "comma separated output formats: stl, step, 3mf")
		dimsPath = flag.String("dims", "", "YAML file with dimension overrides")
		withPNG  = flag.Bool("preview", false, "also rasterize a PNG preview of each variant")
		cosmetic = flag.Float64("cosmetic-fillet", 0, "edge blending radius in mm, 0 to disable (slow)")
	)
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	d := dim.Default()
	if *dimsPath != "" {
		var err error
		d, err = dim.Load(*dimsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading dimension overrides")
		}
		log.Info().Str("path", *dimsPath).Msg("dimension overrides applied")
	}
	if *cosmetic > 0 {
		d.CosmeticFillet = *cosmetic
	}
	if err := d.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid dimensions")
	}

	for _, v := range []struct {
		name     string
		mirrored bool
	}{
		{"right", false},
		{"left", true},
	} {
		if err := generate(log, d, v.name, v.mirrored, *outDir, *quality, *formats, *withPNG); err != nil {
			log.Fatal().Err(err).Str("variant", v.name).Msg("generation failed")
		}
	}
}

func generate(log zerolog.Logger, d dim.Set, name string, mirrored bool, dir string, quality int, formats string, withPNG bool) error {
	s, err := part.Connector(d, mirrored)
	if err != nil {
		return err
	}
	start := time.Now()
	tris, err := render.RenderAll(render.NewOctreeRenderer(s, quality))
	if err != nil {
		return err
	}
	log.Info().Str("variant", name).Int("triangles", len(tris)).
		Dur("took", time.Since(start)).Msg("rendered")

	base := filepath.Join(dir, "snes_connector_"+name)
	stlPath := ""
	for _, f := range strings.Split(formats, ",") {
		switch strings.TrimSpace(f) {
		case "stl":
			stlPath = base + ".stl"
			if err := writeSTL(stlPath, tris); err != nil {
				return err
			}
			log.Info().Str("path", stlPath).Msg("wrote STL")
		case "step":
			path := base + ".step"
			if err := writeSTEP(path, "snes_connector_"+name, tris); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote STEP")
		case "3mf":
			path := base + ".3mf"
			if err := render.Create3MF(path, render.NewOctreeRenderer(s, quality)); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote 3MF")
		case "":
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	if withPNG {
		if stlPath == "" {
			stlPath = base + ".stl"
			if err := writeSTL(stlPath, tris); err != nil {
				return err
			}
		}
		path := base + ".png"
		if err := preview.PNG(stlPath, path, preview.DefaultView()); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("wrote preview")
	}
	return nil
}

func writeSTL(path string, tris []r3.Triangle) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return render.WriteSTL(fp, tris)
}

func writeSTEP(path, name string, tris []r3.Triangle) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return stepfile.Write(fp, name, tris)
}
