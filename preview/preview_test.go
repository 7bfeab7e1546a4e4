package preview_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"

	"github.com/danderson/snes-controller-connector/preview"
)

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "box.stl")
	object := must3.Box(r3.Vec{X: 4, Y: 2, Z: 1}, 0.3)
	if err := render.CreateSTL(stl, render.NewOctreeRenderer(object, 50)); err != nil {
		t.Fatal(err)
	}

	view := preview.DefaultView()
	view.Width, view.Height = 160, 120
	png1 := filepath.Join(dir, "box1.png")
	png2 := filepath.Join(dir, "box2.png")
	if err := preview.PNG(stl, png1, view); err != nil {
		t.Fatal(err)
	}
	if err := preview.PNG(stl, png2, view); err != nil {
		t.Fatal(err)
	}

	b1, err := os.ReadFile(png1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(png2)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b1))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 160 || cfg.Height != 120 {
		t.Errorf("image is %dx%d, want 160x120", cfg.Width, cfg.Height)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("rasterizing the same mesh twice gave different images")
	}
}

func TestPNGMissingSTL(t *testing.T) {
	dir := t.TempDir()
	err := preview.PNG(filepath.Join(dir, "absent.stl"), filepath.Join(dir, "out.png"), preview.DefaultView())
	if err == nil {
		t.Error("missing STL accepted")
	}
}
