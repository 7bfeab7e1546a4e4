// Package preview rasterizes STL meshes to PNG images for a quick visual
// check of a generated connector without opening a CAD package.
package preview

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View places the camera. The mesh is fit into a bi-unit cube centered on
// the origin before rendering, so positions are in cube units rather than
// millimeters.
type View struct {
	// What point to look at.
	LookAt r3.Vec
	// Which way is up.
	Up r3.Vec
	// Where the camera sits.
	Eye  r3.Vec
	Near float64
	Far  float64
	// Output size in pixels. Zero means 640x480.
	Width  int
	Height int
}

// DefaultView looks at the plug opening from the front upper right.
func DefaultView() View {
	return View{
		Up:   r3.Vec{Z: 1},
		Eye:  r3.Vec{X: 2.4, Y: -2.4, Z: 2.4},
		Near: 1,
		Far:  10,
	}
}

// PNG renders the STL file at stlPath into a PNG image at pngPath.
func PNG(stlPath, pngPath string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		scale = 2  // supersampling factor
		fovy  = 30 // vertical field of view in degrees
	)
	width, height := view.Width, view.Height
	if width == 0 {
		width = 640
	}
	if height == 0 {
		height = 480
	}

	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)

	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample for antialiasing
	image := resize.Resize(uint(width), uint(height), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(pngPath, image)
}
