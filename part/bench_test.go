package part_test

import (
	"os"
	"path/filepath"
	"testing"

	sdfxrender "github.com/deadsy/sdfx/render"
	sdfxsdf "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf/render"

	"github.com/danderson/snes-controller-connector/dim"
	"github.com/danderson/snes-controller-connector/part"
)

const benchQuality = 100

func BenchmarkConnectorSTL(b *testing.B) {
	s, err := part.Connector(dim.Default(), false)
	if err != nil {
		b.Fatal(err)
	}
	output := filepath.Join(b.TempDir(), "connector.stl")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		render.CreateSTL(output, render.NewOctreeRenderer(s, benchQuality))
	}
}

// Baseline: a hollowed housing shell built and rendered with deadsy/sdfx,
// the kernel this project's kernel descends from.
func BenchmarkSDFXHousingSTL(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)

	d := dim.Default()
	outer, _ := sdfxsdf.Box3D(sdfxsdf.V3{
		X: d.BodyWidth, Y: d.BodyHeight, Z: d.BodyDepth,
	}, d.BodyOuterFillet)
	inner, _ := sdfxsdf.Box3D(sdfxsdf.V3{
		X: d.BodyWidth - 2*d.BodyThickness,
		Y: d.BodyHeight - 2*d.BodyThickness,
		Z: d.BodyCavityDepth,
	}, d.BodyInnerFillet)
	object := sdfxsdf.Difference3D(outer, sdfxsdf.Transform3D(
		inner,
		sdfxsdf.Translate3d(sdfxsdf.V3{Z: (d.BodyDepth - d.BodyCavityDepth) / 2}),
	))

	output := filepath.Join(b.TempDir(), "housing.stl")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}
