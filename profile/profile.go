// Package profile builds the 2D outlines of the connector as signed
// distance functions, ready for extrusion. Constructors panic on dimension
// constraint violations, in the manner of form2/must2.
package profile

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/danderson/snes-controller-connector/dim"
)

// Facet counts for polygonized curves. The nose count must be even so the
// rightmost point of the arc lands on a vertex and the bounding box stays
// exact.
const (
	noseFacets   = 32
	filletFacets = 8
)

// SemiStadium returns the housing's characteristic outline: a rectangle
// whose right-hand side is a half circle of diameter height. It is half of
// a full stadium, hence the name. round fillets the two left-hand corners.
// The outline is centered on the origin with the given outside dimensions.
func SemiStadium(width, height, round float64) sdf.SDF2 {
	switch {
	case height <= 0:
		panic("height <= 0")
	case width <= height/2:
		panic("width <= height/2")
	case round < 0:
		panic("round < 0")
	case round > height/2:
		panic("round > height/2")
	case round > width-height/2:
		panic("round > straight section of semistadium")
	}
	h := height / 2
	arcX := width/2 - h
	p := must2.NewPolygon()
	p.Add(arcX, -h)
	p.Add(-width/2, -h).Smooth(round, filletFacets)
	p.Add(-width/2, h).Smooth(round, filletFacets)
	p.Add(arcX, h)
	p.Add(arcX, -h).Arc(h, noseFacets)
	return must2.Polygon(p.Vertices())
}

// InsertPair returns the outline of the two pin inserts: a rounded block
// for the group of four, a semistadium for the group of three, a gap
// between the groups, and one drill hole per pin. The outline is centered
// like the housing profile that surrounds it.
func InsertPair(d dim.Set) sdf.SDF2 {
	iw := d.InsertWidth()
	ih := d.InsertHeight()
	c := d.PinCenters()

	// The gap between the pieces leaves the same edge-to-pin margin on
	// its sides as the outer edges do.
	leftEdge := -iw / 2
	gapLeft := c[3] + d.EdgeToPin()
	gapRight := c[4] - d.EdgeToPin()

	left := sdf.Transform2D(
		must2.Box(r2.Vec{X: gapLeft - leftEdge, Y: ih}, d.InsertFillet),
		sdf.Translate2D(r2.Vec{X: (leftEdge + gapLeft) / 2}),
	)
	right := sdf.Transform2D(
		SemiStadium(iw/2-gapRight, ih, d.InsertFillet),
		sdf.Translate2D(r2.Vec{X: (gapRight + iw/2) / 2}),
	)

	drills := sdf.Multi2D(must2.Circle(d.DrillRadius()), d.PinCenterVecs())
	return sdf.Difference2D(sdf.Union2D(left, right), drills)
}
