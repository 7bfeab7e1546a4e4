package part

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/danderson/snes-controller-connector/dim"
)

// Pin returns one contact pin, centered on x=0 in the construction frame.
// It runs forward along +Z through an insert drill, emerges behind the grip
// block, turns 90 degrees down and runs along -Y through the board. Both
// tips are hemispherical.
func Pin(d dim.Set) sdf.SDF3 {
	r := d.PinRadius()
	elbow := d.PinElbowRadius
	zFront := d.BodyThickness + d.InsertDepth - d.PinRecess
	zBack := -(d.GripDepth + d.PinBackRunout)
	yEnd := -(d.BodyHeight/2 + d.PinPCBStickout)

	// Horizontal run. It overlaps the elbow by one pin radius so the
	// union has no crease.
	axialLen := zFront - (zBack + elbow - r)
	axial := sdf.Transform3D(
		must3.Cylinder(axialLen, r, r),
		sdf.Translate3D(r3.Vec{Z: zFront - axialLen/2}),
	)

	// Quarter-torus elbow: revolve the pin cross section a quarter turn
	// about the origin, then stand the arc up in the pin's YZ plane so it
	// joins the horizontal run to the vertical one.
	bend := sdf.Transform3D(
		sdf.Revolve3D(
			sdf.Transform2D(must2.Circle(r), sdf.Translate2D(r2.Vec{X: elbow})),
			math.Pi/2,
		),
		sdf.Translate3D(r3.Vec{Y: -elbow, Z: zBack + elbow}).Mul(sdf.RotateY(math.Pi/2)),
	)

	// Vertical run down through the board.
	legTop := -elbow + r
	leg := sdf.Transform3D(
		must3.Cylinder(legTop-yEnd, r, r),
		sdf.Translate3D(r3.Vec{Y: (legTop + yEnd) / 2, Z: zBack}).Mul(sdf.RotateX(math.Pi/2)),
	)

	return sdf.Union3D(axial, bend, leg)
}
