// Package part builds the connector solids: the plastic housing, a single
// contact pin, and the assembled left/right variants.
//
// Construction happens in the frame documented in package dim: looking into
// the connector, X left-right, Y up-down, Z toward the viewer, with the back
// face of the shell on the z=0 plane. Connector applies the final rotation
// into PCB orientation.
package part

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/danderson/snes-controller-connector/dim"
	"github.com/danderson/snes-controller-connector/profile"
)

// Body returns the housing: shell, plug cavity, front flange ring, standoff
// strips, the pin inserts and the rear grip block. Everything but the pins.
func Body(d dim.Set) sdf.SDF3 {
	inner := profile.SemiStadium(
		d.BodyWidth-2*d.BodyThickness,
		d.BodyHeight-2*d.BodyThickness,
		d.BodyInnerFillet,
	)

	shell := extrudeAt(
		profile.SemiStadium(d.BodyWidth, d.BodyHeight, d.BodyOuterFillet),
		d.BodyDepth, d.BodyDepth/2,
	)
	cavity := extrudeAt(inner, d.BodyCavityDepth, d.BodyDepth-d.BodyCavityDepth/2)
	hollowed := sdf.Difference3D(shell, cavity)

	// The flange ring shares the cavity opening, so cut the inner profile
	// out of it in 2D before extruding.
	flangeRing := sdf.Difference2D(
		profile.SemiStadium(
			d.BodyWidth+2*d.FlangeStickout,
			d.BodyHeight+2*d.FlangeStickout,
			d.BodyOuterFillet,
		),
		inner,
	)
	flange := extrudeAt(flangeRing, d.FlangeDepth, d.BodyDepth+d.FlangeDepth/2)

	inserts := extrudeAt(
		profile.InsertPair(d),
		d.InsertDepth, d.BodyThickness+d.InsertDepth/2,
	)

	grip := sdf.Transform3D(
		must3.Box(r3.Vec{X: d.GripWidth(), Y: d.GripHeight(), Z: d.GripDepth}, 0),
		sdf.Translate3D(r3.Vec{Z: -d.GripDepth / 2}),
	)

	body := sdf.Union3D(hollowed, flange, standoffStrips(d), inserts, grip)
	if d.CosmeticFillet > 0 {
		body.SetMin(sdf.MinRound(d.CosmeticFillet))
	}
	return sdf.Difference3D(body, gripNotches(d))
}

// standoffStrips returns the four strips on the top and bottom of the shell
// that rest on the board, running the full depth of the shell.
func standoffStrips(d dim.Set) sdf.SDF3 {
	strip := must3.Box(r3.Vec{X: d.StandoffWidth, Y: d.StandoffHeight, Z: d.BodyDepth}, 0)
	xOfs := d.BodyWidth/2 - d.StandoffEdgeDistance
	yOfs := (d.BodyHeight + d.StandoffHeight) / 2
	return sdf.Multi3D(strip, []r3.Vec{
		{X: -xOfs, Y: -yOfs, Z: d.BodyDepth / 2},
		{X: xOfs, Y: -yOfs, Z: d.BodyDepth / 2},
		{X: -xOfs, Y: yOfs, Z: d.BodyDepth / 2},
		{X: xOfs, Y: yOfs, Z: d.BodyDepth / 2},
	})
}

// gripNotches returns the slots in the back of the grip block, one per pin,
// that the pin elbows drop into.
func gripNotches(d dim.Set) sdf.SDF3 {
	notch := must3.Box(r3.Vec{X: d.NotchWidth(), Y: d.GripHeight(), Z: d.NotchDepth()}, 0)
	pos := make([]r3.Vec, 0, dim.PinCount)
	for _, x := range d.PinCenters() {
		pos = append(pos, r3.Vec{X: x, Z: -d.GripDepth + d.NotchDepth()/2})
	}
	return sdf.Multi3D(notch, pos)
}

// extrudeAt extrudes s symmetrically to the given height and recenters the
// result at z.
func extrudeAt(s sdf.SDF2, height, z float64) sdf.SDF3 {
	return sdf.Transform3D(sdf.Extrude3D(s, height), sdf.Translate3D(r3.Vec{Z: z}))
}
