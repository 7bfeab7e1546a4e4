package part

import (
	"fmt"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/danderson/snes-controller-connector/dim"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Connector returns the assembled connector in PCB orientation: the XY
// plane is the board's top surface, the origin sits on the pin row midway
// between the two pin groups, the plug opening faces -Y, the standoffs rest
// on z=0 and the pin legs drop through it.
//
// mirrored selects the left-hand variant of a side by side pair of ports;
// the two variants are congruent under a half-turn about Z. The dimension
// table is validated first and geometry panics are recovered, so a bad
// table returns a descriptive error instead of a half-built solid.
func Connector(d dim.Set, mirrored bool) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return assemble(d, mirrored), nil
}

func assemble(d dim.Set, mirrored bool) sdf.SDF3 {
	// Mirroring uses half-turns rather than a reflection, which the
	// transform stack has no matrix for: spin each pin around in place,
	// assemble as usual, then spin the whole assembly back. The housing
	// is symmetric across the pin row, so only the pin bend direction
	// and the nose side trade places.
	flip := sdf.Translate3D(r3.Vec{})
	if mirrored {
		flip = sdf.RotateZ(math.Pi)
	}

	pin := Pin(d)
	solids := make([]sdf.SDF3, 0, dim.PinCount+1)
	solids = append(solids, Body(d))
	for _, x := range d.PinCenters() {
		solids = append(solids, sdf.Transform3D(pin,
			sdf.Translate3D(r3.Vec{X: x}).Mul(flip)))
	}
	all := sdf.Union3D(solids...)

	// Into PCB orientation: recenter X on the midpoint between the pin
	// groups, slide forward so the vertical pin runs land on the XZ
	// plane, tip the connector onto its back, then lift it until the
	// standoffs touch z=0.
	m := sdf.Translate3D(r3.Vec{Z: d.BodyHeight/2 + d.StandoffHeight}).
		Mul(sdf.RotateX(math.Pi / 2)).
		Mul(sdf.Translate3D(r3.Vec{Z: d.GripDepth + d.PinBackRunout})).
		Mul(flip).
		Mul(sdf.Translate3D(r3.Vec{X: -d.GroupGapCenter()}))
	return sdf.Transform3D(all, m)
}
