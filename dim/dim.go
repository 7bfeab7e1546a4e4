// Package dim holds the physical dimensions of the controller port and the
// values derived from them.
//
// During part construction the reference orientation is looking into the
// connector, with the group of four pins on the left:
//
//   - X: width, left-right. The rounded side of the housing is to the right.
//   - Y: height, up-down. The solder pins point down.
//   - Z: depth, forward-back. The plug opening faces forward.
//
// The finished assembly is rotated so the XY plane is the PCB surface.
// All dimensions are in millimeters.
package dim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// PinCount is the number of contacts: a group of four and a group of three.
const PinCount = 7

// Set is the full dimension table for one connector. The zero value is not
// usable; start from Default and override as needed.
type Set struct {
	// Dimensions verified against a real part.

	// Outer shell of the housing, not counting the front flange.
	BodyWidth  float64 `yaml:"body_width"`
	BodyHeight float64 `yaml:"body_height"`
	BodyDepth  float64 `yaml:"body_depth"`

	// Depth of the plug cavity, measured from the front of the shell.
	BodyCavityDepth float64 `yaml:"body_cavity_depth"`

	// The flange ring on the front of the shell sticks out by this much
	// up, down, left and right.
	FlangeStickout float64 `yaml:"flange_stickout"`
	FlangeDepth    float64 `yaml:"flange_depth"`

	// The inserts are the two plastic pieces inside the cavity that
	// surround the pins and guide the plug. Their outline follows from the
	// pin positions; these set the drill size, the plastic left around the
	// drills, and how deep the pieces are.
	InsertDrillDiameter float64 `yaml:"insert_drill_diameter"`
	InsertHMargin       float64 `yaml:"insert_horizontal_margin"`
	InsertVMargin       float64 `yaml:"insert_vertical_margin"`
	InsertDepth         float64 `yaml:"insert_depth"` // front surface to bottom of cavity

	// Contact pins. The seven pins are split four/three with a wider gap
	// between the groups.
	PinDiameter    float64 `yaml:"pin_diameter"`
	PinSpacing     float64 `yaml:"pin_spacing"`
	PinGroupGap    float64 `yaml:"pin_group_gap"` // extra spacing between the groups
	PinRecess      float64 `yaml:"pin_recess"`    // from the front surface of the insert
	PinPCBStickout float64 `yaml:"pin_pcb_stickout"`
	PinBackRunout  float64 `yaml:"pin_back_runout"` // protrusion behind the grip

	// Dimensions estimated from photos and third-party drawings.

	BodyOuterFillet float64 `yaml:"body_outer_fillet"`
	BodyInnerFillet float64 `yaml:"body_inner_fillet"`

	// Shell wall left after carving the cavity.
	BodyThickness float64 `yaml:"body_thickness"`

	// Standoff strips on the top and bottom of the shell. They let the
	// housing flex without transferring force to the board.
	StandoffWidth        float64 `yaml:"standoff_width"`
	StandoffHeight       float64 `yaml:"standoff_height"`
	StandoffEdgeDistance float64 `yaml:"standoff_edge_distance"`

	// Bend radius of the pins' 90 degree turn.
	PinElbowRadius float64 `yaml:"pin_elbow_radius"`

	// The grip block on the back of the shell holds the pins vertical.
	GripMargin float64 `yaml:"grip_margin"` // material left/right of each pin
	GripDepth  float64 `yaml:"grip_depth"`

	// Corner rounding on the insert outlines.
	InsertFillet float64 `yaml:"insert_fillet"`

	// Cosmetic edge blending radius. Zero disables it; rendering is much
	// cheaper without it and the difference is invisible at PCB scale.
	CosmeticFillet float64 `yaml:"cosmetic_fillet"`
}

// Default returns the dimensions measured on the aftermarket part this model
// reproduces.
func Default() Set {
	return Set{
		BodyWidth:       38.7,
		BodyHeight:      12.0,
		BodyDepth:       11.4,
		BodyCavityDepth: 9.8,

		FlangeStickout: 1.95,
		FlangeDepth:    2,

		InsertDrillDiameter: 3.6,
		InsertHMargin:       0.65,
		InsertVMargin:       0.8,
		InsertDepth:         13.1,

		PinDiameter:    1.2,
		PinSpacing:     4,
		PinGroupGap:    2.5,
		PinRecess:      1.5,
		PinPCBStickout: 8,
		PinBackRunout:  0.2,

		BodyOuterFillet: 1.75,
		BodyInnerFillet: 1.0,
		BodyThickness:   1.6,

		StandoffWidth:        1,
		StandoffHeight:       0.5,
		StandoffEdgeDistance: 7,

		PinElbowRadius: 1.2,
		GripMargin:     1.2,
		GripDepth:      2.4,
		InsertFillet:   0.5,
	}
}

// PinRadius returns half the pin diameter.
func (d Set) PinRadius() float64 { return d.PinDiameter / 2 }

// DrillRadius returns half the insert drill diameter.
func (d Set) DrillRadius() float64 { return d.InsertDrillDiameter / 2 }

// EdgeToPin returns the distance from the outside edge of an insert to the
// centerline of the nearest pin.
func (d Set) EdgeToPin() float64 { return d.InsertHMargin + d.DrillRadius() }

// InsertWidth returns the width of the two inserts taken as a single piece.
func (d Set) InsertWidth() float64 {
	return float64(PinCount-1)*d.PinSpacing + d.PinGroupGap + 2*d.EdgeToPin()
}

// InsertHeight returns the insert outline height.
func (d Set) InsertHeight() float64 {
	return d.InsertDrillDiameter + 2*d.InsertVMargin
}

// GripWidth returns the width of the rear pin grip block.
func (d Set) GripWidth() float64 {
	return float64(PinCount-1)*d.PinSpacing + d.PinGroupGap + 2*(d.PinRadius()+d.GripMargin)
}

// GripHeight returns the height of the rear pin grip block.
func (d Set) GripHeight() float64 { return d.PinDiameter + 2*d.GripMargin }

// NotchWidth returns the width of a pin notch in the grip.
func (d Set) NotchWidth() float64 { return d.PinDiameter }

// NotchDepth returns how far a pin notch cuts into the grip.
func (d Set) NotchDepth() float64 { return d.PinDiameter }

// PinCenters returns the X offset of each pin centerline from the center of
// the insert pair. Pin 1 is leftmost; the wider gap sits between pins 4
// and 5.
func (d Set) PinCenters() [PinCount]float64 {
	var x [PinCount]float64
	x[0] = -d.InsertWidth()/2 + d.EdgeToPin()
	for i := 1; i < PinCount; i++ {
		x[i] = x[i-1] + d.PinSpacing
		if i == 4 {
			x[i] += d.PinGroupGap
		}
	}
	return x
}

// PinCenterVecs returns PinCenters as 2D vectors, for hole placement.
func (d Set) PinCenterVecs() []r2.Vec {
	c := d.PinCenters()
	v := make([]r2.Vec, len(c))
	for i, x := range c {
		v[i] = r2.Vec{X: x}
	}
	return v
}

// GroupGapCenter returns the X offset of the midpoint between the two pin
// groups, the reference point PCB footprints use as their origin.
func (d Set) GroupGapCenter() float64 {
	c := d.PinCenters()
	return (c[3] + c[4]) / 2
}

// PunchoutWidth returns the width of the gap between the two insert pieces.
func (d Set) PunchoutWidth() float64 {
	return d.PinSpacing + d.PinGroupGap - 2*d.EdgeToPin()
}

// Validate checks the dimension table for internal consistency. Any
// violation aborts model generation with a descriptive message.
func (d Set) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"body_width", d.BodyWidth},
		{"body_height", d.BodyHeight},
		{"body_depth", d.BodyDepth},
		{"body_cavity_depth", d.BodyCavityDepth},
		{"flange_stickout", d.FlangeStickout},
		{"flange_depth", d.FlangeDepth},
		{"insert_drill_diameter", d.InsertDrillDiameter},
		{"insert_horizontal_margin", d.InsertHMargin},
		{"insert_vertical_margin", d.InsertVMargin},
		{"insert_depth", d.InsertDepth},
		{"pin_diameter", d.PinDiameter},
		{"pin_spacing", d.PinSpacing},
		{"pin_pcb_stickout", d.PinPCBStickout},
		{"body_thickness", d.BodyThickness},
		{"standoff_width", d.StandoffWidth},
		{"standoff_height", d.StandoffHeight},
		{"standoff_edge_distance", d.StandoffEdgeDistance},
		{"grip_margin", d.GripMargin},
		{"grip_depth", d.GripDepth},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("dim: %s must be > 0, got %v", p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"pin_group_gap", d.PinGroupGap},
		{"pin_recess", d.PinRecess},
		{"pin_back_runout", d.PinBackRunout},
		{"body_outer_fillet", d.BodyOuterFillet},
		{"body_inner_fillet", d.BodyInnerFillet},
		{"insert_fillet", d.InsertFillet},
		{"cosmetic_fillet", d.CosmeticFillet},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("dim: %s must be >= 0, got %v", p.name, p.v)
		}
	}

	// Housing profile constraints. The semistadium's nose arc consumes
	// height/2 of the width, and the corner fillets need room on the
	// remaining straight edges.
	if d.BodyWidth <= d.BodyHeight {
		return fmt.Errorf("dim: body_width (%v) must exceed body_height (%v)", d.BodyWidth, d.BodyHeight)
	}
	if d.BodyOuterFillet > d.BodyHeight/2 {
		return fmt.Errorf("dim: body_outer_fillet (%v) exceeds half of body_height (%v)", d.BodyOuterFillet, d.BodyHeight)
	}
	if d.BodyOuterFillet > d.BodyWidth-d.BodyHeight/2 {
		return fmt.Errorf("dim: body_outer_fillet (%v) does not fit the straight section of the housing profile", d.BodyOuterFillet)
	}
	if 2*d.BodyThickness >= d.BodyHeight {
		return fmt.Errorf("dim: body_thickness (%v) leaves no cavity in a %vmm tall housing", d.BodyThickness, d.BodyHeight)
	}
	innerW, innerH := d.BodyWidth-2*d.BodyThickness, d.BodyHeight-2*d.BodyThickness
	if d.BodyInnerFillet > innerH/2 {
		return fmt.Errorf("dim: body_inner_fillet (%v) exceeds half of the cavity height (%v)", d.BodyInnerFillet, innerH)
	}
	if d.BodyCavityDepth >= d.BodyDepth {
		return fmt.Errorf("dim: body_cavity_depth (%v) must be less than body_depth (%v)", d.BodyCavityDepth, d.BodyDepth)
	}
	if innerW <= innerH {
		return fmt.Errorf("dim: cavity profile degenerate, body_width too small for body_thickness %v", d.BodyThickness)
	}

	// Insert constraints.
	if d.InsertDrillDiameter <= d.PinDiameter {
		return fmt.Errorf("dim: insert_drill_diameter (%v) must exceed pin_diameter (%v)", d.InsertDrillDiameter, d.PinDiameter)
	}
	if d.InsertFillet > d.InsertHeight()/2 {
		return fmt.Errorf("dim: insert_fillet (%v) exceeds half of the insert height (%v)", d.InsertFillet, d.InsertHeight())
	}
	if d.PunchoutWidth() <= 0 {
		return fmt.Errorf("dim: pin groups too close together, no room for the insert gap (punchout width %v)", d.PunchoutWidth())
	}
	if d.PinRecess >= d.InsertDepth {
		return fmt.Errorf("dim: pin_recess (%v) must be less than insert_depth (%v)", d.PinRecess, d.InsertDepth)
	}

	// Pin and grip constraints.
	if d.PinElbowRadius < d.PinRadius() {
		return fmt.Errorf("dim: pin_elbow_radius (%v) must be at least the pin radius (%v)", d.PinElbowRadius, d.PinRadius())
	}
	if d.NotchDepth() > d.GripDepth {
		return fmt.Errorf("dim: grip notch depth (%v) exceeds grip_depth (%v)", d.NotchDepth(), d.GripDepth)
	}
	if 2*d.StandoffEdgeDistance >= d.BodyWidth {
		return fmt.Errorf("dim: standoff_edge_distance (%v) puts the standoffs past the housing midline", d.StandoffEdgeDistance)
	}
	return nil
}
