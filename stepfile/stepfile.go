// Package stepfile writes triangle meshes as ISO 10303-21 (STEP) part
// files. The mesh becomes a single faceted boundary representation solid
// with one planar face per triangle, which CAD packages import like any
// other STEP body. Units are millimeters, AP214 schema.
package stepfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Create renders r and writes the resulting mesh to path as a STEP part
// named after the file.
func Create(path string, r render.Renderer) error {
	tris, err := render.RenderAll(r)
	if err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Write(fp, name, tris)
}

// Write writes the mesh to w as a STEP faceted BREP solid called name.
// Triangles whose corners coincide at float32 precision are dropped, the
// same limit the STL encoding has, so both formats describe one surface.
func Write(w io.Writer, name string, tris []r3.Triangle) error {
	bw := bufio.NewWriter(w)
	e := &entityWriter{w: bw}

	fmt.Fprintf(bw, "ISO-10303-21;\nHEADER;\n")
	fmt.Fprintf(bw, "FILE_DESCRIPTION(('%s'),'2;1');\n", name)
	fmt.Fprintf(bw, "FILE_NAME('%s','%s',(''),(''),'','','');\n",
		name, time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(bw, "FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));\n")
	fmt.Fprintf(bw, "ENDSEC;\nDATA;\n")

	appCtx := e.entity("APPLICATION_CONTEXT('core data for automotive mechanical design processes')")
	e.entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2000,#%d)", appCtx)
	mechCtx := e.entity("MECHANICAL_CONTEXT('',#%d,'mechanical')", appCtx)
	product := e.entity("PRODUCT('%s','%s','',(#%d))", name, name, mechCtx)
	formation := e.entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", product)
	defCtx := e.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", appCtx)
	pdef := e.entity("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defCtx)
	pshape := e.entity("PRODUCT_DEFINITION_SHAPE('','',#%d)", pdef)
	lenUnit := e.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angUnit := e.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solidUnit := e.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := e.entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-6),#%d,'distance_accuracy_value','')", lenUnit)
	geomCtx := e.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('%s','3D'))",
		uncertainty, lenUnit, angUnit, solidUnit, name)

	// Shared vertices collapse to one CARTESIAN_POINT, welded at float32
	// precision like the STL encoding welds them.
	points := make(map[[3]float32]int)
	pointID := func(v r3.Vec) int {
		key := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		if id, ok := points[key]; ok {
			return id
		}
		id := e.entity("CARTESIAN_POINT('',(%s,%s,%s))", fnum(v.X), fnum(v.Y), fnum(v.Z))
		points[key] = id
		return id
	}

	var faces []int
	for _, t := range tris {
		if degenerate(t) {
			continue
		}
		p0 := pointID(t[0])
		p1 := pointID(t[1])
		p2 := pointID(t[2])
		loop := e.entity("POLY_LOOP('',(#%d,#%d,#%d))", p0, p1, p2)
		bound := e.entity("FACE_OUTER_BOUND('',#%d,.T.)", loop)
		n := t.Normal()
		ref := r3.Unit(r3.Sub(t[1], t[0]))
		axis := e.entity("DIRECTION('',(%s,%s,%s))", fnum(n.X), fnum(n.Y), fnum(n.Z))
		refDir := e.entity("DIRECTION('',(%s,%s,%s))", fnum(ref.X), fnum(ref.Y), fnum(ref.Z))
		place := e.entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", p0, axis, refDir)
		plane := e.entity("PLANE('',#%d)", place)
		faces = append(faces, e.entity("FACE_SURFACE('',(#%d),#%d,.T.)", bound, plane))
	}
	if len(faces) == 0 {
		return errors.New("stepfile: no non-degenerate triangles in mesh")
	}

	var refs strings.Builder
	for i, f := range faces {
		if i > 0 {
			refs.WriteByte(',')
		}
		refs.WriteByte('#')
		refs.WriteString(strconv.Itoa(f))
	}
	shell := e.entity("CLOSED_SHELL('',(%s))", refs.String())
	brep := e.entity("FACETED_BREP('',#%d)", shell)
	rep := e.entity("FACETED_BREP_SHAPE_REPRESENTATION('%s',(#%d),#%d)", name, brep, geomCtx)
	e.entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", pshape, rep)

	fmt.Fprintf(bw, "ENDSEC;\nEND-ISO-10303-21;\n")
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

// entityWriter assigns sequential #ids and remembers the first write error.
type entityWriter struct {
	w   *bufio.Writer
	id  int
	err error
}

func (e *entityWriter) entity(format string, args ...interface{}) int {
	e.id++
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, "#%d="+format+";\n", append([]interface{}{e.id}, args...)...)
	}
	return e.id
}

// fnum formats a coordinate as a STEP real, which requires a decimal point.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'E', 6, 64)
}

// degenerate reports whether the triangle collapses once its corners are
// welded at float32 precision.
func degenerate(t r3.Triangle) bool {
	return equalWithinF32(t[0], t[1], 0) ||
		equalWithinF32(t[1], t[2], 0) ||
		equalWithinF32(t[2], t[0], 0)
}

func equalWithinF32(a, b r3.Vec, tol float32) bool {
	return math32.Abs(float32(a.X)-float32(b.X)) <= tol &&
		math32.Abs(float32(a.Y)-float32(b.Y)) <= tol &&
		math32.Abs(float32(a.Z)-float32(b.Z)) <= tol
}
