package stepfile_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/danderson/snes-controller-connector/stepfile"
)

func TestWriteStructure(t *testing.T) {
	tris, err := render.RenderAll(render.NewOctreeRenderer(must3.Box(r3.Vec{X: 5, Y: 3, Z: 2}, 0), 20))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) == 0 {
		t.Fatal("renderer produced no triangles")
	}
	var buf bytes.Buffer
	if err := stepfile.Write(&buf, "box", tris); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, tok := range []string{
		"ISO-10303-21;",
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN",
		"DATA;",
		"PRODUCT('box'",
		"CLOSED_SHELL",
		"FACETED_BREP(",
		"SHAPE_DEFINITION_REPRESENTATION",
		"END-ISO-10303-21;",
	} {
		if !strings.Contains(out, tok) {
			t.Errorf("output missing %q", tok)
		}
	}

	faces := strings.Count(out, "FACE_SURFACE(")
	if faces == 0 || faces > len(tris) {
		t.Errorf("%d FACE_SURFACE entities for %d triangles", faces, len(tris))
	}
	if loops := strings.Count(out, "POLY_LOOP("); loops != faces {
		t.Errorf("%d POLY_LOOP entities for %d faces", loops, faces)
	}

	// Entity ids must be unique and strictly increasing.
	last := 0
	sc := bufio.NewScanner(&buf)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			t.Fatalf("malformed entity line %q", line)
		}
		id, err := strconv.Atoi(line[1:eq])
		if err != nil {
			t.Fatalf("malformed entity id in %q", line)
		}
		if id <= last {
			t.Fatalf("entity id %d after %d", id, last)
		}
		last = id
	}
}

func TestWriteWeldsVertices(t *testing.T) {
	// Two triangles sharing an edge, plus one that collapses at float32
	// precision and must be dropped.
	tris := []r3.Triangle{
		{{X: 0}, {X: 1}, {Y: 1}},
		{{X: 0}, {Y: 1}, {Z: 1}},
		{{X: 1}, {X: 1 + 1e-9}, {Y: 1}},
	}
	var buf bytes.Buffer
	if err := stepfile.Write(&buf, "tris", tris); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got := strings.Count(out, "FACE_SURFACE("); got != 2 {
		t.Errorf("%d faces, want 2 (degenerate triangle kept?)", got)
	}
	// Four distinct corners between the two kept triangles.
	if got := strings.Count(out, "CARTESIAN_POINT("); got != 4 {
		t.Errorf("%d CARTESIAN_POINT entities, want 4", got)
	}
}

func TestWriteEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := stepfile.Write(&buf, "empty", nil); err == nil {
		t.Error("empty mesh accepted")
	}
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.step")
	err := stepfile.Create(path, render.NewOctreeRenderer(must3.Sphere(3), 20))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("ISO-10303-21;")) {
		t.Error("file does not start with the STEP magic record")
	}
	if !strings.Contains(string(b), "PRODUCT('sphere'") {
		t.Error("part not named after the file")
	}
}
