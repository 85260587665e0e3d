package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func snapshot(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func mustApply(t *testing.T, d *Dispatcher, g *Grid, lines ...string) *Grid {
	t.Helper()
	for _, l := range lines {
		next, err := d.Apply(g, l)
		if err != nil {
			t.Fatalf("Apply(%q): %v", l, err)
		}
		g = next
	}
	return g
}

func TestCanvasFrame(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 20 4")

	want := snapshot(
		"----------------------",
		"|                    |",
		"|                    |",
		"|                    |",
		"|                    |",
		"----------------------",
	)
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestCanvasDimensionsAndRing(t *testing.T) {
	d := NewDispatcher()
	sizes := [][2]int{{1, 1}, {3, 7}, {20, 4}, {0, 0}}

	for _, s := range sizes {
		w, h := s[0], s[1]
		g, err := d.Apply(nil, fmt.Sprintf("C %d %d", w, h))
		if err != nil {
			t.Fatalf("C %d %d: %v", w, h, err)
		}
		if g.Rows() != h+2 || g.Cols() != w+2 {
			t.Fatalf("C %d %d: got %dx%d grid", w, h, g.Cols(), g.Rows())
		}

		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				c, _ := g.At(Point{X: x, Y: y})
				ring := y == 0 || y == h+1 || x == 0 || x == w+1
				switch {
				case ring && (y == 0 || y == h+1):
					if c.Symbol != '-' || !c.Locked {
						t.Errorf("C %d %d: expected locked '-' at (%d,%d), got %+v", w, h, x, y, c)
					}
				case ring:
					if c.Symbol != '|' || !c.Locked {
						t.Errorf("C %d %d: expected locked '|' at (%d,%d), got %+v", w, h, x, y, c)
					}
				default:
					if !c.Blank() {
						t.Errorf("C %d %d: expected blank interior at (%d,%d)", w, h, x, y)
					}
				}
			}
		}
	}
}

func TestCanvasCustomSymbols(t *testing.T) {
	sym := DefaultSymbols()
	sym.HorizontalBorder = '='
	sym.VerticalBorder = '#'

	g := mustApply(t, NewDispatcher(WithSymbols(sym)), nil, "C 2 1")
	want := snapshot("====", "#  #", "====")
	if got := g.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCanvasResetsPreviousDrawing(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 5 3", "R 1 1 5 3", "B 3 2 *")
	g = mustApply(t, d, g, "C 5 3")

	fresh := mustApply(t, d, nil, "C 5 3")
	if g.String() != fresh.String() {
		t.Fatalf("canvas did not reset:\n%s", g.String())
	}
}

func TestLineHorizontalLeftToRightIsInclusive(t *testing.T) {
	g := mustApply(t, NewDispatcher(), nil, "C 5 3", "L 1 1 3 1")
	want := snapshot("-------", "|xxx  |", "|     |", "|     |", "-------")
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestLineHorizontalRightToLeftSkipsEndpoints(t *testing.T) {
	// Known quirk: reversed horizontal segments cover (x2, x1) exclusive.
	g := mustApply(t, NewDispatcher(), nil, "C 5 3", "L 4 1 1 1")
	want := snapshot("-------", "| xx  |", "|     |", "|     |", "-------")
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestLineVertical(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 3 3", "L 2 1 2 3")
	want := snapshot("-----", "| x |", "| x |", "| x |", "-----")
	if got := g.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}

	reversed := mustApply(t, d, nil, "C 3 3", "L 2 3 2 1")
	if reversed.String() != mustApply(t, d, nil, "C 3 3").String() {
		t.Fatalf("reversed vertical segment should draw nothing")
	}
}

func TestLineCellsAreLocked(t *testing.T) {
	g := mustApply(t, NewDispatcher(), nil, "C 5 3", "L 1 2 3 2", "L 5 1 5 3")
	for _, p := range []Point{{1, 2}, {3, 2}, {5, 1}, {5, 3}} {
		if c, _ := g.At(p); !c.Locked || c.Symbol != 'x' {
			t.Errorf("expected locked stroke at %v, got %+v", p, c)
		}
	}
}

func TestLineRejectsDiagonal(t *testing.T) {
	_, err := NewDispatcher().Parse("L 1 1 3 3")

	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Shape != KindLine {
		t.Fatalf("expected Line construction error, got %v", err)
	}
	if !errors.Is(err, ErrNotAxisAligned) {
		t.Fatalf("expected ErrNotAxisAligned, got %v", err)
	}
}

func TestLineOutOfCanvas(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 5 3")

	_, err := d.Apply(g, "L 1 1 30 1")
	var oe *OutOfCanvasError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OutOfCanvasError, got %v", err)
	}
	if oe.Shape != KindLine || oe.Point != (Point{X: 7, Y: 1}) {
		t.Fatalf("unexpected error %+v", oe)
	}
}

func TestCoordinateValidation(t *testing.T) {
	d := NewDispatcher()
	cases := []struct {
		line  string
		shape ShapeKind
		cause error
	}{
		{"L 1 2 a f", KindLine, nil},
		{"R -2 1 3 1", KindRectangle, ErrBelowMinimum},
		{"C x 4", KindCanvas, nil},
		{"C 4 -5", KindCanvas, ErrBelowMinimum},
		{"B 1 1 ab", KindFill, ErrInvalidSymbol},
		{"B 1 1 中", KindFill, ErrInvalidSymbol},
	}
	for _, c := range cases {
		_, err := d.Parse(c.line)
		var ce *ConstructionError
		if !errors.As(err, &ce) {
			t.Errorf("%q: expected ConstructionError, got %v", c.line, err)
			continue
		}
		if ce.Shape != c.shape {
			t.Errorf("%q: expected shape %s, got %s", c.line, c.shape, ce.Shape)
		}
		if c.cause != nil && !errors.Is(err, c.cause) {
			t.Errorf("%q: expected cause %v, got %v", c.line, c.cause, err)
		}
	}
}

func TestMinusOneIsAccepted(t *testing.T) {
	s, err := NewDispatcher().Parse("L -1 0 -1 2")
	if err != nil {
		t.Fatalf("expected -1 to pass validation, got %v", err)
	}
	if l := s.(*Line); l.Start.X != -1 {
		t.Fatalf("unexpected line %+v", l)
	}
}

func TestRectanglePerimeterIsClosed(t *testing.T) {
	g := mustApply(t, NewDispatcher(), nil, "C 6 5", "R 2 1 5 4")

	for x := 2; x <= 5; x++ {
		for _, y := range []int{1, 4} {
			if c, _ := g.At(Point{X: x, Y: y}); c.Symbol != 'x' {
				t.Errorf("expected stroke at (%d,%d)", x, y)
			}
		}
	}
	for y := 1; y <= 4; y++ {
		for _, x := range []int{2, 5} {
			if c, _ := g.At(Point{X: x, Y: y}); c.Symbol != 'x' {
				t.Errorf("expected stroke at (%d,%d)", x, y)
			}
		}
	}
	if c, _ := g.At(Point{X: 3, Y: 2}); !c.Blank() {
		t.Errorf("expected blank inside rectangle")
	}
}

func TestRectangleOutOfCanvasNamesRectangle(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 4 4")

	_, err := d.Apply(g, "R 1 1 9 2")
	var oe *OutOfCanvasError
	if !errors.As(err, &oe) || oe.Shape != KindRectangle {
		t.Fatalf("expected Rectangle OutOfCanvasError, got %v", err)
	}
}

func TestCanvasRejectsOversizedDimensions(t *testing.T) {
	d := NewDispatcher()
	for _, line := range []string{
		"C 9223372036854775805 1",
		"C 1 9223372036854775805",
		"C 9223372036854775807 9223372036854775807",
		"C 100000 100000",
		"C 1023 1022",
	} {
		g, err := d.Apply(nil, line)
		var ce *ConstructionError
		if !errors.As(err, &ce) || ce.Shape != KindCanvas {
			t.Errorf("%q: expected Canvas construction error, got %v", line, err)
			continue
		}
		if !errors.Is(err, ErrCanvasTooLarge) {
			t.Errorf("%q: expected ErrCanvasTooLarge, got %v", line, err)
		}
		if g != nil {
			t.Errorf("%q: expected no grid", line)
		}
	}
}

func TestCanvasLargestAllowed(t *testing.T) {
	g, err := NewDispatcher().Apply(nil, "C 1022 1022")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g.Rows()*g.Cols() != MaxCanvasCells {
		t.Fatalf("expected %d cells, got %dx%d", MaxCanvasCells, g.Cols(), g.Rows())
	}
}

func TestLineEndpointsOutsideCanvasFail(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 20 4")
	before := g.String()

	cases := []struct {
		line  string
		point Point
	}{
		{"L 100 50 100 40", Point{X: 100, Y: 50}},
		{"L 100 2 99 2", Point{X: 100, Y: 2}},
		{"L 3 9 3 2", Point{X: 3, Y: 9}},
	}
	for _, c := range cases {
		_, err := d.Apply(g, c.line)
		var oe *OutOfCanvasError
		if !errors.As(err, &oe) {
			t.Errorf("%q: expected OutOfCanvasError, got %v", c.line, err)
			continue
		}
		if oe.Shape != KindLine || oe.Point != c.point {
			t.Errorf("%q: unexpected error %+v", c.line, oe)
		}
	}
	if g.String() != before {
		t.Fatalf("failed lines mutated the grid")
	}
}

func TestRectangleReversedCornerOutsideCanvasFails(t *testing.T) {
	d := NewDispatcher()
	g := mustApply(t, d, nil, "C 20 4")

	_, err := d.Apply(g, "R 23 4 22 1")
	var oe *OutOfCanvasError
	if !errors.As(err, &oe) || oe.Shape != KindRectangle {
		t.Fatalf("expected Rectangle OutOfCanvasError, got %v", err)
	}
	if oe.Point != (Point{X: 23, Y: 4}) {
		t.Fatalf("unexpected point %+v", oe.Point)
	}
}

// Corner order matters: reversed horizontal edges skip their endpoints and
// reversed vertical edges draw nothing, so only top-left to bottom-right and
// top-right to bottom-left give a closed perimeter.
func TestRectangleCornerOrder(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"R 16 1 20 3", snapshot(
			"----------------------",
			"|               xxxxx|",
			"|               x   x|",
			"|               xxxxx|",
			"|                    |",
			"----------------------",
		)},
		{"R 20 1 16 3", snapshot(
			"----------------------",
			"|               xxxxx|",
			"|               x   x|",
			"|               xxxxx|",
			"|                    |",
			"----------------------",
		)},
		{"R 16 3 20 1", snapshot(
			"----------------------",
			"|               xxxxx|",
			"|                    |",
			"|               xxxxx|",
			"|                    |",
			"----------------------",
		)},
		{"R 20 3 16 1", snapshot(
			"----------------------",
			"|                xxx |",
			"|                    |",
			"|                xxx |",
			"|                    |",
			"----------------------",
		)},
	}
	for _, c := range cases {
		g := mustApply(t, NewDispatcher(), nil, "C 20 4", c.line)
		if got := g.String(); got != c.want {
			t.Errorf("%s: got\n%s\nwant\n%s", c.line, got, c.want)
		}
	}
}
