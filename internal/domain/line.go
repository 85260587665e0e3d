package domain

// Line is an axis-aligned segment between two points.
type Line struct {
	Start  Point
	End    Point
	Symbol rune
}

func buildLine(args []string, sym Symbols) (Shape, error) {
	c, err := parseInts([]string{"x1", "y1", "x2", "y2"}, args)
	if err != nil {
		return nil, err
	}
	l := newLine(c[0], c[1], c[2], c[3], sym.Stroke)
	if l.Start.X != l.End.X && l.Start.Y != l.End.Y {
		return nil, ErrNotAxisAligned
	}
	return l, nil
}

func newLine(x1, y1, x2, y2 int, symbol rune) *Line {
	return &Line{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}, Symbol: symbol}
}

func (l *Line) Kind() ShapeKind { return KindLine }

func (l *Line) Draw(g *Grid) (*Grid, error) {
	if err := drawLine(KindLine, g, l.Start, l.End, l.Symbol, l.Symbol); err != nil {
		return nil, err
	}
	if err := checkEndpoints(KindLine, g, l.Start, l.End); err != nil {
		return nil, err
	}
	return g, nil
}

// checkEndpoints rejects segments whose endpoints fall outside g even when
// the rasterized range skipped them.
func checkEndpoints(kind ShapeKind, g *Grid, pts ...Point) error {
	for _, p := range pts {
		if !g.Contains(p) {
			return &OutOfCanvasError{Shape: kind, Point: p}
		}
	}
	return nil
}

// drawLine stamps a straight segment into g. Vertical segments cover
// start.Y..end.Y inclusive and nothing when start.Y > end.Y. Horizontal
// segments cover [min(start.X, end.X+1), max(start.X, end.X+1)), which is
// inclusive left to right and skips both endpoints right to left.
// Segments that are neither vertical nor horizontal draw nothing.
func drawLine(kind ShapeKind, g *Grid, start, end Point, horizontal, vertical rune) error {
	switch {
	case start.X == end.X:
		for y := start.Y; y <= end.Y; y++ {
			p := Point{X: start.X, Y: y}
			if !g.Set(p, Cell{Symbol: vertical, Locked: true}) {
				return &OutOfCanvasError{Shape: kind, Point: p}
			}
		}

	case start.Y == end.Y:
		if start.Y < 0 || start.Y >= g.Rows() {
			return &OutOfCanvasError{Shape: kind, Point: start}
		}
		from := min(start.X, end.X+1)
		to := max(start.X, end.X+1)
		for x := from; x < to; x++ {
			p := Point{X: x, Y: start.Y}
			if !g.Set(p, Cell{Symbol: horizontal, Locked: true}) {
				return &OutOfCanvasError{Shape: kind, Point: p}
			}
		}
	}
	return nil
}
