package domain

// Rectangle is the closed perimeter spanned by two opposite corners.
type Rectangle struct {
	Edges [4]*Line
}

func buildRectangle(args []string, sym Symbols) (Shape, error) {
	c, err := parseInts([]string{"x1", "y1", "x2", "y2"}, args)
	if err != nil {
		return nil, err
	}
	return newRectangle(c[0], c[1], c[2], c[3], sym.Stroke), nil
}

// newRectangle builds the edges in drawing order: top, right, bottom, left.
func newRectangle(x1, y1, x2, y2 int, symbol rune) *Rectangle {
	return &Rectangle{Edges: [4]*Line{
		newLine(x1, y1, x2, y1, symbol),
		newLine(x2, y1, x2, y2, symbol),
		newLine(x1, y2, x2, y2, symbol),
		newLine(x1, y1, x1, y2, symbol),
	}}
}

func (r *Rectangle) Kind() ShapeKind { return KindRectangle }

func (r *Rectangle) Draw(g *Grid) (*Grid, error) {
	for _, e := range r.Edges {
		if err := drawLine(KindRectangle, g, e.Start, e.End, e.Symbol, e.Symbol); err != nil {
			return nil, err
		}
	}
	if err := checkEndpoints(KindRectangle, g, r.Edges[0].Start, r.Edges[2].End); err != nil {
		return nil, err
	}
	return g, nil
}
