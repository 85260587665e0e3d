package domain

// MaxCanvasCells caps the framed grid size, border included.
const MaxCanvasCells = 1 << 20

// Canvas establishes (or resets) the grid: a width × height drawable area
// surrounded by a one-cell border.
type Canvas struct {
	Width  int
	Height int

	HorizontalBorder rune
	VerticalBorder   rune
}

func buildCanvas(args []string, sym Symbols) (Shape, error) {
	d, err := parseInts([]string{"width", "height"}, args)
	if err != nil {
		return nil, err
	}
	if d[0] > MaxCanvasCells || d[1] > MaxCanvasCells || d[0]+2 > MaxCanvasCells/(d[1]+2) {
		return nil, ErrCanvasTooLarge
	}
	return &Canvas{
		Width:            d[0],
		Height:           d[1],
		HorizontalBorder: sym.HorizontalBorder,
		VerticalBorder:   sym.VerticalBorder,
	}, nil
}

func (c *Canvas) Kind() ShapeKind { return KindCanvas }

// Draw ignores g and returns a fresh framed grid.
func (c *Canvas) Draw(_ *Grid) (*Grid, error) {
	g := NewGrid(c.Width+2, c.Height+2)

	frame := newRectangle(0, 0, c.Width+1, c.Height+1, c.HorizontalBorder)
	for _, e := range frame.Edges {
		start, end := e.Start, e.End
		if start.Y != end.Y {
			// Corners belong to the horizontal edges.
			start.Y++
			end.Y--
		}
		if err := drawLine(KindCanvas, g, start, end, c.HorizontalBorder, c.VerticalBorder); err != nil {
			return nil, err
		}
	}
	return g, nil
}
