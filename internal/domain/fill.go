package domain

// Fill floods the region around Start with Symbol.
type Fill struct {
	Start  Point
	Symbol rune
}

// neighbours is the exploration order. The sixth entry is labelled
// down-left but equals up-right; true down-left (-1, 1) is never visited.
var neighbours = [8]Point{
	{X: 0, Y: -1},  // up
	{X: 1, Y: -1},  // up-right
	{X: 1, Y: 0},   // forward
	{X: 1, Y: 1},   // down-right
	{X: 0, Y: 1},   // down
	{X: 1, Y: -1},  // down-left
	{X: -1, Y: 0},  // back
	{X: -1, Y: -1}, // up-left
}

func buildFill(args []string, sym Symbols) (Shape, error) {
	c, err := parseInts([]string{"x", "y"}, args[:2])
	if err != nil {
		return nil, err
	}

	symbol := sym.Fill
	if len(args) == 3 {
		symbol, err = ParseSymbol(args[2])
		if err != nil {
			return nil, err
		}
	}
	return &Fill{Start: Point{X: c[0], Y: c[1]}, Symbol: symbol}, nil
}

func (f *Fill) Kind() ShapeKind { return KindFill }

// Draw paints every cell reachable from Start through unlocked cells that do
// not already hold Symbol. Cells are visited in the same order as a
// depth-first recursion over neighbours, using an explicit stack. Any step
// outside the grid aborts the fill.
func (f *Fill) Draw(g *Grid) (*Grid, error) {
	type frame struct {
		at   Point
		next int
	}

	paint := func(p Point) (bool, error) {
		c, ok := g.At(p)
		if !ok {
			return false, &OutOfCanvasError{Shape: KindFill, Point: p}
		}
		if c.Locked || c.Symbol == f.Symbol {
			return false, nil
		}
		g.Set(p, Cell{Symbol: f.Symbol})
		return true, nil
	}

	painted, err := paint(f.Start)
	if err != nil {
		return nil, err
	}
	if !painted {
		return g, nil
	}

	stack := []frame{{at: f.Start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(neighbours) {
			stack = stack[:len(stack)-1]
			continue
		}
		p := top.at.Add(neighbours[top.next])
		top.next++

		painted, err := paint(p)
		if err != nil {
			return nil, err
		}
		if painted {
			stack = append(stack, frame{at: p})
		}
	}
	return g, nil
}
