package domain

// ShapeKind names a shape variant. It is used in every shape error.
type ShapeKind string

const (
	KindCanvas    ShapeKind = "Canvas"
	KindLine      ShapeKind = "Line"
	KindRectangle ShapeKind = "Rectangle"
	KindFill      ShapeKind = "Fill"
)

// Shape is a constructed, validated drawing command.
// Draw mutates g and returns the grid the next command must see; Canvas
// returns a new grid instead.
type Shape interface {
	Kind() ShapeKind
	Draw(g *Grid) (*Grid, error)
}

// Variant describes how one command key becomes a Shape.
type Variant struct {
	Key       string
	Kind      ShapeKind
	MinParams int
	MaxParams int

	build func(args []string, sym Symbols) (Shape, error)
}

// Construct checks the parameter count, then parses and validates args.
func (v Variant) Construct(args []string, sym Symbols) (Shape, error) {
	if len(args) < v.MinParams || len(args) > v.MaxParams {
		return nil, &ArityError{Shape: v.Kind, Min: v.MinParams, Max: v.MaxParams, Got: len(args)}
	}

	s, err := v.build(args, sym)
	if err != nil {
		return nil, &ConstructionError{Shape: v.Kind, Err: err}
	}
	return s, nil
}

// Variants returns the closed shape catalog keyed by command letter.
func Variants() map[string]Variant {
	return map[string]Variant{
		"C": {Key: "C", Kind: KindCanvas, MinParams: 2, MaxParams: 2, build: buildCanvas},
		"L": {Key: "L", Kind: KindLine, MinParams: 4, MaxParams: 4, build: buildLine},
		"R": {Key: "R", Kind: KindRectangle, MinParams: 4, MaxParams: 4, build: buildRectangle},
		"B": {Key: "B", Kind: KindFill, MinParams: 2, MaxParams: 3, build: buildFill},
	}
}
