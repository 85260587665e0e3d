package domain

import "strings"

// Dispatcher turns command lines into shapes and applies them to a grid.
type Dispatcher struct {
	variants map[string]Variant
	symbols  Symbols
}

type DispatcherOption func(*Dispatcher)

// WithSymbols overrides the default drawing symbols.
func WithSymbols(sym Symbols) DispatcherOption {
	return func(d *Dispatcher) { d.symbols = sym }
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		variants: Variants(),
		symbols:  DefaultSymbols(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse resolves the command key and constructs the shape.
func (d *Dispatcher) Parse(line string) (Shape, error) {
	fields := strings.Fields(line)

	key := ""
	var args []string
	if len(fields) > 0 {
		key, args = fields[0], fields[1:]
	}

	v, ok := d.variants[key]
	if !ok {
		return nil, &UnknownShapeError{Key: key}
	}
	return v.Construct(args, d.symbols)
}

// Draw applies s to a copy of g and returns the copy. g itself is never
// modified, so a failed draw leaves the caller's grid intact.
func (d *Dispatcher) Draw(g *Grid, s Shape) (*Grid, error) {
	if s.Kind() == KindCanvas {
		return s.Draw(nil)
	}
	if g.IsEmpty() {
		return nil, &NoCanvasError{Shape: s.Kind()}
	}
	return s.Draw(g.Clone())
}

// Apply parses line and draws it on g.
func (d *Dispatcher) Apply(g *Grid, line string) (*Grid, error) {
	s, err := d.Parse(line)
	if err != nil {
		return nil, err
	}
	return d.Draw(g, s)
}
