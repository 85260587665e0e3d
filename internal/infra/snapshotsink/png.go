package snapshotsink

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

const pngPadding = 8

// PNG renders each snapshot as a monospace bitmap under dir, one file per
// applied command: <prefix>_001.png, <prefix>_002.png, ...
type PNG struct {
	dir    string
	prefix string
	face   *basicfont.Face
	fg, bg color.Color
}

func NewPNG(dir, prefix string) *PNG {
	if strings.TrimSpace(prefix) == "" {
		prefix = "snapshot"
	}
	return &PNG{
		dir:    dir,
		prefix: prefix,
		face:   basicfont.Face7x13,
		fg:     color.Black,
		bg:     color.White,
	}
}

var _ ports.SnapshotSink = (*PNG)(nil)

// FileName returns the file the snapshot with the given index is written to.
func (s *PNG) FileName(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%03d.png", s.prefix, index))
}

func (s *PNG) Emit(snap domain.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{Op: "snapshotsink.png.mkdir", Kind: domain.KindExecution, Path: s.dir, Err: err}
	}

	img := s.Render(snap.Text)
	path := s.FileName(snap.Index)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{Op: "snapshotsink.png.create", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return &domain.OpError{Op: "snapshotsink.png.encode", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "snapshotsink.png.close", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}

// Render draws text onto a new image sized to fit every line.
func (s *PNG) Render(text string) *image.RGBA {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	cols := 0
	for _, l := range lines {
		cols = max(cols, len([]rune(l)))
	}

	w := cols*s.face.Advance + 2*pngPadding
	h := len(lines)*s.face.Height + 2*pngPadding
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(s.fg),
		Face: s.face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(pngPadding, pngPadding+s.face.Ascent+i*s.face.Height)
		d.DrawString(l)
	}
	return img
}
