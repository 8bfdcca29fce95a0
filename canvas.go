package clove

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/clove/text"
)

// MaxDimension is the largest width or height of a canvas, layer or pixmap.
const MaxDimension = 16384

// Canvas owns a background and a stack of layers, and turns them into an
// image.
//
// A Canvas is not safe for concurrent use. Its font registry is, and may be
// shared between canvases with WithFontRegistry.
type Canvas struct {
	width       int
	height      int
	background  Color
	fonts       *text.Registry
	jpegQuality int
	layers      *LayerManager
	states      []canvasState
}

// canvasState is what SaveState pushes.
type canvasState struct {
	background Color
	fonts      *text.Registry
}

// New creates a canvas. Both sides must be in [1, MaxDimension].
func New(width, height int, opts ...Option) (*Canvas, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = text.NewRegistry()
	}
	return &Canvas{
		width:       width,
		height:      height,
		background:  o.background,
		fonts:       o.fonts,
		jpegQuality: o.jpegQuality,
		layers:      NewLayerManager(width, height),
	}, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

// Background returns the color painted below all layers.
func (c *Canvas) Background() Color { return c.background }

// SetBackground sets the color painted below all layers. nil is
// transparent.
func (c *Canvas) SetBackground(bg Color) { c.background = bg }

// Fonts returns the font registry shared by the canvas layers.
func (c *Canvas) Fonts() *text.Registry { return c.fonts }

// SetFonts replaces the font registry of the canvas and of every layer.
func (c *Canvas) SetFonts(r *text.Registry) {
	c.fonts = r
	c.layers.Each(func(l *Layer) { l.SetFonts(r) })
}

// CreateLayer adds a transparent layer the size of the canvas on top of the
// existing layers.
func (c *Canvas) CreateLayer(name string) (*Layer, error) {
	return c.CreateLayerWithSize(name, c.width, c.height)
}

// CreateLayerWithSize adds a transparent layer of the given size on top of
// the existing layers.
func (c *Canvas) CreateLayerWithSize(name string, width, height int) (*Layer, error) {
	l, err := newLayer(name, width, height, c.width, c.fonts)
	if err != nil {
		return nil, err
	}
	c.layers.Add(l)
	return l, nil
}

// Layer returns the layer with the given ID.
func (c *Canvas) Layer(id LayerID) (*Layer, error) {
	l, ok := c.layers.Get(id)
	if !ok {
		return nil, &LayerNotFoundError{ID: id}
	}
	return l, nil
}

// LayerByName returns the first layer created with the given name.
func (c *Canvas) LayerByName(name string) (*Layer, error) {
	l, ok := c.layers.ByName(name)
	if !ok {
		return nil, &LayerNotFoundError{Name: name}
	}
	return l, nil
}

// RemoveLayer deletes a layer from the canvas.
func (c *Canvas) RemoveLayer(id LayerID) error {
	if !c.layers.Remove(id) {
		return &LayerNotFoundError{ID: id}
	}
	return nil
}

// Layers returns the layers in paint order.
func (c *Canvas) Layers() []*Layer { return c.layers.Layers() }

// LayerManager returns the manager holding the canvas layers.
func (c *Canvas) LayerManager() *LayerManager { return c.layers }

// Clear removes all layers. The background and state stack are kept.
func (c *Canvas) Clear() { c.layers.Clear() }

// SaveState pushes the background and font registry.
func (c *Canvas) SaveState() {
	c.states = append(c.states, canvasState{background: c.background, fonts: c.fonts})
}

// RestoreState pops the state pushed by the matching SaveState.
func (c *Canvas) RestoreState() error {
	n := len(c.states)
	if n == 0 {
		return fmt.Errorf("%w: state stack is empty", ErrInvalidState)
	}
	st := c.states[n-1]
	c.states = c.states[:n-1]
	c.background = st.background
	c.SetFonts(st.fonts)
	return nil
}

// Merge composites the visible layers over the background.
func (c *Canvas) Merge() (*Pixmap, error) {
	base, err := NewPixmap(c.width, c.height)
	if err != nil {
		return nil, err
	}
	if src := resolvePaint(c.background); src != nil {
		dst := base.NRGBA()
		xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Src)
	}
	return c.layers.MergeOnto(base)
}

// Encode merges the canvas and writes it to w. quality applies to JPEG and
// is clamped to [0, 100].
func (c *Canvas) Encode(w io.Writer, format Format, quality int) error {
	if err := checkEncodable(format); err != nil {
		return err
	}
	img, err := c.Merge()
	if err != nil {
		return err
	}
	return encode(w, img.NRGBA(), format, quality)
}

// Save writes the merged canvas to path. The format is chosen by extension:
// .png, .jpg or .jpeg. JPEG uses the quality set with WithJPEGQuality.
//
// The file is written to a temporary file in the same directory and renamed
// into place, so a failed save never leaves a partial file behind.
func (c *Canvas) Save(path string) error {
	return c.SaveWithQuality(path, c.jpegQuality)
}

// SaveWithQuality is like Save with an explicit JPEG quality.
func (c *Canvas) SaveWithQuality(path string, quality int) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidState)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, format, quality); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrImageEncode, err)
	}
	Logger().Debug("clove: canvas saved", "path", path, "format", format, "bytes", buf.Len())
	return nil
}

func checkEncodable(format Format) error {
	switch format {
	case FormatPNG, FormatJPEG:
		return nil
	default:
		return &UnsupportedFormatError{Format: format.Extension()}
	}
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
