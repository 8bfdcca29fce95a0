package clove

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/gogpu/clove/internal/blend"
	intImage "github.com/gogpu/clove/internal/image"
)

// LayerManager keeps layers in creation order and composites them.
// Creation order is paint order: later layers are drawn on top.
type LayerManager struct {
	layers *linkedhashmap.Map // LayerID -> *Layer
	width  int
	height int
}

// NewLayerManager creates an empty manager for a width x height canvas.
func NewLayerManager(width, height int) *LayerManager {
	return &LayerManager{
		layers: linkedhashmap.New(),
		width:  width,
		height: height,
	}
}

// Size returns the base canvas size.
func (m *LayerManager) Size() (width, height int) { return m.width, m.height }

// Add appends l on top of the existing layers. Adding a layer that is
// already present keeps its position.
func (m *LayerManager) Add(l *Layer) {
	m.layers.Put(l.id, l)
}

// Remove deletes the layer with the given ID and reports whether it was
// present.
func (m *LayerManager) Remove(id LayerID) bool {
	if _, ok := m.layers.Get(id); !ok {
		return false
	}
	m.layers.Remove(id)
	return true
}

// Get returns the layer with the given ID.
func (m *LayerManager) Get(id LayerID) (*Layer, bool) {
	v, ok := m.layers.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Layer), true
}

// ByName returns the first layer with the given name.
func (m *LayerManager) ByName(name string) (*Layer, bool) {
	_, v := m.layers.Find(func(_, v any) bool {
		return v.(*Layer).name == name
	})
	if v == nil {
		return nil, false
	}
	return v.(*Layer), true
}

// Layers returns the layers in paint order.
func (m *LayerManager) Layers() []*Layer {
	out := make([]*Layer, 0, m.layers.Size())
	m.Each(func(l *Layer) { out = append(out, l) })
	return out
}

// Each calls fn for every layer in paint order.
func (m *LayerManager) Each(fn func(*Layer)) {
	it := m.layers.Iterator()
	for it.Next() {
		fn(it.Value().(*Layer))
	}
}

// Len returns the number of layers.
func (m *LayerManager) Len() int { return m.layers.Size() }

// Clear removes all layers.
func (m *LayerManager) Clear() { m.layers.Clear() }

// Merge composites the visible layers onto a transparent canvas.
func (m *LayerManager) Merge() (*Pixmap, error) {
	base, err := NewPixmap(m.width, m.height)
	if err != nil {
		return nil, err
	}
	return m.MergeOnto(base)
}

// MergeOnto composites the visible layers, in order, onto a copy of base.
// Each layer is placed at its rounded position and combined with its blend
// mode and opacity. base is not modified.
//
// A layer whose buffer does not match its effective size fails the merge
// with a *LayerStateError.
func (m *LayerManager) MergeOnto(base *Pixmap) (*Pixmap, error) {
	var visible []*Layer
	var stateErr error
	m.Each(func(l *Layer) {
		if !l.visible || stateErr != nil {
			return
		}
		if err := l.checkState(); err != nil {
			stateErr = err
			return
		}
		visible = append(visible, l)
	})
	if stateErr != nil {
		return nil, stateErr
	}

	acc := intImage.Premultiply(base.NRGBA())
	for _, l := range visible {
		src := intImage.Premultiply(l.buf.NRGBA())
		x, y := int(math.Round(l.x)), int(math.Round(l.y))
		blend.Composite(acc, src, x, y, blend.Mode(l.blend), l.opacity)
	}
	Logger().Debug("clove: layers merged",
		"layers", len(visible), "skipped", m.Len()-len(visible),
		"width", base.Width(), "height", base.Height())
	return fromNRGBA(intImage.Unpremultiply(acc)), nil
}
