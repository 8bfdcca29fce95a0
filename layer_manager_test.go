package clove

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerLayer(t *testing.T, m *LayerManager, name string) *Layer {
	t.Helper()
	w, h := m.Size()
	l, err := newLayer(name, w, h, w, nil)
	require.NoError(t, err)
	m.Add(l)
	return l
}

func TestMergeSingleNormalLayerIsIdentity(t *testing.T) {
	m := NewLayerManager(16, 16)
	l := managerLayer(t, m, "only")
	require.NoError(t, l.FillRect(0, 0, 8, 16, Red))
	require.NoError(t, l.FillRect(8, 0, 8, 8, RGB(10, 200, 30)))

	got, err := m.Merge()
	require.NoError(t, err)
	assert.True(t, got.Equal(l.Pixmap()), "merging one normal layer changed its pixels")
}

func TestMergeMultiplyOverWhite(t *testing.T) {
	m := NewLayerManager(100, 100)
	base := managerLayer(t, m, "base")
	require.NoError(t, base.FillCircle(50, 50, 40, White))

	top := managerLayer(t, m, "multiply")
	require.NoError(t, top.FillCircle(50, 50, 40, RGB(200, 100, 50)))
	top.SetBlendMode(BlendMultiply)
	top.SetOpacity(0.8)

	got, err := m.Merge()
	require.NoError(t, err)
	// 0.2*white + 0.8*(F*white)
	assertNRGBA(t, color.NRGBA{211, 131, 91, 255}, got.NRGBAAt(50, 50), 2)
	assert.Zero(t, got.NRGBAAt(2, 2).A)
}

func TestMergeOrderAndVisibility(t *testing.T) {
	m := NewLayerManager(10, 10)
	bottom := managerLayer(t, m, "bottom")
	top := managerLayer(t, m, "top")
	bottom.Fill(Red)
	top.Fill(Blue)

	got, err := m.Merge()
	require.NoError(t, err)
	assert.Equal(t, Blue.NRGBA(), got.NRGBAAt(5, 5), "later layers paint on top")

	top.SetVisible(false)
	got, err = m.Merge()
	require.NoError(t, err)
	assert.Equal(t, Red.NRGBA(), got.NRGBAAt(5, 5), "hidden layers are skipped")

	top.SetVisible(true)
	top.SetOpacity(0)
	got, err = m.Merge()
	require.NoError(t, err)
	assert.Equal(t, Red.NRGBA(), got.NRGBAAt(5, 5))
}

func TestMergeRoundsPosition(t *testing.T) {
	m := NewLayerManager(10, 10)
	l := managerLayer(t, m, "l")
	require.NoError(t, l.FillRect(0, 0, 2, 2, Red))
	l.SetPosition(3.6, 4.4)

	got, err := m.Merge()
	require.NoError(t, err)
	assert.Equal(t, Red.NRGBA(), got.NRGBAAt(4, 4))
	assert.Equal(t, Red.NRGBA(), got.NRGBAAt(5, 5))
	assert.Zero(t, got.NRGBAAt(3, 4).A)
	assert.Zero(t, got.NRGBAAt(6, 4).A)

	l.SetPosition(-1, -1)
	got, err = m.Merge()
	require.NoError(t, err)
	assert.Equal(t, Red.NRGBA(), got.NRGBAAt(0, 0))
	assert.Zero(t, got.NRGBAAt(1, 1).A)
}

func TestMergeOntoKeepsBase(t *testing.T) {
	m := NewLayerManager(4, 4)
	managerLayer(t, m, "l").Fill(Red.WithAlpha(128))

	base, err := NewPixmap(4, 4)
	require.NoError(t, err)
	base.Fill(White)
	snapshot := base.Clone()

	got, err := m.MergeOnto(base)
	require.NoError(t, err)
	assert.True(t, base.Equal(snapshot), "MergeOnto modified base")
	assertNRGBA(t, color.NRGBA{255, 127, 127, 255}, got.NRGBAAt(1, 1), 1)
}

func TestMergeLayerStateError(t *testing.T) {
	m := NewLayerManager(8, 8)
	l := managerLayer(t, m, "broken")
	l.buf, _ = NewPixmap(4, 4)

	_, err := m.Merge()
	var se *LayerStateError
	require.True(t, errors.As(err, &se), "error = %v", err)
	assert.Equal(t, l.ID(), se.ID)
	assert.Equal(t, 8, se.WantWidth)
	assert.Equal(t, 4, se.GotWidth)
	assert.ErrorIs(t, err, ErrLayerState)

	// Hidden layers are not checked.
	l.SetVisible(false)
	_, err = m.Merge()
	assert.NoError(t, err)
}

func TestLayerManagerLookup(t *testing.T) {
	m := NewLayerManager(4, 4)
	a := managerLayer(t, m, "a")
	b := managerLayer(t, m, "b")
	dup := managerLayer(t, m, "a")

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []*Layer{a, b, dup}, m.Layers())

	got, ok := m.Get(b.ID())
	assert.True(t, ok)
	assert.Same(t, b, got)

	got, ok = m.ByName("a")
	assert.True(t, ok)
	assert.Same(t, a, got, "ByName returns the first match")
	_, ok = m.ByName("zzz")
	assert.False(t, ok)

	m.Add(a)
	assert.Equal(t, []*Layer{a, b, dup}, m.Layers(), "re-adding keeps the position")

	assert.True(t, m.Remove(a.ID()))
	assert.False(t, m.Remove(a.ID()))
	_, ok = m.Get(a.ID())
	assert.False(t, ok)
	got, _ = m.ByName("a")
	assert.Same(t, dup, got)

	var names []string
	m.Each(func(l *Layer) { names = append(names, l.Name()) })
	assert.Equal(t, []string{"b", "a"}, names)

	m.Clear()
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Layers())
}
