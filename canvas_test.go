package clove

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/clove/text"
)

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"1x1", 1, 1, false},
		{"typical", 800, 600, false},
		{"max", MaxDimension, 1, false},
		{"zero width", 0, 10, true},
		{"zero height", 10, 0, true},
		{"negative", -5, 10, true},
		{"too wide", MaxDimension + 1, 10, true},
		{"too tall", 10, MaxDimension + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.w, tt.h)
			if tt.wantErr {
				var de *DimensionsError
				if !errors.As(err, &de) || de.Width != tt.w || de.Height != tt.h {
					t.Fatalf("New(%d, %d) error = %v, want DimensionsError", tt.w, tt.h, err)
				}
				if c != nil {
					t.Error("New returned a canvas with an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d) error = %v", tt.w, tt.h, err)
			}
			if c.Width() != tt.w || c.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.w, tt.h)
			}
		})
	}
}

func TestNewOptions(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if c.Background() != Transparent {
		t.Errorf("default background = %v, want transparent", c.Background())
	}
	if c.Fonts() == nil {
		t.Fatal("default font registry is nil")
	}
	if c.jpegQuality != DefaultJPEGQuality {
		t.Errorf("default JPEG quality = %d, want %d", c.jpegQuality, DefaultJPEGQuality)
	}
	other, _ := New(10, 10)
	if other.Fonts() == c.Fonts() {
		t.Error("canvases share a default registry")
	}

	r := text.NewRegistry()
	c, err = New(10, 10, WithBackground(White), WithFontRegistry(r), WithJPEGQuality(150))
	if err != nil {
		t.Fatal(err)
	}
	if c.Background() != White || c.Fonts() != r || c.jpegQuality != 100 {
		t.Errorf("options not applied: bg=%v fonts=%p quality=%d", c.Background(), c.Fonts(), c.jpegQuality)
	}
	if c, _ = New(10, 10, WithJPEGQuality(-3)); c.jpegQuality != 0 {
		t.Errorf("quality = %d, want clamped to 0", c.jpegQuality)
	}
}

func TestCanvasMergeBackgroundAndLayer(t *testing.T) {
	c, err := New(800, 600, WithBackground(White))
	if err != nil {
		t.Fatal(err)
	}
	l, err := c.CreateLayer("shapes")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.FillRect(50, 50, 200, 150, Red); err != nil {
		t.Fatal(err)
	}

	img, err := c.Merge()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(150, 125); got != Red.NRGBA() {
		t.Errorf("inside the rect = %v, want red", got)
	}
	if got := img.NRGBAAt(10, 10); got != White.NRGBA() {
		t.Errorf("outside the rect = %v, want white", got)
	}
}

func TestCanvasGradientBackground(t *testing.T) {
	c, _ := New(100, 1, WithBackground(NewLinearGradient(0, 0, 100, 0).AddStop(0, Black).AddStop(1, White)))
	img, err := c.Merge()
	if err != nil {
		t.Fatal(err)
	}
	if a, b := img.NRGBAAt(10, 0), img.NRGBAAt(90, 0); a.R >= b.R || a.A != 255 {
		t.Errorf("gradient background not increasing: %v then %v", a, b)
	}

	c.SetBackground(nil)
	img, _ = c.Merge()
	if img.NRGBAAt(50, 0).A != 0 {
		t.Error("nil background is not transparent")
	}
}

func TestCanvasLayers(t *testing.T) {
	c, _ := New(20, 20)
	a, _ := c.CreateLayer("a")
	b, err := c.CreateLayerWithSize("b", 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 5 || b.Height() != 8 {
		t.Errorf("sized layer = %dx%d, want 5x8", b.Width(), b.Height())
	}
	if _, err := c.CreateLayerWithSize("bad", 0, 8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero-width layer error = %v", err)
	}
	if _, err := c.CreateLayerWithSize("huge", 1<<31, 1<<31); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("oversized layer error = %v", err)
	}
	if got := c.Layers(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Layers() = %v, want [a b]", got)
	}

	if got, err := c.Layer(b.ID()); err != nil || got != b {
		t.Errorf("Layer(b) = %v, %v", got, err)
	}
	if got, err := c.LayerByName("a"); err != nil || got != a {
		t.Errorf("LayerByName(a) = %v, %v", got, err)
	}

	_, err = c.LayerByName("missing")
	var nf *LayerNotFoundError
	if !errors.As(err, &nf) || nf.Name != "missing" || !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("LayerByName(missing) error = %v", err)
	}

	if err := c.RemoveLayer(a.ID()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Layer(a.ID()); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("removed layer lookup error = %v", err)
	}
	if err := c.RemoveLayer(a.ID()); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("second RemoveLayer error = %v", err)
	}
	if c.LayerManager().Len() != 1 {
		t.Errorf("manager has %d layers, want 1", c.LayerManager().Len())
	}

	c.Clear()
	if len(c.Layers()) != 0 {
		t.Error("Clear left layers behind")
	}
}

func TestCanvasStateStack(t *testing.T) {
	c, _ := New(10, 10, WithBackground(White))
	l, _ := c.CreateLayer("l")
	orig := c.Fonts()

	c.SaveState()
	c.SetBackground(Red)
	other := text.NewRegistry()
	c.SetFonts(other)
	if l.Fonts() != other {
		t.Error("SetFonts did not reach existing layers")
	}

	c.SaveState()
	c.SetBackground(Blue)

	if err := c.RestoreState(); err != nil {
		t.Fatal(err)
	}
	if c.Background() != Red {
		t.Errorf("background = %v, want red", c.Background())
	}
	if err := c.RestoreState(); err != nil {
		t.Fatal(err)
	}
	if c.Background() != White || c.Fonts() != orig || l.Fonts() != orig {
		t.Error("RestoreState did not restore the first saved state")
	}
	if err := c.RestoreState(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("RestoreState on empty stack error = %v, want ErrInvalidState", err)
	}
}

func TestCanvasSavePNGRoundTrip(t *testing.T) {
	c, _ := New(64, 48, WithBackground(White))
	l, _ := c.CreateLayer("l")
	if err := l.FillRect(8, 8, 16, 16, Red); err != nil {
		t.Fatal(err)
	}
	l2, _ := c.CreateLayer("half")
	l2.Fill(Blue.WithAlpha(128))
	l2.SetPosition(40, 0)

	want, err := c.Merge()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.PNG")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if !got.Equal(want) {
		t.Error("PNG round trip changed pixels")
	}
	if got.NRGBAAt(12, 12) != Red.NRGBA() {
		t.Errorf("pixel = %v, want red", got.NRGBAAt(12, 12))
	}
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestCanvasSaveJPEG(t *testing.T) {
	c, _ := New(32, 32, WithBackground(RGB(0, 0, 200)))
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.JPEG"} {
		path := filepath.Join(dir, name)
		if err := c.SaveWithQuality(path, 95); err != nil {
			t.Fatalf("SaveWithQuality(%s) error = %v", name, err)
		}
		img, err := LoadImage(path)
		if err != nil {
			t.Fatal(err)
		}
		px := img.NRGBAAt(16, 16)
		if px.A != 255 || px.B < 190 || px.R > 10 {
			t.Errorf("%s center = %v, want close to (0, 0, 200)", name, px)
		}
	}
	assertNoTempFiles(t, dir)
}

func TestCanvasSaveErrors(t *testing.T) {
	c, _ := New(8, 8)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", ErrInvalidState},
		{"webp", filepath.Join(dir, "out.webp"), ErrUnsupportedFormat},
		{"gif", filepath.Join(dir, "out.gif"), ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "out"), ErrUnsupportedFormat},
		{"missing directory", filepath.Join(dir, "nope", "out.png"), ErrImageEncode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Save(tt.path); !errors.Is(err, tt.want) {
				t.Errorf("Save(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed saves left %d files behind", len(entries))
	}
}

func TestCanvasSaveLayerStateError(t *testing.T) {
	c, _ := New(8, 8)
	l, _ := c.CreateLayer("l")
	l.buf, _ = NewPixmap(2, 2)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.Save(path); !errors.Is(err, ErrLayerState) {
		t.Fatalf("Save() error = %v, want ErrLayerState", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed save created the output file")
	}
}

func TestCanvasEncode(t *testing.T) {
	c, _ := New(4, 4, WithBackground(Green))
	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatPNG, 0); err != nil {
		t.Fatal(err)
	}
	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 128, 0, 255}) {
		t.Errorf("decoded pixel = %v, want green", got)
	}

	buf.Reset()
	if err := c.Encode(&buf, FormatJPEG, 80); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImageBytes(buf.Bytes()); err != nil {
		t.Errorf("DecodeImageBytes(JPEG) error = %v", err)
	}
	for _, data := range [][]byte{nil, []byte("not an image")} {
		if _, err := DecodeImageBytes(data); !errors.Is(err, ErrImageLoad) {
			t.Errorf("DecodeImageBytes(%q) error = %v, want ErrImageLoad", data, err)
		}
	}

	buf.Reset()
	if err := c.Encode(&buf, FormatWebP, 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(WebP) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("unsupported encode wrote bytes")
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}
