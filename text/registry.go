package text

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// DefaultFamily is the family NewRegistry makes the default.
const DefaultFamily = "Go"

var bundledFonts = []struct {
	name string
	data []byte
}{
	{DefaultFamily, goregular.TTF},
	{"Go Bold", gobold.TTF},
	{"Go Italic", goitalic.TTF},
	{"Go Bold Italic", gobolditalic.TTF},
	{"Go Mono", gomono.TTF},
}

// Registry maps logical family names to fonts and owns the shaping state.
//
// A Registry is meant to be shared by every layer of a canvas (or by the
// whole process). All methods are safe for concurrent use: a single mutex
// serializes access to the font map, the HarfBuzz shaper and the sfnt
// scratch buffer.
type Registry struct {
	mu     sync.Mutex
	fonts  map[string]*Font
	def    string
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// NewRegistry returns a registry preloaded with the Go font family, with
// "Go" as the default family.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, f := range bundledFonts {
		if err := r.LoadBytes(f.name, f.data); err != nil {
			Logger().Warn("text: bundled font not registered", "name", f.name, "err", err)
		}
	}
	r.def = DefaultFamily
	return r
}

// NewEmptyRegistry returns a registry with no fonts. The first font
// registered becomes the default.
func NewEmptyRegistry() *Registry {
	return &Registry{fonts: make(map[string]*Font)}
}

// Load reads and registers the font file at path under name, replacing any
// font already registered under that name.
func (r *Registry) Load(name, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return &FontLoadError{Name: name, Path: path, Err: err}
	}
	return r.add(name, path, data)
}

// LoadBytes registers in-memory TrueType or OpenType data under name.
func (r *Registry) LoadBytes(name string, data []byte) error {
	return r.add(name, "", data)
}

// LoadSystem looks up fileName (for example "DejaVuSans.ttf") in the
// platform font directories and registers it under name.
func (r *Registry) LoadSystem(name, fileName string) error {
	path, err := findfont.Find(fileName)
	if err != nil {
		return &FontLoadError{Name: name, Path: fileName, Err: err}
	}
	return r.Load(name, path)
}

func (r *Registry) add(name, path string, data []byte) error {
	f, err := parseFont(name, data)
	if err != nil {
		return &FontLoadError{Name: name, Path: path, Err: err}
	}

	r.mu.Lock()
	r.fonts[name] = f
	if r.def == "" {
		r.def = name
	}
	r.mu.Unlock()

	Logger().Debug("text: font registered", "name", name, "glyphs", f.NumGlyphs())
	return nil
}

// SetDefault makes name the family used when a layout names none.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fonts[name]; !ok {
		return &FontNotFoundError{Family: name}
	}
	r.def = name
	return nil
}

// Default returns the default family name, or "" for an empty registry.
func (r *Registry) Default() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.def
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.fonts[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	r.mu.Unlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fonts)
}

// Font returns the font registered under name.
func (r *Registry) Font(name string) (*Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fonts[name]
	if !ok {
		return nil, &FontNotFoundError{Family: name}
	}
	return f, nil
}

// ResolveFamily returns the registered name that best matches family in
// the requested weight and style. Variants are looked up as "Family Bold",
// "Family Italic", "Family Bold Italic" and "Family Light". When no variant
// is registered the plain family is used. An empty family means the
// default.
func (r *Registry) ResolveFamily(family string, weight Weight, style Style) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := r.resolveLocked(family, weight, style)
	if err != nil {
		return "", err
	}
	return f.name, nil
}

func (r *Registry) resolveLocked(family string, weight Weight, style Style) (*Font, error) {
	if family == "" {
		family = r.def
	}
	for _, name := range variantNames(family, weight, style) {
		if f, ok := r.fonts[name]; ok {
			return f, nil
		}
	}
	return nil, &FontNotFoundError{Family: family}
}

// variantNames lists candidate names from most to least specific. The plain
// family is always last.
func variantNames(family string, weight Weight, style Style) []string {
	var w string
	switch weight {
	case WeightBold:
		w = "Bold"
	case WeightLight:
		w = "Light"
	}
	italic := style == StyleItalic

	names := make([]string, 0, 4)
	switch {
	case w != "" && italic:
		names = append(names,
			fmt.Sprintf("%s %s Italic", family, w),
			fmt.Sprintf("%s %s", family, w),
			family+" Italic")
	case w != "":
		names = append(names, fmt.Sprintf("%s %s", family, w))
	case italic:
		names = append(names, family+" Italic")
	}
	return append(names, family)
}
