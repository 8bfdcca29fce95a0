package clove

import (
	"sort"
	"strings"
)

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA{}
)

// NamedColor is a CSS color keyword such as "steelblue".
// Names are case-insensitive. An unknown name paints transparent; use
// ParseNamedColor to validate user input.
type NamedColor string

func (NamedColor) isColor() {}

// ToRGBA returns the color the name stands for.
func (n NamedColor) ToRGBA() RGBA {
	return namedColors[strings.ToLower(string(n))]
}

// ParseNamedColor validates a CSS color keyword.
func ParseNamedColor(name string) (NamedColor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := namedColors[key]; !ok {
		return "", &ColorValueError{Component: "name", Value: name}
	}
	return NamedColor(key), nil
}

// ColorNames returns the known color keywords in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// namedColors holds the CSS basic keywords and the commonly used extended
// ones.
var namedColors = map[string]RGBA{
	"transparent": Transparent,

	// basic
	"black":   Black,
	"silver":  RGB(192, 192, 192),
	"gray":    RGB(128, 128, 128),
	"grey":    RGB(128, 128, 128),
	"white":   White,
	"maroon":  RGB(128, 0, 0),
	"red":     Red,
	"purple":  RGB(128, 0, 128),
	"fuchsia": Magenta,
	"magenta": Magenta,
	"green":   Green,
	"lime":    RGB(0, 255, 0),
	"olive":   RGB(128, 128, 0),
	"yellow":  Yellow,
	"navy":    RGB(0, 0, 128),
	"blue":    Blue,
	"teal":    RGB(0, 128, 128),
	"aqua":    Cyan,
	"cyan":    Cyan,

	// extended
	"aliceblue":      RGB(240, 248, 255),
	"beige":          RGB(245, 245, 220),
	"brown":          RGB(165, 42, 42),
	"chocolate":      RGB(210, 105, 30),
	"coral":          RGB(255, 127, 80),
	"cornflowerblue": RGB(100, 149, 237),
	"crimson":        RGB(220, 20, 60),
	"darkblue":       RGB(0, 0, 139),
	"darkgray":       RGB(169, 169, 169),
	"darkgreen":      RGB(0, 100, 0),
	"darkorange":     RGB(255, 140, 0),
	"darkred":        RGB(139, 0, 0),
	"deeppink":       RGB(255, 20, 147),
	"deepskyblue":    RGB(0, 191, 255),
	"dimgray":        RGB(105, 105, 105),
	"dodgerblue":     RGB(30, 144, 255),
	"firebrick":      RGB(178, 34, 34),
	"forestgreen":    RGB(34, 139, 34),
	"gold":           RGB(255, 215, 0),
	"goldenrod":      RGB(218, 165, 32),
	"hotpink":        RGB(255, 105, 180),
	"indigo":         RGB(75, 0, 130),
	"ivory":          RGB(255, 255, 240),
	"khaki":          RGB(240, 230, 140),
	"lavender":       RGB(230, 230, 250),
	"lightblue":      RGB(173, 216, 230),
	"lightgray":      RGB(211, 211, 211),
	"lightgreen":     RGB(144, 238, 144),
	"lightyellow":    RGB(255, 255, 224),
	"limegreen":      RGB(50, 205, 50),
	"midnightblue":   RGB(25, 25, 112),
	"mintcream":      RGB(245, 255, 250),
	"orange":         RGB(255, 165, 0),
	"orangered":      RGB(255, 69, 0),
	"orchid":         RGB(218, 112, 214),
	"pink":           RGB(255, 192, 203),
	"plum":           RGB(221, 160, 221),
	"royalblue":      RGB(65, 105, 225),
	"salmon":         RGB(250, 128, 114),
	"seagreen":       RGB(46, 139, 87),
	"sienna":         RGB(160, 82, 45),
	"skyblue":        RGB(135, 206, 235),
	"slategray":      RGB(112, 128, 144),
	"steelblue":      RGB(70, 130, 180),
	"tan":            RGB(210, 180, 140),
	"tomato":         RGB(255, 99, 71),
	"turquoise":      RGB(64, 224, 208),
	"violet":         RGB(238, 130, 238),
	"wheat":          RGB(245, 222, 179),
	"whitesmoke":     RGB(245, 245, 245),
	"yellowgreen":    RGB(154, 205, 50),
	"rebeccapurple":  RGB(102, 51, 153),
	"mediumpurple":   RGB(147, 112, 219),
	"darkslategray":  RGB(47, 79, 79),
}
