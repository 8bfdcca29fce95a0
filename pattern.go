package clove

// Pattern paints a repeating tile. With a nil Tile it paints Color.
// Tiles are anchored at the layer origin.
type Pattern struct {
	Color RGBA
	Tile  *Pixmap
}

func (Pattern) isColor() {}

// NewPattern creates a pattern that repeats tile.
func NewPattern(tile *Pixmap) Pattern {
	return Pattern{Tile: tile}
}
