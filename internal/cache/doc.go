// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// The text package uses it to keep glyph outlines between draws, keyed by
// glyph and size, so a repeated string only walks the font tables once.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
