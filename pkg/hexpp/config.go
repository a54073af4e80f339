package hexpp

import "math"

// Config holds every formatting choice for a dump. Zero values of Width,
// Group and Chunk are meaningful: Width 0 renders a single row without an
// address prefix, Group 0 never inserts a group separator and Chunk 0 never
// separates bytes at all. Negative numbers behave like zero.
type Config struct {
	// Title writes a first line with the input length.
	Title bool
	// ASCII appends the printable representation of every row.
	ASCII bool
	// Width is the number of source bytes per row.
	Width int
	// Group is the number of chunks per visual group.
	Group int
	// Chunk is the number of source bytes per chunk (word).
	Chunk int
	// MaxBytes caps the number of bytes rendered.
	MaxBytes int
	// DisplayOffset is added to every printed address.
	DisplayOffset int
}

// Default returns the detailed preset: title, ASCII panel and 16 bytes per
// row split into groups of four single-byte chunks.
func Default() Config {
	return Config{
		Title:    true,
		ASCII:    true,
		Width:    DefaultWidth,
		Group:    DefaultGroup,
		Chunk:    DefaultChunk,
		MaxBytes: Unbounded,
	}
}

// Simple returns the compact preset derived from Default.
func Simple() Config {
	return Default().Compact()
}

// Compact keeps grouping, truncation and offset of c but drops the title,
// the ASCII panel and row addressing.
func (c Config) Compact() Config {
	c.Title = false
	c.ASCII = false
	c.Width = 0
	return c
}

func (c Config) normalized() Config {
	c.Width = nonNegative(c.Width)
	c.Group = nonNegative(c.Group)
	c.Chunk = nonNegative(c.Chunk)
	c.MaxBytes = nonNegative(c.MaxBytes)
	c.DisplayOffset = nonNegative(c.DisplayOffset)
	return c
}

// delimiter returns the separator written before the byte at position i of
// a row.
func (c Config) delimiter(i int) string {
	if i == 0 || c.Chunk <= 0 || i%c.Chunk != 0 {
		return ""
	}
	span := c.groupSpan()
	if span == 0 || i%span != 0 {
		return " "
	}
	return "  "
}

// groupSpan is the number of bytes per group, or 0 when groups are off. A
// span that does not fit in an int is beyond any row index and counts as
// off.
func (c Config) groupSpan() int {
	if c.Group <= 0 || c.Chunk <= 0 || c.Chunk > math.MaxInt/c.Group {
		return 0
	}
	return c.Group * c.Chunk
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
