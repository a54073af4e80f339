package hexpp

import "math"

const (
	// NonPrintable stands in for bytes outside the printable ASCII range
	// in the ASCII panel.
	NonPrintable = '.'

	// Unbounded is the MaxBytes value that disables truncation.
	Unbounded = math.MaxInt

	// DefaultWidth is the number of bytes per row in the detailed preset.
	DefaultWidth = 16
	// DefaultGroup is the number of chunks per visual group in the detailed preset.
	DefaultGroup = 4
	// DefaultChunk is the number of bytes per chunk in the detailed preset.
	DefaultChunk = 1

	hexDigitsLower    = "0123456789abcdef"
	asciiPrintableMin = 0x20
	asciiPrintableMax = 0x7E

	addressSeparator = ":    "
	asciiSeparator   = "    "
	titlePrefix      = "Length: "
)
