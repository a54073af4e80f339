package binaryview

const (
	asciiPrintableMin = 0x20

	// We only scan the first 1KB to decide if something is text or binary.
	// Binary files tend to have junk bytes early on.
	printableSampleLimit = 1024

	// 95% printable runes = text. Some slack for BOMs and stray bytes.
	printableThreshold = 0.95

	// PreviewByteLimit is the number of leading bytes shown in summaries.
	PreviewByteLimit = 32
)
