// Package hexpp renders byte slices as human-readable hex dumps with
// optional addressing, byte grouping, an ASCII side panel and truncation of
// long inputs.
//
// Output is deterministic and built without fmt. The Write functions stream
// to any io.Writer through a small reused buffer, and the only error they
// return is the one reported by that writer.
package hexpp

import (
	"io"
	"strconv"
	"strings"
)

// spillSize is the amount of buffered output that triggers a write to the
// sink.
const spillSize = 512

// RenderCompact returns the hex digits of source on a single line.
func RenderCompact(source []byte) string {
	return RenderWith(source, Simple())
}

// RenderDetailed returns a full dump of source using the Default preset.
func RenderDetailed(source []byte) string {
	return RenderWith(source, Default())
}

// RenderWith returns a dump of source formatted with cfg.
func RenderWith(source []byte, cfg Config) string {
	var b strings.Builder
	// strings.Builder does not fail.
	_ = WriteWith(&b, source, cfg)
	return b.String()
}

// WriteCompact writes the hex digits of source on a single line to w.
func WriteCompact(w io.Writer, source []byte) error {
	return WriteWith(w, source, Simple())
}

// WriteDetailed writes a full dump of source using the Default preset to w.
func WriteDetailed(w io.Writer, source []byte) error {
	return WriteWith(w, source, Default())
}

// WriteWith writes a dump of source formatted with cfg to w. A failed write
// aborts the dump and its error is returned unchanged.
func WriteWith(w io.Writer, source []byte, cfg Config) error {
	cfg = cfg.normalized()
	e := emitter{w: w, buf: make([]byte, 0, spillSize+64)}

	if cfg.Title {
		e.buf = appendTitle(e.buf, len(source))
	}
	if len(source) == 0 {
		return e.flush()
	}

	omitted, truncated := 0, false
	if len(source) > cfg.MaxBytes {
		omitted = len(source) - cfg.MaxBytes
		source = source[:cfg.MaxBytes]
		truncated = true
	}

	digits := 0
	if cfg.Width > 0 {
		digits = addressDigits(maxAddress(len(source), cfg.Width, cfg.DisplayOffset))
	}

	rows := rowCount(len(source), cfg.Width)
	for r := 0; r < rows; r++ {
		row := rowAt(source, cfg.Width, r)
		if cfg.Width > 0 {
			addr := uint64(r)*uint64(cfg.Width) + uint64(cfg.DisplayOffset)
			e.buf = appendAddress(e.buf, addr, digits)
		}

		for i, b := range row {
			e.buf = append(e.buf, cfg.delimiter(i)...)
			e.buf = append(e.buf, hexDigitsLower[b>>4], hexDigitsLower[b&0x0F])
			if err := e.spill(); err != nil {
				return err
			}
		}

		if cfg.ASCII {
			for j := len(row); j < cfg.Width; j++ {
				e.buf = append(e.buf, cfg.delimiter(j)...)
				e.buf = append(e.buf, ' ', ' ')
				if err := e.spill(); err != nil {
					return err
				}
			}
			e.buf = append(e.buf, asciiSeparator...)
			for _, b := range row {
				e.buf = append(e.buf, printable(b))
				if err := e.spill(); err != nil {
					return err
				}
			}
		}

		if r+1 < rows {
			e.buf = append(e.buf, '\n')
		}
		if err := e.spill(); err != nil {
			return err
		}
	}

	if truncated {
		e.buf = appendFooter(e.buf, omitted)
	}
	return e.flush()
}

// rowCount reports how many rows n bytes occupy. Width 0 keeps everything
// on one row.
func rowCount(n, width int) int {
	switch {
	case n == 0:
		return 0
	case width == 0:
		return 1
	default:
		return (n + width - 1) / width
	}
}

func rowAt(source []byte, width, idx int) []byte {
	if width == 0 {
		return source
	}
	start := idx * width
	end := start + width
	if end > len(source) {
		end = len(source)
	}
	return source[start:end]
}

func printable(b byte) byte {
	if b < asciiPrintableMin || b > asciiPrintableMax {
		return NonPrintable
	}
	return b
}

func appendTitle(dst []byte, n int) []byte {
	dst = append(dst, titlePrefix...)
	dst = appendLength(dst, n)
	return append(dst, '\n')
}

func appendFooter(dst []byte, omitted int) []byte {
	dst = append(dst, "\n..."...)
	dst = appendLength(dst, omitted)
	return append(dst, " bytes not shown..."...)
}

// appendLength writes n as "<decimal> (0x<hex>)".
func appendLength(dst []byte, n int) []byte {
	dst = strconv.AppendUint(dst, uint64(n), 10)
	dst = append(dst, " (0x"...)
	dst = strconv.AppendUint(dst, uint64(n), 16)
	return append(dst, ')')
}

type emitter struct {
	w   io.Writer
	buf []byte
}

func (e *emitter) spill() error {
	if len(e.buf) < spillSize {
		return nil
	}
	return e.flush()
}

func (e *emitter) flush() error {
	if len(e.buf) == 0 {
		return nil
	}
	n, err := e.w.Write(e.buf)
	if err == nil && n < len(e.buf) {
		err = io.ErrShortWrite
	}
	e.buf = e.buf[:0]
	return err
}
