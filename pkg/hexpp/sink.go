package hexpp

import "errors"

// ErrBufferFull is returned by FixedBuffer when a write does not fit.
var ErrBufferFull = errors.New("hexpp: buffer full")

// FixedBuffer is an io.Writer over caller-provided storage that never grows.
// A write that does not fit is rejected whole.
type FixedBuffer struct {
	buf []byte
	n   int
}

// NewFixedBuffer returns a FixedBuffer backed by buf. The capacity is
// len(buf).
func NewFixedBuffer(buf []byte) *FixedBuffer {
	return &FixedBuffer{buf: buf}
}

func (f *FixedBuffer) Write(p []byte) (int, error) {
	if len(p) > len(f.buf)-f.n {
		return 0, ErrBufferFull
	}
	f.n += copy(f.buf[f.n:], p)
	return len(p), nil
}

// Bytes returns the written bytes. The slice aliases the backing storage.
func (f *FixedBuffer) Bytes() []byte { return f.buf[:f.n] }

func (f *FixedBuffer) String() string { return string(f.buf[:f.n]) }

// Len returns the number of written bytes.
func (f *FixedBuffer) Len() int { return f.n }

// Available returns the number of bytes that can still be written.
func (f *FixedBuffer) Available() int { return len(f.buf) - f.n }

// Reset discards written data.
func (f *FixedBuffer) Reset() { f.n = 0 }
