package hexpp

import (
	"errors"
	"testing"
)

func TestFixedBuffer(t *testing.T) {
	fb := NewFixedBuffer(make([]byte, 6))

	if n, err := fb.Write([]byte("abcd")); err != nil || n != 4 {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if fb.Available() != 2 {
		t.Fatalf("expected 2 bytes available, got %d", fb.Available())
	}

	n, err := fb.Write([]byte("xyz"))
	if !errors.Is(err, ErrBufferFull) || n != 0 {
		t.Fatalf("expected whole write rejected, got n=%d err=%v", n, err)
	}
	if fb.String() != "abcd" {
		t.Fatalf("rejected write must not change contents, got %q", fb.String())
	}

	fb.Reset()
	if fb.Len() != 0 || len(fb.Bytes()) != 0 {
		t.Fatalf("expected empty buffer after reset, got %q", fb.Bytes())
	}
}
