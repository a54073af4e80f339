package errdef

import (
	"errors"
	"io"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeOutput, nil, "write"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(CodeOutput, io.ErrClosedPipe, "write %s", "stdout")
	if err.Error() != "output: write stdout: io: read/write on closed pipe" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if CodeOf(err) != CodeOutput || !Is(err, CodeOutput) {
		t.Fatalf("expected output code, got %s", CodeOf(err))
	}
}

func TestNewDefaultsCode(t *testing.T) {
	err := New("", "bad %d", 1)
	if CodeOf(err) != CodeUnknown {
		t.Fatalf("expected unknown code, got %s", CodeOf(err))
	}
	if err.Error() != "unknown: bad 1" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if CodeOf(io.EOF) != CodeUnknown || Is(nil, CodeUsage) {
		t.Fatal("plain errors carry no code")
	}
}
