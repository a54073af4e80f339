package cli

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
)

const stdinName = "-"

// InputFlags select the byte range read from an input.
type InputFlags struct {
	Skip   int64 `short:"s" help:"Skip N leading input bytes. Addresses start at N unless --offset is given." placeholder:"N"`
	Length int64 `short:"n" help:"Read at most N bytes (0 reads everything)." placeholder:"N"`
}

func (f InputFlags) validate() error {
	if f.Skip < 0 || f.Length < 0 {
		return errdef.New(errdef.CodeUsage, "--skip and --length must not be negative")
	}
	return nil
}

// readInput loads path, or stdin for "" and "-", honoring skip and length.
func readInput(rt *Runtime, path string, f InputFlags) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var src io.Reader
	if isStdin(path) {
		src = rt.Stdin
		if src == nil {
			src = bytes.NewReader(nil)
		}
		if f.Skip > 0 {
			if _, err := io.CopyN(io.Discard, src, f.Skip); err != nil && err != io.EOF {
				return nil, errdef.Wrap(errdef.CodeFilesystem, err, "skip stdin")
			}
		}
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeFilesystem, err, "open input")
		}
		defer file.Close()
		if f.Skip > 0 {
			if _, err := file.Seek(f.Skip, io.SeekStart); err != nil {
				return nil, errdef.Wrap(errdef.CodeFilesystem, err, "seek %s", path)
			}
		}
		src = file
	}

	if f.Length > 0 {
		src = io.LimitReader(src, f.Length)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read %s", displayName(path))
	}
	return data, nil
}

func isStdin(path string) bool {
	p := strings.TrimSpace(path)
	return p == "" || p == stdinName
}

func displayName(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}
