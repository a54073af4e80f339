package settings

import (
	"strconv"
	"strings"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// Dump setting keys, in their normalized form.
const (
	KeyTitle         = "title"
	KeyASCII         = "ascii"
	KeyWidth         = "width"
	KeyGroup         = "group"
	KeyChunk         = "chunk"
	KeyMaxBytes      = "max_bytes"
	KeyDisplayOffset = "display_offset"
)

// DumpKeys lists every key DumpHandler understands.
var DumpKeys = []string{
	KeyTitle,
	KeyASCII,
	KeyWidth,
	KeyGroup,
	KeyChunk,
	KeyMaxBytes,
	KeyDisplayOffset,
}

// DumpHandler applies dump settings onto cfg.
func DumpHandler(cfg *hexpp.Config) Handler {
	return Handler{
		Match: ExactMatcher(DumpKeys...),
		Apply: func(key, val string) error {
			return applyDump(cfg, key, val)
		},
	}
}

// ApplyDump applies settings onto cfg and returns the keys it did not know.
func ApplyDump(cfg *hexpp.Config, values map[string]string) (map[string]string, error) {
	return New(DumpHandler(cfg)).ApplyAll(values)
}

func applyDump(cfg *hexpp.Config, key, val string) error {
	switch key {
	case KeyTitle, KeyASCII:
		b, ok := ParseBool(val)
		if !ok {
			return errdef.New(errdef.CodeConfig, "%s: expected a boolean, got %q", key, val)
		}
		if key == KeyTitle {
			cfg.Title = b
		} else {
			cfg.ASCII = b
		}
	case KeyMaxBytes:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "unbounded", "none", "all":
			cfg.MaxBytes = hexpp.Unbounded
			return nil
		}
		n, err := parseSize(key, val)
		if err != nil {
			return err
		}
		cfg.MaxBytes = n
	case KeyWidth, KeyGroup, KeyChunk, KeyDisplayOffset:
		n, err := parseSize(key, val)
		if err != nil {
			return err
		}
		switch key {
		case KeyWidth:
			cfg.Width = n
		case KeyGroup:
			cfg.Group = n
		case KeyChunk:
			cfg.Chunk = n
		default:
			cfg.DisplayOffset = n
		}
	default:
		return errdef.New(errdef.CodeConfig, "unknown dump setting %q", key)
	}
	return nil
}

// parseSize accepts decimal, 0x hex, 0o octal and 0b binary non-negative
// integers.
func parseSize(key, val string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(val), 0, strconv.IntSize)
	if err != nil {
		return 0, errdef.Wrap(errdef.CodeConfig, err, "%s: invalid number %q", key, val)
	}
	if n < 0 {
		return 0, errdef.New(errdef.CodeConfig, "%s: must not be negative, got %d", key, n)
	}
	return int(n), nil
}

// ParseBool accepts 1/0, true/false, yes/no, y/n and on/off in any case.
// The second result reports whether value was recognized.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
