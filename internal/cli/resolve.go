package cli

import (
	"strconv"
	"strings"

	"github.com/unkn0wn-root/hexpp/internal/config"
	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/settings"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// FormatFlags are per-invocation dump settings. String values go through
// the same parser as settings files, so 0x prefixes work everywhere.
type FormatFlags struct {
	Compact  bool   `short:"c" help:"Single line of hex digits: no title, addresses or ASCII panel."`
	NoTitle  bool   `help:"Omit the length header."`
	NoASCII  bool   `name:"no-ascii" help:"Omit the ASCII panel."`
	Width    string `short:"w" help:"Bytes per row; 0 puts everything on one row." placeholder:"N"`
	Group    string `short:"g" help:"Chunks per group; 0 disables groups." placeholder:"N"`
	Chunk    string `help:"Bytes per chunk; 0 disables separators." placeholder:"N"`
	MaxBytes string `short:"m" name:"max-bytes" help:"Render at most N bytes." placeholder:"N"`
	Offset   string `short:"o" help:"Add N to every printed address." placeholder:"N"`
}

func (f FormatFlags) values() map[string]string {
	out := map[string]string{}
	if f.NoTitle {
		out[settings.KeyTitle] = "false"
	}
	if f.NoASCII {
		out[settings.KeyASCII] = "false"
	}
	set := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}
	set(settings.KeyWidth, f.Width)
	set(settings.KeyGroup, f.Group)
	set(settings.KeyChunk, f.Chunk)
	set(settings.KeyMaxBytes, f.MaxBytes)
	set(settings.KeyDisplayOffset, f.Offset)
	return out
}

// resolveConfig layers the default preset, the settings file, HEXPP_*
// environment overrides, --set assignments and command flags, in that order.
func resolveConfig(root *CLI, rt *Runtime, flags FormatFlags, skip int64) (hexpp.Config, error) {
	cfg := hexpp.Default()

	file, handle, err := config.LoadSettings(root.Config)
	if err != nil {
		return cfg, err
	}
	assigned, err := settings.ParseAssignments(root.Set)
	if err != nil {
		return cfg, err
	}
	known := settings.ExactMatcher(settings.DumpKeys...)
	for _, key := range config.Keys(assigned) {
		if !known(key) {
			return cfg, errdef.New(errdef.CodeUsage, "--set %s: unknown setting, expected one of %s",
				key, strings.Join(settings.DumpKeys, ", "))
		}
	}

	merged := settings.Merge(
		file.Dump,
		settings.FromEnv(rt.getenv, settings.DumpKeys),
		assigned,
		flags.values(),
	)
	left, err := settings.ApplyDump(&cfg, merged)
	if err != nil {
		return cfg, err
	}
	// Env lookups and flags only produce known keys and --set is checked
	// above, so leftovers come from the settings file.
	for _, key := range config.Keys(left) {
		rt.logf("%s: ignoring unknown setting %q", handle.Path, key)
	}

	if skip > 0 && flags.Offset == "" && skip <= int64(hexpp.Unbounded-cfg.DisplayOffset) {
		cfg.DisplayOffset += int(skip)
	}
	if flags.Compact {
		cfg = cfg.Compact()
	}
	rt.logf("dump config: title=%v ascii=%v width=%d group=%d chunk=%d max_bytes=%s offset=%#x",
		cfg.Title, cfg.ASCII, cfg.Width, cfg.Group, cfg.Chunk, maxBytesLabel(cfg.MaxBytes), cfg.DisplayOffset)
	return cfg, nil
}

func maxBytesLabel(n int) string {
	if n == hexpp.Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(n)
}
