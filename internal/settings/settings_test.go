package settings

import (
	"testing"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

func TestApplyDump(t *testing.T) {
	cfg := hexpp.Default()
	left, err := ApplyDump(&cfg, map[string]string{
		"Width":          "8",
		"group":          "2",
		"chunk":          "0x2",
		"max-bytes":      "64",
		"display_offset": "0x100",
		"title":          "off",
		"ascii":          "no",
		"colour":         "red",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := hexpp.Config{Width: 8, Group: 2, Chunk: 2, MaxBytes: 64, DisplayOffset: 0x100}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
	if len(left) != 1 || left["colour"] != "red" {
		t.Fatalf("expected unknown key to be left over, got %v", left)
	}
}

func TestApplyDumpUnbounded(t *testing.T) {
	cfg := hexpp.Config{MaxBytes: 10}
	if _, err := ApplyDump(&cfg, map[string]string{"max_bytes": "unbounded"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.MaxBytes != hexpp.Unbounded {
		t.Fatalf("expected unbounded, got %d", cfg.MaxBytes)
	}
}

func TestApplyDumpInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"width": "wide",
		"group": "-1",
		"ascii": "maybe",
	}
	for key, val := range cases {
		key, val := key, val
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			cfg := hexpp.Default()
			_, err := ApplyDump(&cfg, map[string]string{key: val})
			if !errdef.Is(err, errdef.CodeConfig) {
				t.Fatalf("expected config error, got %v", err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"HEXPP_WIDTH":     "32",
		"HEXPP_MAX_BYTES": " 128 ",
		"HEXPP_GROUP":     "",
	}
	got := FromEnv(func(k string) string { return env[k] }, DumpKeys)
	if len(got) != 2 || got["width"] != "32" || got["max_bytes"] != "128" {
		t.Fatalf("unexpected env settings %v", got)
	}
	if FromEnv(nil, DumpKeys) != nil {
		t.Fatal("expected nil without getenv")
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{"width=8", "Max-Bytes = 4", "width=4"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["width"] != "4" || got["max_bytes"] != "4" {
		t.Fatalf("unexpected assignments %v", got)
	}
	if _, err := ParseAssignments([]string{"width"}); !errdef.Is(err, errdef.CodeUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestMergeLaterWins(t *testing.T) {
	got := Merge(map[string]string{"Max-Bytes": "8", "group": "2"}, nil, map[string]string{"max_bytes": "16"})
	if len(got) != 2 || got["max_bytes"] != "16" || got["group"] != "2" {
		t.Fatalf("unexpected merge %v", got)
	}
}
