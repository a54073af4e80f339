package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
)

type SettingsFormat string

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatYAML SettingsFormat = "yaml"
)

// SettingsHandle records where settings were read from.
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

// Settings holds the flattened tables of a settings file.
type Settings struct {
	// Dump holds the [dump] table as key/value strings.
	Dump map[string]string
}

// LoadSettings reads the settings file at path, or the default location
// when path is empty. A missing default file is not an error.
func LoadSettings(path string) (Settings, SettingsHandle, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		found := false
		path, found = SettingsPath()
		if !found {
			return Settings{}, SettingsHandle{Path: path, Format: SettingsFormatTOML}, nil
		}
	}

	handle := SettingsHandle{Path: filepath.Clean(path), Format: formatFor(path)}
	data, err := os.ReadFile(handle.Path)
	if err != nil {
		return Settings{}, handle, errdef.Wrap(errdef.CodeFilesystem, err, "read settings")
	}

	settings, err := ParseSettings(data, handle.Format)
	if err != nil {
		return Settings{}, handle, errdef.Wrap(errdef.CodeConfig, err, "parse %s", handle.Path)
	}
	return settings, handle, nil
}

// ParseSettings decodes settings data in the given format.
func ParseSettings(data []byte, format SettingsFormat) (Settings, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case SettingsFormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return Settings{}, err
	}

	var out Settings
	for key, val := range raw {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "dump":
			table, ok := val.(map[string]any)
			if !ok {
				return Settings{}, fmt.Errorf("%s: expected a table", key)
			}
			dump, err := flatten(key, table)
			if err != nil {
				return Settings{}, err
			}
			out.Dump = dump
		}
	}
	return out, nil
}

func flatten(section string, table map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(table))
	for key, val := range table {
		switch v := val.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%s.%s: nested values are not supported", section, key)
		case nil:
			continue
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out, nil
}

func formatFor(path string) SettingsFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SettingsFormatYAML
	default:
		return SettingsFormatTOML
	}
}

// Keys returns the sorted keys of a settings table.
func Keys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
