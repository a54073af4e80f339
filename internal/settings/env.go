package settings

import (
	"strings"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
)

// EnvPrefix namespaces setting overrides in the environment, for example
// HEXPP_WIDTH=8.
const EnvPrefix = "HEXPP_"

// FromEnv collects overrides for the given keys from the environment. Empty
// values are ignored.
func FromEnv(getenv func(string) string, keys []string) map[string]string {
	if getenv == nil || len(keys) == 0 {
		return nil
	}
	out := make(map[string]string)
	for _, key := range keys {
		name := EnvPrefix + strings.ToUpper(NormalizeKey(key))
		if val := strings.TrimSpace(getenv(name)); val != "" {
			out[NormalizeKey(key)] = val
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseAssignments turns key=value strings into a settings map. A later
// assignment of the same key wins.
func ParseAssignments(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		key = NormalizeKey(key)
		if !ok || key == "" {
			return nil, errdef.New(errdef.CodeUsage, "invalid setting %q, expected key=value", pair)
		}
		out[key] = strings.TrimSpace(val)
	}
	return out, nil
}

// Merge overlays scopes in order on normalized keys; later scopes win.
func Merge(scopes ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, scope := range scopes {
		for k, v := range scope {
			if key := NormalizeKey(k); key != "" {
				out[key] = v
			}
		}
	}
	return out
}
