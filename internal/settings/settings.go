package settings

import "strings"

// Matcher reports whether a handler owns a normalized setting key.
type Matcher func(string) bool

// ApplyFunc applies one setting value.
type ApplyFunc func(key, val string) error

type Handler struct {
	Match Matcher
	Apply ApplyFunc
}

// Applier routes key/value settings to the first handler that matches.
type Applier struct {
	handlers []Handler
}

func New(handlers ...Handler) Applier {
	return Applier{handlers: handlers}
}

// ApplyAll applies every setting and returns the ones no handler claimed.
// Keys are trimmed and lowercased and dashes are folded into underscores
// before matching.
func (a Applier) ApplyAll(settings map[string]string) (map[string]string, error) {
	if len(settings) == 0 || len(a.handlers) == 0 {
		return settings, nil
	}
	left := make(map[string]string)
	for k, v := range settings {
		key := NormalizeKey(k)
		if key == "" {
			continue
		}
		applied := false
		for _, h := range a.handlers {
			if h.Match != nil && h.Match(key) {
				if h.Apply != nil {
					if err := h.Apply(key, v); err != nil {
						return nil, err
					}
				}
				applied = true
				break
			}
		}
		if !applied {
			left[key] = v
		}
	}
	return left, nil
}

func PrefixMatcher(prefixes ...string) Matcher {
	return func(key string) bool {
		lower := strings.ToLower(strings.TrimSpace(key))
		for _, p := range prefixes {
			if strings.HasPrefix(lower, strings.ToLower(strings.TrimSpace(p))) {
				return true
			}
		}
		return false
	}
}

func ExactMatcher(keys ...string) Matcher {
	return func(key string) bool {
		lower := strings.ToLower(strings.TrimSpace(key))
		for _, k := range keys {
			if lower == strings.ToLower(strings.TrimSpace(k)) {
				return true
			}
		}
		return false
	}
}

// NormalizeKey folds a setting key into its canonical form.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
