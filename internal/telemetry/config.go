package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
	"github.com/unkn0wn-root/hexpp/internal/settings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvEndpoint = "HEXPP_TRACE_OTEL_ENDPOINT"
	EnvInsecure = "HEXPP_TRACE_OTEL_INSECURE"
	EnvHeaders  = "HEXPP_TRACE_OTEL_HEADERS"
	EnvService  = "HEXPP_TRACE_OTEL_SERVICE"
	EnvTimeout  = "HEXPP_TRACE_OTEL_TIMEOUT"
)

// Config describes where command spans are exported.
type Config struct {
	Endpoint    string
	Insecure    bool
	Headers     map[string]string
	ServiceName string
	Version     string
	DialTimeout time.Duration
}

// Default returns a disabled config.
func Default() Config {
	return Config{
		ServiceName: "hexpp",
		DialTimeout: 5 * time.Second,
	}
}

// Enabled reports whether an endpoint is set.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// ConfigFromEnv reads the HEXPP_TRACE_OTEL_* variables over Default. A value
// that does not parse keeps its default and is reported in the returned
// error; the config is usable either way.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv == nil {
		return cfg, nil
	}
	get := func(name string) string { return strings.TrimSpace(getenv(name)) }

	var errs []error
	cfg.Endpoint = get(EnvEndpoint)
	if val := get(EnvService); val != "" {
		cfg.ServiceName = val
	}
	if val := get(EnvInsecure); val != "" {
		insecure, ok := settings.ParseBool(val)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: expected a boolean, got %q", EnvInsecure, val))
		}
		cfg.Insecure = insecure
	}
	if val := get(EnvTimeout); val != "" {
		dur, err := time.ParseDuration(val)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvTimeout, err))
		case dur <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %s", EnvTimeout, val))
		default:
			cfg.DialTimeout = dur
		}
	}
	if val := get(EnvHeaders); val != "" {
		headers, err := ParseHeaders(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvHeaders, err))
		}
		cfg.Headers = headers
	}

	if len(errs) > 0 {
		return cfg, errdef.Wrap(errdef.CodeTelemetry, errors.Join(errs...), "read environment")
	}
	return cfg, nil
}

// ParseHeaders reads comma separated key=value pairs sent with every export.
// Blank entries are skipped. Valid pairs are returned alongside an error
// naming the entries that were dropped.
func ParseHeaders(list string) (map[string]string, error) {
	var (
		headers map[string]string
		bad     []string
	)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, val, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			bad = append(bad, entry)
			continue
		}
		if headers == nil {
			headers = make(map[string]string)
		}
		headers[key] = strings.TrimSpace(val)
	}
	if len(bad) > 0 {
		return headers, fmt.Errorf("malformed header %q, expected key=value", strings.Join(bad, ","))
	}
	return headers, nil
}
