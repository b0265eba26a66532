package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/routemcp/introspect"
)

// EnvConfig holds server settings read from ROUTEMCP_* environment variables.
type EnvConfig struct {
	Name        string
	MountPath   string
	Addr        string
	CORSEnabled bool
	CORSOrigins []string
	MaxRefDepth int
	// SystemPaths is nil when ROUTEMCP_SYSTEM_PATHS is unset, keeping the
	// defaults.
	SystemPaths []string
	Stateless   bool
}

// DefaultAddr is the listen address used by the CLI when none is configured.
const DefaultAddr = "127.0.0.1:8000"

// LoadEnvConfig reads configuration from ROUTEMCP_* environment variables.
// Invalid values log a warning and fall back to the default.
func LoadEnvConfig() EnvConfig {
	return EnvConfig{
		Name:        envString("ROUTEMCP_NAME", DefaultName),
		MountPath:   envMountPath("ROUTEMCP_MOUNT_PATH", DefaultMountPath),
		Addr:        envString("ROUTEMCP_ADDR", DefaultAddr),
		CORSEnabled: envBool("ROUTEMCP_CORS_ENABLED", true),
		CORSOrigins: envList("ROUTEMCP_CORS_ORIGINS"),
		MaxRefDepth: envInt("ROUTEMCP_MAX_REF_DEPTH", introspect.DefaultMaxRefDepth),
		SystemPaths: envList("ROUTEMCP_SYSTEM_PATHS"),
		Stateless:   envBool("ROUTEMCP_STATELESS", false),
	}
}

// Options converts the configuration into server options.
func (c EnvConfig) Options() []Option {
	opts := []Option{
		WithName(c.Name),
		WithMountPath(c.MountPath),
		WithCORS(c.CORSEnabled, c.CORSOrigins...),
		WithMaxRefDepth(c.MaxRefDepth),
		WithStateless(c.Stateless),
	}
	if c.SystemPaths != nil {
		opts = append(opts, WithSystemPaths(c.SystemPaths...))
	}
	return opts
}

func envString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envMountPath(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if !strings.HasPrefix(v, "/") || len(v) < 2 {
		slog.Warn("invalid mount path env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envList splits a comma-separated variable, dropping empty items. An unset
// variable yields nil.
func envList(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
