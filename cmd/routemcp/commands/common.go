// Package commands provides CLI command handlers for routemcp.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Logger backends accepted by -log.
const (
	LogText = "text"
	LogJSON = "json"
	LogZap  = "zap"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool output
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RenderDetail renders a value in the specified format. Text output uses YAML.
func RenderDetail(w io.Writer, node any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(node, "", "  ")
	case FormatYAML, FormatText:
		data, err = yaml.Marshal(node)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// RenderTable renders rows under headers as fixed-width columns.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(row []string) {
		var b strings.Builder
		for i, cell := range row {
			switch {
			case quiet && i > 0:
				b.WriteByte('\t')
			case i > 0:
				b.WriteString("  ")
			}
			if quiet || i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		Writef(w, "%s\n", b.String())
	}

	if !quiet {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
}

// NewLogger builds the logger for a backend name ("text", "json" or "zap")
// writing to stderr. debug lowers the level to debug.
func NewLogger(backend string, debug bool) (introspect.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch backend {
	case LogText, "":
		return introspect.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))), func() {}, nil
	case LogJSON:
		return introspect.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))), func() {}, nil
	case LogZap:
		cfg := zap.NewProductionConfig()
		if debug {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("building zap logger: %w", err)
		}
		return introspect.NewZapAdapter(logger), func() { _ = logger.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid log backend '%s'. Valid backends: %s, %s, %s", backend, LogText, LogJSON, LogZap)
	}
}

// specSource returns a route table and a generator that both re-read the
// spec file on every call.
func specSource(specPath string) (route.Table, schemadoc.Generator) {
	gen := schemadoc.FromFile(specPath)
	return route.FromGenerator(gen), gen
}

// prefixFilter keeps routes outside every prefix.
func prefixFilter(prefixes []string) introspect.Filter {
	if len(prefixes) == 0 {
		return nil
	}
	return func(r route.Route) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(r.Path, p) {
				return false
			}
		}
		return true
	}
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
