package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/routemcp/introspect"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Format        string
	MountPath     string
	ExcludePrefix string
	SystemPaths   string
	Quiet         bool
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.StringVar(&flags.MountPath, "mount", "", "exclude routes under this mount path")
	fs.StringVar(&flags.ExcludePrefix, "exclude-prefix", "", "comma-separated path prefixes to exclude")
	fs.StringVar(&flags.SystemPaths, "system-paths", "", "comma-separated system paths replacing the defaults")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: routemcp list [flags] <spec>\n\n")
		Writef(output, "List the user-facing endpoints of an OpenAPI document, as list_endpoints would.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  routemcp list openapi.json\n")
		Writef(output, "  routemcp list -format json openapi.yaml\n")
		Writef(output, "  routemcp list -exclude-prefix /internal,/admin openapi.yaml\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	return runList(os.Stdout, args)
}

func runList(w io.Writer, args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("list command requires exactly one spec file")
	}

	table, gen := specSource(fs.Arg(0))
	opts := []introspect.Option{
		introspect.WithMountPath(flags.MountPath),
		introspect.WithFilter(prefixFilter(splitList(flags.ExcludePrefix))),
	}
	if flags.SystemPaths != "" {
		opts = append(opts, introspect.WithSystemPaths(splitList(flags.SystemPaths)...))
	}
	in, err := introspect.New(table, gen, opts...)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	// The route table swallows generator errors, so surface them here.
	if _, err := gen(context.Background()); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	result := in.List()
	if flags.Format != FormatText {
		return RenderDetail(w, result, flags.Format)
	}

	if len(result.Endpoints) == 0 {
		if !flags.Quiet {
			Writef(w, "No endpoints found.\n")
		}
		return nil
	}

	headers := []string{"METHODS", "PATH", "NAME", "SUMMARY"}
	rows := make([][]string, 0, len(result.Endpoints))
	for _, ep := range result.Endpoints {
		rows = append(rows, []string{strings.Join(ep.Methods, ","), ep.Path, ep.Name, ep.Summary})
	}
	RenderTable(w, headers, rows, flags.Quiet)
	if !flags.Quiet {
		Writef(w, "\n%d of %d endpoints listed\n", len(result.Endpoints), result.Total)
	}
	return nil
}
