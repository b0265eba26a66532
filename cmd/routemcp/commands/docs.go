package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/routemcp/introspect"
)

// DocsFlags contains flags for the docs command
type DocsFlags struct {
	Format      string
	MaxRefDepth int
}

// SetupDocsFlags creates and configures a FlagSet for the docs command.
// Returns the FlagSet and a DocsFlags struct with bound flag variables.
func SetupDocsFlags() (*flag.FlagSet, *DocsFlags) {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	flags := &DocsFlags{}

	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: text, json, yaml")
	fs.IntVar(&flags.MaxRefDepth, "max-ref-depth", introspect.DefaultMaxRefDepth, "maximum depth of inlined references")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: routemcp docs [flags] <spec> <path> [method]\n\n")
		Writef(output, "Print one operation with every $ref inlined, as get_endpoint_docs would.\n")
		Writef(output, "The method defaults to GET.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  routemcp docs openapi.json /users/{user_id}\n")
		Writef(output, "  routemcp docs -format json openapi.yaml /users post\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Endpoint found\n")
		Writef(output, "  1    Endpoint not found or the spec could not be read\n")
	}

	return fs, flags
}

// HandleDocs executes the docs command
func HandleDocs(args []string) error {
	return runDocs(context.Background(), os.Stdout, args)
}

func runDocs(ctx context.Context, w io.Writer, args []string) error {
	fs, flags := SetupDocsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() < 2 || fs.NArg() > 3 {
		fs.Usage()
		return fmt.Errorf("docs command requires a spec file, a path and an optional method")
	}

	table, gen := specSource(fs.Arg(0))
	in, err := introspect.New(table, gen, introspect.WithMaxRefDepth(flags.MaxRefDepth))
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}

	detail, err := in.GetEndpointDocs(ctx, fs.Arg(1), fs.Arg(2))
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	return RenderDetail(w, detail, flags.Format)
}
