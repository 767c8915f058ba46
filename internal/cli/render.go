package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwoodhull/cladogram/pkg/config"
	"github.com/lwoodhull/cladogram/pkg/newick"
	"github.com/lwoodhull/cladogram/pkg/render/box"
	"github.com/lwoodhull/cladogram/pkg/render/dot"
	"github.com/lwoodhull/cladogram/pkg/tree"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path; empty means stdout
	format     string // output format: "text", "dot", "svg", "png"
	reroot     string // leaf or clade name to re-root at before rendering
	ascii      bool   // use +, - and | instead of box-drawing glyphs
	noCollapse bool   // keep unary chains instead of collapsing them
}

// newRenderCmd creates the render command. FILE may be "-" to read the tree
// from standard input.
//
// Default settings (overridable in the config file):
//   - format: text
//   - glyphs: unicode box-drawing
//   - unary chains collapsed
func newRenderCmd(configPath *string) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a Newick tree as a box-drawing diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyRenderConfig(cmd, *configPath, &opts); err != nil {
				return err
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text (default), dot, svg, png")
	cmd.Flags().StringVar(&opts.reroot, "reroot", "", "re-root the tree at the named node before rendering")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "use ASCII glyphs instead of box-drawing characters")
	cmd.Flags().BoolVar(&opts.noCollapse, "no-collapse", false, "keep unary chains instead of collapsing them")

	return cmd
}

// applyRenderConfig fills flag defaults from the config file. Flags given
// explicitly on the command line win over the file.
func applyRenderConfig(cmd *cobra.Command, path string, opts *renderOpts) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("ascii") {
		opts.ascii = cfg.Render.Style == "ascii"
	}
	if !cmd.Flags().Changed("no-collapse") {
		opts.noCollapse = !cfg.Render.Collapse
	}
	return nil
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatDOT: true, formatSVG: true, formatPNG: true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'text', 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// loadTree reads and parses the input, then applies re-rooting and collapsing
// as requested. Input "-" means standard input.
func loadTree(input string, opts *renderOpts) (*tree.Node, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}

	root, err := newick.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", input, err)
	}

	if opts.reroot != "" {
		root, err = tree.RerootAt(root, opts.reroot)
		if err != nil {
			return nil, err
		}
	}
	if !opts.noCollapse {
		root = tree.Collapse(root)
	}
	return root, nil
}

// renderTree produces the output bytes for the requested format.
func renderTree(ctx context.Context, root *tree.Node, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case formatText:
		glyphs := box.Unicode
		if opts.ascii {
			glyphs = box.ASCII
		}
		return []byte(box.Render(root, box.WithGlyphs(glyphs))), nil
	case formatDOT:
		return []byte(dot.ToDOT(root)), nil
	case formatSVG:
		return dot.RenderSVG(ctx, dot.ToDOT(root))
	case formatPNG:
		return dot.RenderPNG(ctx, dot.ToDOT(root))
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.format)
	}
}

// runRender loads the tree from input and writes the rendered output.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	root, err := loadTree(input, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded tree: %d nodes, %d leaves", root.Count(), root.CountLeaves())

	data, err := renderTree(ctx, root, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %s", opts.output))
	return nil
}
