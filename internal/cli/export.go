package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/pkg/export"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var flags sceneFlags
	var formats, output string
	var scale float64
	var tree bool

	cmd := &cobra.Command{
		Use:   "export <scene.toml>",
		Short: "Write a laid-out scene as text, JSON, DOT, SVG or PNG",
		Long: `Export lays the scene out like apply and writes the frames in one or more
formats. Graphviz output pins every view at its frame; SVG and PNG are
rendered in process.

Files are written next to --output with the format's extension. With
--output - a single format is written to stdout.`,
		Example: `  framekit export card.toml -f svg,png
  framekit export card.toml -f dot -o - | neato -n -Tpdf > card.pdf`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs, err := parseFormats(formats)
			if err != nil {
				return err
			}
			if output == "-" && len(fs) != 1 {
				return fmt.Errorf("--output - needs exactly one format, got %d", len(fs))
			}

			opts := flags.options(args[0])
			opts.Formats = fs
			opts.Scale = scale
			opts.Tree = tree

			runner, err := c.newRunner(ctx, &flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			var spinner *Spinner
			if output != "-" && (slices.Contains(fs, export.FormatSVG) || slices.Contains(fs, export.FormatPNG)) {
				spinner = newSpinnerWithContext(ctx, "Rendering "+strings.Join(fs, ", ")+"...")
				spinner.Start()
			}
			res, err := runner.Execute(ctx, opts)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(res.Artifacts[fs[0]])
				return err
			}

			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("Exported %s", res.Scene.Name())
			for _, f := range fs {
				path := base + "." + extension(f)
				if err := os.WriteFile(path, res.Artifacts[f], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				p.file(path)
			}
			p.stats(res.Stats.ViewCount, res.CacheInfo.ApplyHit)
			return nil
		},
	}

	flags.register(cmd, c.Config)
	cmd.Flags().StringVarP(&formats, "format", "f", export.FormatSVG,
		"comma-separated formats: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path without extension, or - for stdout")
	cmd.Flags().Float64Var(&scale, "scale", export.DefaultScale, "points per layout unit for DOT, SVG and PNG")
	cmd.Flags().BoolVar(&tree, "tree", false, "connect containers to their subviews in DOT, SVG and PNG")
	return cmd
}
