package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/pkg/export"
	"github.com/matzehuels/framekit/pkg/view"
)

// applyCommand creates the apply command.
func (c *CLI) applyCommand() *cobra.Command {
	var flags sceneFlags
	var format string

	cmd := &cobra.Command{
		Use:   "apply <scene.toml>",
		Short: "Lay a scene out and list every frame",
		Long: `Apply measures the scene for the hint, lays it out in a rect of the hint
width and the measured height (or --height when set), and prints every
view's frame.

Formats:
  table  frames as a table (default)
  text   frames drawn as boxes
  json   frames as JSON`,
		Example: `  framekit apply card.toml
  framekit apply card.toml --width 40 --format text`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := flags.options(args[0])
			switch format {
			case "table":
			case export.FormatText, export.FormatJSON:
				opts.Formats = []string{format}
			default:
				return fmt.Errorf("invalid format %q (must be one of: table, text, json)", format)
			}

			runner, err := c.newRunner(ctx, &flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(ctx))
			res, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}
			prog.done("Applied " + res.Scene.Name())

			out := cmd.OutOrStdout()
			if format != "table" {
				_, err := out.Write(res.Artifacts[format])
				return err
			}
			writeFrameTable(out, res.Frames)
			p := newPrinter(out)
			p.stats(res.Stats.ViewCount, res.CacheInfo.ApplyHit)
			p.nextStep("Draw it", appName+" export "+args[0]+" -f svg")
			return nil
		},
	}

	flags.register(cmd, c.Config)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, text, json")
	return cmd
}

// writeFrameTable renders frames as a table, indenting ids by depth.
func writeFrameTable(w io.Writer, frames []view.Snapshot) {
	fmt.Fprintln(w, frameTable(frames).Render())
}

func frameTable(frames []view.Snapshot) *table.Table {
	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		r := f.Absolute
		rows = append(rows, []string{
			strings.Repeat("  ", f.Depth) + f.ID,
			f.Kind,
			formatNum(r.X), formatNum(r.Y), formatNum(r.W), formatNum(r.H),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("View", "Kind", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case col >= 2:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case col == 1:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})
}
