package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/pkg/geom"
)

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var flags sceneFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "measure <scene.toml>",
		Short: "Report the size a scene needs for a width",
		Long: `Measure runs the scene's layout in sizing mode for the hint given by
--width and --height and prints the size it needs. No frame is changed.`,
		Example: `  framekit measure card.toml --width 60
  framekit measure card.toml --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := flags.options(args[0])
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, &flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(ctx))
			s, err := runner.Load(ctx, opts.ScenePath)
			if err != nil {
				return err
			}
			size, cached, err := runner.MeasureWithCacheInfo(ctx, s, opts.Hint(), opts)
			if err != nil {
				return err
			}
			prog.done("Measured " + s.Name())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Scene string    `json:"scene"`
					Hint  geom.Size `json:"hint"`
					Size  geom.Size `json:"size"`
				}{s.Name(), opts.Hint(), size})
			}

			p := newPrinter(cmd.OutOrStdout())
			p.keyValue("Scene", s.Name())
			p.keyValue("Hint", formatSize(opts.Hint()))
			p.keyValue("Size", StyleNumber.Render(formatSize(size)))
			p.stats(s.Document.Count(), cached)
			return nil
		},
	}

	flags.register(cmd, c.Config)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func formatSize(s geom.Size) string {
	return fmt.Sprintf("%s × %s", formatNum(s.W), formatNum(s.H))
}

func formatNum(v float64) string {
	return fmt.Sprintf("%g", v)
}
