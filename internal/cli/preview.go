package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/pkg/pipeline"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var width float64
	var follow bool

	cmd := &cobra.Command{
		Use:   "preview <scene.toml>",
		Short: "Resize a scene interactively in the terminal",
		Long: `Preview draws the laid-out scene as boxes and lets you change the width
with the arrow keys. With --follow the width tracks the terminal.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
			s, err := runner.Load(ctx, args[0])
			if err != nil {
				return err
			}

			m := NewPreviewModel(s.Name(), s.Root, width)
			m.Follow = follow
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", c.Config.Width, "initial width in cells")
	cmd.Flags().BoolVar(&follow, "follow", false, "track the terminal width")
	return cmd
}
