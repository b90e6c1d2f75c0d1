// Command ggplot renders chart spec files to PNG images. A chart spec is
// a YAML description of a plot: the data file, aesthetic mappings, geoms,
// scales, facets, and theme.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ggplot",
		Short:         "Render declarative chart specs to images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ggplot version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ggplot", version)
		},
	}
}

func newRenderCmd() *cobra.Command {
	var (
		output string
		data   string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "render <spec.yaml>",
		Short: "Render a chart spec to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadChartSpec(args[0])
			if err != nil {
				return err
			}
			if data != "" {
				spec.Data = data
			}
			if width > 0 {
				spec.Width = width
			}
			if height > 0 {
				spec.Height = height
			}
			if output == "" {
				output = spec.Output
			}
			if output == "" {
				output = "plot.png"
			}

			dc, err := spec.render()
			if err != nil {
				return err
			}
			if err := dc.SavePNG(output); err != nil {
				return fmt.Errorf("saving %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path (default from spec, else plot.png)")
	cmd.Flags().StringVar(&data, "data", "", "CSV data file (overrides the spec's data path)")
	cmd.Flags().IntVar(&width, "width", 0, "image width (overrides the spec)")
	cmd.Flags().IntVar(&height, "height", 0, "image height (overrides the spec)")
	return cmd
}
