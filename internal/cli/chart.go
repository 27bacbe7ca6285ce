package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"incomeviz.dev/internal/chart"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/utils"
)

func (c *CLI) newChartCommand() *cobra.Command {
	var (
		out    string
		metric string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "chart <household type>",
		Short: "Render the mean or median series of a household type as an SVG bar chart",
		Example: `  incomeviz chart 1인가구 --metric mean --out mean.svg
  incomeviz chart 1인가구 --metric median > median.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			householdType := args[0]
			if err := utils.ValidateHouseholdType(householdType); err != nil {
				return err
			}
			parsed, err := utils.ParseMetric(metric)
			if err != nil {
				return err
			}

			view, err := c.app.Dataset.Select(cmd.Context(), householdType)
			if err != nil {
				return datasetError(err)
			}
			points := chart.SeriesFor(view, chart.Metric(parsed))
			if len(points) == 0 {
				return fmt.Errorf("no %s values for household type %q", parsed, householdType)
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, createErr := os.Create(out)
				if createErr != nil {
					return fmt.Errorf("creating %s: %w", out, createErr)
				}
				defer logging.HandleDeferredError(&err, f.Close, c.app.Logger, "chart_close")
				w = f
			}

			opts := chart.Options{Width: width, Height: height}
			if err = chart.RenderSVG(w, householdType, chart.Metric(parsed), points, opts); err != nil {
				return err
			}
			if out != "" && out != "-" {
				c.app.Logger.Info("chart written", "path", out, "metric", parsed, "bars", len(points))
			}
			return nil
		},
	}

	defaults := chart.DefaultOptions()
	cmd.Flags().StringVar(&out, "out", "", "SVG file path (default stdout)")
	cmd.Flags().StringVar(&metric, "metric", string(chart.Mean), "series to plot: mean, median")
	cmd.Flags().IntVar(&width, "width", defaults.Width, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "chart height in pixels")
	return cmd
}
