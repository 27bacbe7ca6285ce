package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"incomeviz.dev/internal/cli/output"
	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/models"
	"incomeviz.dev/internal/utils"
)

func (c *CLI) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <household type>",
		Short: "Show the rows and income series of one household type",
		Example: `  incomeviz show 1인가구
  incomeviz show 전체가구 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			householdType := args[0]
			if err := utils.ValidateHouseholdType(householdType); err != nil {
				return err
			}

			view, err := c.app.Dataset.Select(cmd.Context(), householdType)
			if err != nil {
				return datasetError(err)
			}
			if view.Empty() {
				fmt.Fprintf(cmd.ErrOrStderr(), "no rows for household type %q\n", householdType)
			}
			return c.renderTables(cmd, models.NewHouseholdView(view), viewTables(view))
		},
	}
}

// viewTables lays out a view as its rows followed by the two series.
func viewTables(view income.FilteredView) []output.Data {
	unit := " (" + models.IncomeUnit + ")"
	return []output.Data{
		{
			Title:   view.HouseholdType,
			Headers: view.Headers(),
			Rows:    view.Rows(),
		},
		seriesTable("mean"+unit, view.MeanSeries()),
		seriesTable("median"+unit, view.MedianSeries()),
	}
}

func seriesTable(title string, points []income.SeriesPoint) output.Data {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.IncomeSource, strconv.FormatFloat(p.Value, 'f', -1, 64)})
	}
	return output.Data{
		Title:           title,
		Headers:         []string{"income source", "value"},
		Rows:            rows,
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
}
