package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"incomeviz.dev/internal/export"
	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/utils"
)

func (c *CLI) newExportCommand() *cobra.Command {
	var out string
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "export <household type>... --out <file.xlsx>",
		Short: "Write household types to an XLSX workbook, one sheet each",
		Example: `  incomeviz export 1인가구 --out 1인가구.xlsx
  incomeviz export 1인가구 2인가구 --out households.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}

			views := make([]income.FilteredView, 0, len(args))
			for _, householdType := range args {
				if err := utils.ValidateHouseholdType(householdType); err != nil {
					return err
				}
				view, err := c.app.Dataset.Select(cmd.Context(), householdType)
				if err != nil {
					return datasetError(err)
				}
				if view.Empty() && !allowEmpty {
					return fmt.Errorf("no rows for household type %q", householdType)
				}
				views = append(views, view)
			}

			if err := export.SaveXLSX(out, c.app.Logger, views...); err != nil {
				return err
			}
			c.app.Logger.Info("workbook written", "path", out, "sheets", len(views))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "workbook path")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "write a header-only sheet for household types without rows")
	return cmd
}
