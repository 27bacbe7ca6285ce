package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"incomeviz.dev/internal/cli/output"
	"incomeviz.dev/internal/models"
)

// householdList is the output of "households".
type householdList []models.HouseholdType

func (l householdList) TableData() output.Data {
	rows := make([][]string, 0, len(l))
	for _, h := range l {
		rows = append(rows, []string{h.Name, strconv.Itoa(h.Rows)})
	}
	return output.Data{
		Headers:         []string{"household type", "rows"},
		Rows:            rows,
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
}

func (c *CLI) newHouseholdsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "households",
		Aliases: []string{"categories", "ls"},
		Short:   "List the household types found in the data file",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := c.app.Dataset.Table(cmd.Context())
			if err != nil {
				return datasetError(err)
			}
			return c.render(cmd, householdList(models.NewHouseholdTypes(table)))
		},
	}
}
