package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbnb/render"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the instances of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			var rows [][]string
			for _, e := range cat.Entries() {
				workers := "auto"
				if e.Workers > 0 {
					workers = strconv.Itoa(e.Workers)
				}
				rows = append(rows, []string{
					strconv.Itoa(e.Cities), e.Name, workers,
					strconv.FormatBool(e.Verbose), strings.Join(e.Labels, " "),
				})
			}

			return render.Catalog(cmd.OutOrStdout(), rows)
		},
	}
}
