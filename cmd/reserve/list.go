package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"equipshare/internal/domain"
)

var (
	availableOnly bool
	equipmentType string
)

func init() {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List equipment",
		Long: `List equipment

With no flags this lists every item in the directory. Use --available to
ask the server for only the items that can be reserved right now, or
--type to filter by equipment type.
`,
		RunE: list,
	}

	listCmd.Flags().BoolVarP(&availableOnly, "available", "a", false, "Available equipment only")
	listCmd.Flags().StringVarP(&equipmentType, "type", "t", "", "Filter by equipment type")

	RootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		items []domain.Equipment
		err   error
	)
	switch {
	case availableOnly:
		items, err = api.Equipment.ListByStatus(ctx, domain.StatusAvailable)
	case equipmentType != "":
		items, err = api.Equipment.ListByType(ctx, equipmentType)
	default:
		items, err = api.Equipment.List(ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tNOTES")
	for _, e := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Type, domain.StatusString(e.Status), e.Notes)
	}
	return w.Flush()
}
