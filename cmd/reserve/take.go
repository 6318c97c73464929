package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"equipshare/internal/client"
)

func init() {
	takeCmd := &cobra.Command{
		Use:   "take <equipment-id>",
		Short: "Reserve an equipment item",
		Long: `Reserve an equipment item

Creates a reservation under your profile and checks the item out. If your
profile has never been saved it is saved first.
`,
		Args: cobra.ExactArgs(1),
		RunE: take,
	}

	RootCmd.AddCommand(takeCmd)
}

func take(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("equipment id must be an integer: %v", err)
	}

	item, err := api.Equipment.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := api.Profile.Load(ctx); err != nil {
		return err
	}

	workflow := client.NewWorkflow(api.Profile, api.Equipment, api.Reservations)
	res, err := workflow.Reserve(ctx, *item)
	if res == nil {
		return err
	}
	if err != nil {
		// The reservation stands; only the listing refresh failed.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Printf("reserved %s (reservation %d)\n", item.Name, res.ID)
	return nil
}
