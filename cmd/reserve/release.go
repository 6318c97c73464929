package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"equipshare/internal/client"
)

func init() {
	releaseCmd := &cobra.Command{
		Use:   "release <reservation-id>",
		Short: "Release a reservation",
		Long:  "Release a reservation and check its equipment back in.",
		Args:  cobra.ExactArgs(1),
		RunE:  release,
	}

	RootCmd.AddCommand(releaseCmd)
}

func release(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("reservation id must be an integer: %v", err)
	}

	workflow := client.NewWorkflow(api.Profile, api.Equipment, api.Reservations)
	if err := workflow.Release(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("released reservation %d\n", id)
	return nil
}
