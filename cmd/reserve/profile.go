package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	profileCmd := &cobra.Command{
		Use:   "profile [<first-name> <last-name>]",
		Short: "Show or update your profile",
		Long: `Show or update your profile

With no arguments, prints the profile attached to your account. With a
first and last name, saves them.
`,
		Args: cobra.RangeArgs(0, 2),
		RunE: runProfile,
	}

	RootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		return fmt.Errorf("both a first and last name are required")
	}

	profile, err := api.Profile.Load(ctx)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		profile.FirstName = args[0]
		profile.LastName = args[1]
		if profile, err = api.Profile.Persist(ctx, *profile); err != nil {
			return err
		}
	}

	if profile.ID == nil {
		fmt.Printf("pid %d (profile not saved yet)\n", profile.PID)
		return nil
	}
	fmt.Printf("pid %d: %s %s\n", profile.PID, profile.FirstName, profile.LastName)
	return nil
}
