package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"equipshare/internal/domain"
)

var allUsers bool

func init() {
	reservationsCmd := &cobra.Command{
		Use:   "reservations",
		Short: "List reservations",
		Long: `List reservations

Lists your own reservations. With --all, lists everyone's; that view is
only offered when your role is allowed to see other users.
`,
		RunE: listReservations,
	}

	reservationsCmd.Flags().BoolVar(&allUsers, "all", false, "All users' reservations")

	RootCmd.AddCommand(reservationsCmd)
}

func listReservations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		reservations []domain.Reservation
		err          error
	)
	if allUsers {
		allowed, checkErr := api.Permissions.Check(ctx, "user.list", "user/")
		if checkErr != nil {
			return checkErr
		}
		if !allowed {
			return fmt.Errorf("your role may not list other users' reservations")
		}
		reservations, err = api.Reservations.List(ctx)
	} else {
		profile, loadErr := api.Profile.Load(ctx)
		if loadErr != nil {
			return loadErr
		}
		reservations, err = api.Reservations.ListByUser(ctx, profile.PID)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tUSER\tNOTES")
	for _, r := range reservations {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\n", r.ID, r.Equipment.Name, r.User.FirstName, r.User.LastName, r.Notes)
	}
	return w.Flush()
}
