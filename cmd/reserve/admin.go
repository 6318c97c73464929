package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Equipment management commands. The server enforces permissions on every
// mutation; the checks here only exist to fail with a readable message
// before a doomed request is sent.

var notes string

func init() {
	addCmd := &cobra.Command{
		Use:   "add <name> <type>",
		Short: "Add an equipment item",
		Args:  cobra.ExactArgs(2),
		RunE:  addEquipment,
	}
	addCmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	updateCmd := &cobra.Command{
		Use:   "update <equipment-id> <name> <type>",
		Short: "Update an equipment item",
		Long: `Update an equipment item

Replaces the item's name, type and notes. Saving an item marks it
available again.
`,
		Args: cobra.ExactArgs(3),
		RunE: updateEquipment,
	}
	updateCmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	deleteCmd := &cobra.Command{
		Use:   "delete <equipment-id>",
		Short: "Remove an equipment item",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteEquipment,
	}

	RootCmd.AddCommand(addCmd, updateCmd, deleteCmd)
}

func requirePermission(cmd *cobra.Command, action, scope string) error {
	allowed, err := api.Permissions.Check(cmd.Context(), action, scope)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("your role may not %s", action)
	}
	return nil
}

func addEquipment(cmd *cobra.Command, args []string) error {
	if err := requirePermission(cmd, "equipment.add", "equipment/"); err != nil {
		return err
	}

	item, err := api.Equipment.Add(cmd.Context(), args[0], args[1], notes)
	if err != nil {
		return err
	}
	fmt.Printf("added %s (id %d)\n", item.Name, item.ID)
	return nil
}

func updateEquipment(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("equipment id must be an integer: %v", err)
	}
	if err := requirePermission(cmd, "equipment.update", "equipment/"+args[0]); err != nil {
		return err
	}

	item, err := api.Equipment.Update(cmd.Context(), id, args[1], args[2], notes)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s (id %d)\n", item.Name, item.ID)
	return nil
}

func deleteEquipment(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("equipment id must be an integer: %v", err)
	}
	if err := requirePermission(cmd, "equipment.delete", "equipment/"+args[0]); err != nil {
		return err
	}

	if err := api.Equipment.Remove(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("deleted equipment %d\n", id)
	return nil
}
