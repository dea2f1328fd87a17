package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newStaffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff members",
	}

	cmd.AddCommand(
		newStaffAddCmd(app),
		newStaffListCmd(app),
		newStaffRemoveCmd(app),
	)

	return cmd
}

func newStaffAddCmd(app *App) *cobra.Command {
	var name, skill string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.StaffMember{
				Name:   name,
				Skill:  domain.Skill(skill),
				Active: true,
			}
			if err := app.Staff.Create(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Added staff member %s (%s) [%s]\n", m.Name, m.Skill, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&skill, "skill", "", "Skill tag (developer|qa|designer|analyst)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}

func newStaffListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Staff.List(context.Background(), !all)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No staff members.")
				return nil
			}
			for _, m := range members {
				state := "active"
				if !m.Active {
					state = "inactive"
				}
				fmt.Printf("%s  %-20s %-10s %s\n", m.ID, m.Name, m.Skill, state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive staff")

	return cmd
}

func newStaffRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a staff member (cascades to schedule entries and absences)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Staff.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed staff member %s\n", args[0])
			return nil
		},
	}
	return cmd
}
