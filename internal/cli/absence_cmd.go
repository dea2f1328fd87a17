package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newAbsenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Manage absences",
	}

	cmd.AddCommand(
		newAbsenceAddCmd(app),
		newAbsenceListCmd(app),
		newAbsenceRemoveCmd(app),
	)

	return cmd
}

func newAbsenceAddCmd(app *App) *cobra.Command {
	var staffID, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an absence for a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}
			a, err := app.Absences.Add(context.Background(), staffID, day)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded absence for %s on %s\n", a.StaffID, a.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff", "", "Staff member ID")
	cmd.Flags().StringVar(&date, "date", "", "Absence date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newAbsenceListCmd(app *App) *cobra.Command {
	var staffID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List absences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			absences, err := listAbsences(ctx, app, staffID)
			if err != nil {
				return err
			}
			if len(absences) == 0 {
				fmt.Println("No absences.")
				return nil
			}
			for _, a := range absences {
				fmt.Printf("%s  %s\n", a.StaffID, a.Date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff", "", "Filter by staff member ID")

	return cmd
}

func listAbsences(ctx context.Context, app *App, staffID string) ([]domain.Absence, error) {
	if staffID != "" {
		return app.Absences.ListByStaff(ctx, staffID)
	}
	return app.Absences.List(ctx)
}

func newAbsenceRemoveCmd(app *App) *cobra.Command {
	var staffID, date string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove an absence",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}
			if err := app.Absences.Remove(context.Background(), staffID, day); err != nil {
				return err
			}
			fmt.Printf("Removed absence for %s on %s\n", staffID, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff", "", "Staff member ID")
	cmd.Flags().StringVar(&date, "date", "", "Absence date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
