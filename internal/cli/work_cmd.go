package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/contract"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newWorkAddCmd(app),
		newWorkListCmd(app),
		newWorkRemoveCmd(app),
		newWorkCompleteCmd(app),
	)

	return cmd
}

func newWorkAddCmd(app *App) *cobra.Command {
	var title, client, skill, due string
	var effort int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &domain.WorkItem{
				Title:       title,
				Client:      client,
				Skill:       domain.Skill(skill),
				EffortHours: effort,
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				w.DueDate = &dueDate
			}
			if err := app.WorkItems.Create(context.Background(), w); err != nil {
				return err
			}
			fmt.Printf("Added work item %s (%dh %s) [%s]\n", w.Title, w.EffortHours, w.Skill, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Display title")
	cmd.Flags().StringVar(&client, "client", "", "Client label")
	cmd.Flags().StringVar(&skill, "skill", "", "Required skill (developer|qa|designer|analyst)")
	cmd.Flags().IntVar(&effort, "effort", 0, "Effort in hours")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("skill")
	_ = cmd.MarkFlagRequired("effort")

	return cmd
}

func newWorkListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.WorkItems.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No work items.")
				return nil
			}
			for _, w := range items {
				due := "-"
				if w.DueDate != nil {
					due = w.DueDate.Format("2006-01-02")
				}
				fmt.Printf("%s  %-30s %-12s %-10s %3dh due %s\n", w.ID, w.Title, w.Client, w.Skill, w.EffortHours, due)
			}
			return nil
		},
	}
	return cmd
}

func newWorkRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.WorkItems.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed work item %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func newWorkCompleteCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "complete <work-item-id>",
		Short: "Mark a work item's schedule entry completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.CompleteRequest{WorkItemID: args[0]}
			if date != "" {
				completedAt, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid completion date %q: %w", date, err)
				}
				req.CompletedAt = &completedAt
			}
			entry, err := app.Plan.Complete(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Completed %s on %s (%s)\n", args[0], entry.EndDate.Format("2006-01-02"), entry.CompletionStatus)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Completion date (YYYY-MM-DD), defaults to today")

	return cmd
}
