package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/crewplan/internal/contract"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate, preview and inspect the schedule",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanSimulateCmd(app),
		newPlanHistoryCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var excludeCompleted bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the schedule from master data",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.Generate(context.Background(), contract.GenerateRequest{
				ExcludeCompleted: excludeCompleted,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Generation %s: %d entries, %d changes recorded\n",
				resp.GenerationID, len(resp.Entries), len(resp.VersionRecords))
			for _, id := range resp.SkippedWorkItemIDs {
				fmt.Printf("  skipped %s: no staff with matching skill\n", id)
			}
			for _, w := range resp.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
			printEntries(resp.Entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&excludeCompleted, "exclude-completed", false, "Leave completed entries untouched")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Plan.Schedule(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No schedule. Run 'crewplan plan generate'.")
				return nil
			}
			plain := make([]domain.ScheduleEntry, len(entries))
			for i, e := range entries {
				plain[i] = *e
			}
			printEntries(plain)
			return nil
		},
	}
	return cmd
}

func newPlanSimulateCmd(app *App) *cobra.Command {
	var delays, blackouts []string
	var apply bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Preview the schedule under what-if delays and blackouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.SimulateRequest{DelayDays: make(map[string]int)}

			for _, d := range delays {
				parts := strings.SplitN(d, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid delay %q (expected work-item-id=days)", d)
				}
				days, err := strconv.Atoi(parts[1])
				if err != nil {
					return fmt.Errorf("invalid delay days in %q: %w", d, err)
				}
				req.DelayDays[parts[0]] = days
			}

			for _, b := range blackouts {
				parts := strings.Split(b, ":")
				if len(parts) != 3 {
					return fmt.Errorf("invalid blackout %q (expected staff-id:from:to)", b)
				}
				from, err := time.Parse("2006-01-02", parts[1])
				if err != nil {
					return fmt.Errorf("invalid blackout start in %q: %w", b, err)
				}
				to, err := time.Parse("2006-01-02", parts[2])
				if err != nil {
					return fmt.Errorf("invalid blackout end in %q: %w", b, err)
				}
				req.Blackouts = append(req.Blackouts, contract.BlackoutWindow{
					StaffID: parts[0], From: from, To: to,
				})
			}

			ctx := context.Background()
			resp, err := app.Plan.Simulate(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("Simulation: %d entries\n", len(resp.Entries))
			for _, msg := range resp.RejectedOverrides {
				fmt.Printf("  rejected override: %s\n", msg)
			}
			for _, id := range resp.SkippedWorkItemIDs {
				fmt.Printf("  skipped %s: no staff with matching skill\n", id)
			}
			printEntries(resp.Entries)

			if apply {
				gen, err := app.Plan.Generate(ctx, contract.GenerateRequest{Precomputed: resp.Entries})
				if err != nil {
					return err
				}
				fmt.Printf("Applied as generation %s (%d changes recorded)\n",
					gen.GenerationID, len(gen.VersionRecords))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&delays, "delay", nil, "Delay override, work-item-id=working-days (repeatable)")
	cmd.Flags().StringArrayVar(&blackouts, "blackout", nil, "Blackout window, staff-id:YYYY-MM-DD:YYYY-MM-DD (repeatable)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the previewed schedule")

	return cmd
}

func newPlanHistoryCmd(app *App) *cobra.Command {
	var workItemID string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show version records from past generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var records []domain.VersionRecord
			var err error
			if workItemID != "" {
				records, err = app.Plan.HistoryByWorkItem(ctx, workItemID)
			} else {
				records, err = app.Plan.History(ctx, limit)
			}
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No version history.")
				return nil
			}
			for _, v := range records {
				fmt.Printf("%s  %-11s %-30s %s  %s..%s -> %s..%s (%+dd)\n",
					v.GeneratedAt.Format("2006-01-02 15:04"),
					v.Change,
					v.WorkItemTitle,
					v.StaffName,
					v.OldStart.Format("01-02"), v.OldEnd.Format("01-02"),
					v.NewStart.Format("01-02"), v.NewEnd.Format("01-02"),
					v.DeltaDays,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workItemID, "work-item", "", "Filter by work item ID")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records to show")

	return cmd
}

func printEntries(entries []domain.ScheduleEntry) {
	for _, e := range entries {
		flags := ""
		if e.Overdue {
			flags = fmt.Sprintf(" OVERDUE(+%dd)", e.DaysOverdue)
		}
		if e.Completed {
			flags += fmt.Sprintf(" done:%s", e.CompletionStatus)
		}
		fmt.Printf("  %s -> %s  %s..%s  %3dh%s\n",
			e.WorkItemID, e.StaffID,
			e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"),
			e.Hours, flags)
	}
}
