package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the schedule is stale",
		RunE: func(cmd *cobra.Command, args []string) error {
			stale, err := app.Status.NeedsRegeneration(context.Background())
			if err != nil {
				return err
			}
			if stale {
				fmt.Println("Schedule is stale: master data changed since the last generation.")
			} else {
				fmt.Println("Schedule is up to date.")
			}
			return nil
		},
	}
	return cmd
}
