package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewplan/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk-load staff, work items and absences from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Printf("  %v\n", e)
				}
				return fmt.Errorf("import file has %d validation error(s)", len(errs))
			}

			res, err := importer.ConvertImportSchema(schema)
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, m := range res.Staff {
				if err := app.Staff.Create(ctx, m); err != nil {
					return fmt.Errorf("importing staff %q: %w", m.Name, err)
				}
			}
			for _, w := range res.WorkItems {
				if err := app.WorkItems.Create(ctx, w); err != nil {
					return fmt.Errorf("importing work item %q: %w", w.Title, err)
				}
			}
			for _, a := range res.Absences {
				if _, err := app.Absences.Add(ctx, a.StaffID, a.Date); err != nil {
					return fmt.Errorf("importing absence for %s: %w", a.StaffID, err)
				}
			}

			fmt.Printf("Imported %d staff, %d work items, %d absences\n",
				len(res.Staff), len(res.WorkItems), len(res.Absences))
			return nil
		},
	}
	return cmd
}
