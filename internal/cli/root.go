package cli

import (
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Staff     service.StaffService
	WorkItems service.WorkItemService
	Absences  service.AbsenceService
	Plan      service.PlanService
	Status    service.StatusService
}

// NewRootCmd creates the top-level "crewplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewplan",
		Short: "Project resourcing planner with versioned schedule generation",
	}

	root.AddCommand(
		newStaffCmd(app),
		newWorkCmd(app),
		newAbsenceCmd(app),
		newPlanCmd(app),
		newStatusCmd(app),
		newImportCmd(app),
	)

	return root
}
