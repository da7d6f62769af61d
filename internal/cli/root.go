package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/config"
	"github.com/alexanderramin/tempo/internal/intelligence"
	"github.com/alexanderramin/tempo/internal/search"
	"github.com/alexanderramin/tempo/internal/service"
)

// App holds references to the services used by CLI commands. Decompose
// and Search are nil when LLM features are disabled.
type App struct {
	Items     service.ItemService
	Week      service.WeekService
	Decompose intelligence.DecomposeService
	Search    *search.Service
	Config    *config.Config

	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Personal week planner for tasks and notes",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newDoneCmd(app),
		newDropCmd(app),
		newRemoveCmd(app),
		newWeekCmd(app),
		newBreakdownCmd(app),
		newSearchCmd(app),
		newImportCmd(app),
	)

	return root
}
