package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/service"
)

func weekOptionsFromConfig(app *App) service.WeekOptions {
	return service.WeekOptions{
		DayStartHour:    app.Config.DayStartHour,
		DayEndHour:      app.Config.DayEndHour,
		PixelsPerMinute: app.Config.PixelsPerMinute,
		MaxVisibleLanes: app.Config.MaxVisibleLanes,
		WeekStart:       app.Config.WeekStartDay(),
	}
}

func renderWeekView(app *App, view *service.WeekView) string {
	return formatter.RenderWeek(formatter.WeekGrid{
		Layout:          view.Layout,
		Items:           view.Items,
		DayStartHour:    app.Config.DayStartHour,
		DayEndHour:      app.Config.DayEndHour,
		PixelsPerMinute: app.Config.PixelsPerMinute,
	})
}

func newWeekCmd(app *App) *cobra.Command {
	var (
		dateFlag    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week view",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor := time.Now()
			if dateFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", dateFlag)
				}
				anchor = parsed
			}

			if interactive {
				program := tea.NewProgram(newWeekModel(app, anchor), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			view, err := app.Week.GetWeek(context.Background(), anchor, weekOptionsFromConfig(app))
			if err != nil {
				return err
			}
			fmt.Print(renderWeekView(app, view))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Anchor date inside the week (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse weeks interactively")
	return cmd
}
