package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
)

func newBreakdownCmd(app *App) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "breakdown ID",
		Short: "Break a task into subtasks using the local LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Decompose == nil {
				return fmt.Errorf("LLM features are disabled; set TEMPO_LLM_ENABLED=1 and run a local Ollama server")
			}

			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}

			d, err := app.Decompose.Decompose(ctx, item.Title, item.Notes)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(d.Subtasks))
			for n, s := range d.Subtasks {
				rows = append(rows, []string{
					strconv.Itoa(n + 1),
					s.Title,
					formatter.FormatMinutes(s.EstimatedMin),
				})
			}
			fmt.Println(formatter.Header("Breakdown: " + item.Title))
			fmt.Print(formatter.RenderTable([]string{"#", "SUBTASK", "ESTIMATE"}, rows))
			fmt.Printf("\nTotal: %s\n", formatter.FormatMinutes(d.TotalMinutes()))

			if !apply {
				fmt.Println(formatter.Dim("Run again with --apply to create these as tasks."))
				return nil
			}

			for _, s := range d.Subtasks {
				sub := &domain.Item{
					Title:    s.Title,
					Notes:    fmt.Sprintf("Part of: %s (est. %s)", item.Title, formatter.FormatMinutes(s.EstimatedMin)),
					Kind:     domain.KindTask,
					Priority: item.Priority,
					Color:    item.Color,
				}
				if err := app.Items.Create(ctx, sub); err != nil {
					return fmt.Errorf("creating subtask %q: %w", s.Title, err)
				}
				if app.Search != nil {
					_ = app.Search.Index(ctx, sub)
				}
			}
			fmt.Printf("Created %d subtasks.\n", len(d.Subtasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Create the proposed subtasks")
	return cmd
}
