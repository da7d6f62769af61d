package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search items by meaning",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Search == nil {
				return fmt.Errorf("search needs LLM features; set TEMPO_LLM_ENABLED=1 and run a local Ollama server")
			}

			query := strings.Join(args, " ")
			results, err := app.Search.Query(context.Background(), query, limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println(formatter.Dim("No matches."))
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					formatter.Dim(r.Item.DisplayID()),
					formatter.ColorKeyStyle(r.Item.Color).Render(r.Item.Title),
					formatter.StatusPill(r.Item.Status),
					fmt.Sprintf("%.2f", r.Score),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TITLE", "STATUS", "SCORE"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	cmd.AddCommand(newSearchIndexCmd(app))
	return cmd
}

func newSearchIndexCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the search index for all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Search == nil {
				return fmt.Errorf("search needs LLM features; set TEMPO_LLM_ENABLED=1 and run a local Ollama server")
			}
			n, err := app.Search.IndexAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Indexed %d items.\n", n)
			return nil
		},
	}
}
