package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/ics"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import events from an ICS calendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := ics.Parse(f)
			if err != nil {
				return err
			}

			ctx := context.Background()
			created := 0
			for _, item := range result.Items {
				if err := app.Items.Create(ctx, item); err != nil {
					return fmt.Errorf("importing %q: %w", item.Title, err)
				}
				if app.Search != nil {
					_ = app.Search.Index(ctx, item)
				}
				created++
			}

			fmt.Printf("Imported %d items.\n", created)
			for _, title := range result.Recurring {
				fmt.Println(formatter.Dim(fmt.Sprintf(
					"note: %q repeats; only its first occurrence was imported", title)))
			}
			for _, s := range result.Skipped {
				fmt.Println(formatter.Dim("skipped " + s))
			}
			return nil
		},
	}
}
