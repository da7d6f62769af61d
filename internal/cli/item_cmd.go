package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
)

// scheduleFlags holds the raw schedule-related flag values of add.
type scheduleFlags struct {
	start  string
	end    string
	on     string
	allDay bool
}

// registerScheduleFlags wires the schedule flags onto a flag set.
func registerScheduleFlags(fs *pflag.FlagSet, sf *scheduleFlags) {
	fs.StringVar(&sf.start, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	fs.StringVar(&sf.end, "end", "", "End time (YYYY-MM-DD HH:MM)")
	fs.StringVar(&sf.on, "on", "", "Date for an all-day item (YYYY-MM-DD)")
	fs.BoolVar(&sf.allDay, "all-day", false, "Mark the item all-day")
}

// apply parses the schedule flags into the item.
func (sf scheduleFlags) apply(item *domain.Item) error {
	if sf.on != "" {
		day, err := time.ParseInLocation("2006-01-02", sf.on, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --on date %q: want YYYY-MM-DD", sf.on)
		}
		item.AllDay = true
		item.StartAt = &day
		return nil
	}

	if sf.start != "" {
		start, err := parseInstant(sf.start)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		item.StartAt = &start
	}
	if sf.end != "" {
		end, err := parseInstant(sf.end)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		item.EndAt = &end
	}
	item.AllDay = sf.allDay
	return nil
}

func parseInstant(v string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a recognized time (want YYYY-MM-DD HH:MM)", v)
}

func newAddCmd(app *App) *cobra.Command {
	var (
		title, notes, kind, priority, color string
		sched                               scheduleFlags
	)

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Create a task or note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				title = args[0]
			}

			// No title and a terminal: collect the fields interactively.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				var err error
				title, notes, kind, priority, err = runAddForm()
				if err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("a title is required (pass it as an argument or use --title)")
			}

			item := &domain.Item{
				Title:    title,
				Notes:    notes,
				Kind:     domain.ItemKind(kind),
				Priority: domain.Priority(priority),
				Color:    color,
			}
			if item.Kind == "" {
				item.Kind = domain.KindTask
			}
			if err := sched.apply(item); err != nil {
				return err
			}

			ctx := context.Background()
			if err := app.Items.Create(ctx, item); err != nil {
				return err
			}
			if app.Search != nil {
				if err := app.Search.Index(ctx, item); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: indexing failed: %v\n", err)
				}
			}

			fmt.Printf("Created %s %s (%s)\n", item.Kind, item.Title, item.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&kind, "kind", "task", "Item kind: task or note")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, normal, high")
	cmd.Flags().StringVar(&color, "color", "", "Color key for the week view")
	registerScheduleFlags(cmd.Flags(), &sched)

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var includeClosed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Items.ListAll(context.Background(), includeClosed)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(formatter.Dim("No items."))
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, i := range items {
				rows = append(rows, []string{
					formatter.Dim(i.DisplayID()),
					formatter.ColorKeyStyle(i.Color).Render(i.Title),
					string(i.Kind),
					formatter.StatusPill(i.Status),
					formatter.PriorityPill(i.Priority),
					describeSchedule(i),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "TITLE", "KIND", "STATUS", "PRIORITY", "WHEN"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeClosed, "all", false, "Include done and dropped items")
	return cmd
}

func describeSchedule(i *domain.Item) string {
	switch {
	case i.IsFloating():
		return formatter.Dim("unscheduled")
	case i.AllDay:
		if i.EndAt != nil {
			return fmt.Sprintf("%s → %s all day",
				i.StartAt.Format("Jan 2"), i.EndAt.Format("Jan 2"))
		}
		return i.StartAt.Format("Jan 2") + " all day"
	default:
		return fmt.Sprintf("%s %s",
			i.StartAt.Format("Jan 2"), formatter.TimeRange(*i.StartAt, *i.EndAt))
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			i, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(i.Title), formatter.Dim(string(i.Kind))))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ID      "), formatter.TruncID(i.ID)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("STATUS  "), formatter.StatusPill(i.Status)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PRIORITY"), formatter.PriorityPill(i.Priority)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("WHEN    "), describeSchedule(i)))
			if i.Color != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("COLOR   "),
					formatter.ColorKeyStyle(i.Color).Render(i.Color)))
			}
			if i.CompletedAt != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("DONE AT "),
					formatter.HumanDate(*i.CompletedAt)))
			}
			if i.Notes != "" {
				b.WriteString("\n" + i.Notes + "\n")
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark an item done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.MarkDone(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newDropCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drop ID",
		Short: "Drop an item without completing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Drop(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Dropped: %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an item permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, id); err != nil {
				return err
			}
			if app.Search != nil {
				_ = app.Search.Remove(ctx, id)
			}
			fmt.Printf("Removed: %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
