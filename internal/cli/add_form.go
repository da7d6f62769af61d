package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func tempoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

// runAddForm collects the add fields interactively.
func runAddForm() (title, notes, kind, priority string, err error) {
	kind = "task"
	priority = "normal"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Write the quarterly report").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Task", "task"),
					huh.NewOption("Note", "note"),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Normal", "normal"),
					huh.NewOption("High", "high"),
				).
				Value(&priority),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", "", "", err
	}
	return title, notes, kind, priority, nil
}
