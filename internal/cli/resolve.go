package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItemID resolves an item identifier which can be a full UUID or
// a unique prefix of one.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if item, err := app.Items.GetByID(ctx, input); err == nil {
		return item.ID, nil
	}

	items, err := app.Items.ListAll(ctx, true)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, i := range items {
		if strings.HasPrefix(i.ID, input) {
			matches = append(matches, i.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no item matches %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous: %d items match", input, len(matches))
	}
}
