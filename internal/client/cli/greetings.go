package cli

import (
	"context"
	"fmt"
)

// Greetings fetches and prints the greeting messages.
func (a *App) Greetings(ctx context.Context) error {
	items, err := a.greetingService.List(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No greetings yet")
		return nil
	}
	for _, g := range items {
		fmt.Fprintln(a.out, g.Message)
	}
	return nil
}
