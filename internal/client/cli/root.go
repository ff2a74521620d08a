package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	var parts []string
	if s := a.currentSession(); s != nil {
		parts = append(parts, s.Username)
	}
	if c := a.connectivity(); c != ConnUnknown {
		parts = append(parts, string(c))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root restores the saved session, prints the greetings, starts the
// reachability watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to greeter CLI (type 'help' for commands)")

	sess, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Error(ctx, "restoring session", "error", err)
	}
	if sess != nil {
		a.setSession(sess)
		fmt.Fprintf(a.out, "Welcome back, %s\n", sess.Username)
	}

	if err := a.Greetings(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", userMessage(err))
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
