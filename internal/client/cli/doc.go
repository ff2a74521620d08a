// Package cli provides the interactive greeter command-line client.
//
// It wires configuration, the local session database, the API client and an
// interactive REPL. On start it restores a saved session, prints the
// greetings and begins watching server reachability in the background.
//
// Commands:
//   - register / login (anonymous mode)
//   - logout / whoami (authenticated mode)
//   - greetings, help, exit
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
