package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Greetings(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit"/"quit".
//
//	Anonymous:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - greetings      show greetings
//	  - exit | quit    leave the program
//
//	Authenticated:
//	  - help           show available commands
//	  - whoami         show the current user
//	  - greetings      show greetings
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("greeter %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, greetings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, greetings, exit")
			}

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, logout first")
				continue
			}
			if cmd == "register" {
				err = a.Register(ctx)
			} else {
				err = a.Login(ctx)
			}

		case "logout", "whoami":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			if cmd == "logout" {
				err = a.Logout(ctx)
			} else {
				err = a.WhoAmI(ctx)
			}

		case "greetings":
			err = a.Greetings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", userMessage(err))
		}
	}
}
